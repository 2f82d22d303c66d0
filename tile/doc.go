// Package tile models the ordered score-band table that popmock perturbs.
//
// 🚀 What is a tile table?
//
//	A scored population is cut into N ordered bands (deciles for N=10).
//	Each band ("tile") carries two integer counts:
//	  • Population — how many entities fall in the band
//	  • Responder  — how many of those have the positive outcome
//
//	Everything else (non-responders, shares, cumulative curves, PSI and KS
//	per tile) is derived on demand and never stored on the table.
//
// ✨ Invariants:
//   - 0 ≤ Responder[i] ≤ Population[i] for every tile (see Table.Validate)
//   - total Population and total Responder are conserved by every move the
//     shuffle package applies
//
// ⚙️ Usage:
//
//	t, err := tile.NewPopulation(10000, 10, tile.RemainderSpread)
//	if err != nil { ... }
//	t, err = t.WithResponders(1000, tile.RemainderSpread)
//
// Tables are plain slices. Every mutating helper in popmock works on a
// Clone, so a Table handed to a caller is never changed behind its back.
package tile
