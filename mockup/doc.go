// Package mockup is the orchestrator: it turns five numbers into a tile
// table whose PSI and KS hit the requested targets.
//
// Sequence performed by Mockup.Run:
//
//  1. split PopulationSize uniformly over NTiles
//  2. search.PSI until PSI ≥ PSITarget (Population column only)
//  3. split ResponderSize uniformly over the tiles
//  4. search.KS until KS ≥ KSTarget (Responder column only)
//
// ⚙️ Usage:
//
//	m, err := mockup.New(mockup.Params{
//	    PopulationSize: 10000,
//	    ResponderSize:  1000,
//	    NTiles:         10,
//	    KSTarget:       0.4,
//	    PSITarget:      0.1,
//	}, mockup.WithSeed(42), mockup.WithLogger(slog.Default()))
//	if err != nil { ... }                 // ErrInvalidParams
//	if err = m.Run(ctx); err != nil { ... } // search.ErrNonConvergence, ctx errors
//	t := m.Table()                        // read-only copy
//
// A Mockup owns its random stream; it is not safe for concurrent use. Run
// independent Mockups in parallel with package batch.
package mockup
