// Package shuffle implements the two randomized moves popmock's search
// loops are built from.
//
//   - Population moves a floor(chunk·Population[c]) block from a random
//     source tile c into tile i, each tile taking part with probability ½.
//   - Responders moves a floor(chunk·Responder[c]) block into tile i with a
//     probability falling linearly from 1 at tile 0 to 0 at the last tile,
//     so responders drift toward the low-index (riskiest) tiles. A move
//     that would leave Responder[i] > Population[i] is skipped.
//
// Both moves are applied sequentially, tile by tile, to a copy of the
// input; every transfer is a balanced add/subtract, so column totals are
// conserved exactly no matter how many transfers happen in a pass.
//
// Determinism: every function takes an explicit *rand.Rand. Use NewRand for
// a seeded stream and DeriveRand to split independent streams for parallel
// workers. A *rand.Rand must not be shared across goroutines.
package shuffle
