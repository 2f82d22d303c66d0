// Package search drives the shuffle moves until a tile table reaches a
// target PSI or KS.
//
// Both loops share one shape:
//
//	iter := 0
//	while metric(table) < target:
//	    table = move(table, iter)
//	    iter++
//
// The PSI loop grows its move size with the iteration count
// (ChunkStart + iter·ChunkStep, clamped at ChunkCeiling); the KS loop uses a
// fixed responder chunk.
//
// Nothing guarantees a target is reachable, so every loop is bounded by
// Options.MaxIterations and, optionally, Options.TimeLimit and the context.
// Running out of budget returns ErrNonConvergence together with a Result
// whose Status is NonConverged and whose Table is the last state reached.
//
// Context and deadline checks are throttled to once every 1024 iterations.
package search
