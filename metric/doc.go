// Package metric computes the two summary statistics popmock searches for:
// the Population Stability Index (PSI) and the Kolmogorov–Smirnov
// statistic (KS) of a tile table.
//
// PSI compares the observed population shares against a baseline:
//
//	share_i = Population[i] / ΣPopulation
//	PSI     = Σ (share_i − base_i) · ln(share_i / base_i)
//
// KS measures how far apart the cumulative responder and non-responder
// curves get when tiles are walked in order:
//
//	KS = max_i ( Σ_{j≤i} Responder[j]/ΣResponder − Σ_{j≤i} NonResponder[j]/ΣNonResponder )
//
// Both functions are pure. Inputs that would make the formulas undefined
// (an empty tile, a zero column total, a non-positive baseline share) fail
// with ErrDomain instead of returning NaN or ±Inf.
package metric
