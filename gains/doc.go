// Package gains turns a finished tile table into a gains chart: the
// per-tile report a scorecard validation deck shows next to its KS and PSI.
//
// Metric groups (select any subset; none means all):
//
//	ks          Responder %, Non Responder %, cumulative shares, KS per tile
//	psi         Population %, baseline share, PSI contribution per tile
//	cumsum      cumulative Population / Responder / Non Responder counts
//	odds        Responder / Non Responder
//	lift        bad rate (Responder/Population) over the mean bad rate
//	separation  bad rate over the smallest bad rate
//
// Ratios follow IEEE float rules: a zero denominator yields +Inf (or NaN
// for 0/0) rather than an error, since those cells are legitimate in a
// report (the last decile often has no responders at all). The ks and psi
// groups reuse package metric and fail with its sentinels on degenerate
// tables.
//
// A Chart renders as an aligned text table, CSV or YAML.
package gains
