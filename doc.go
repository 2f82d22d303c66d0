// Package popmock generates synthetic tile tables (deciles, vigintiles, ...)
// whose Population Stability Index and Kolmogorov–Smirnov statistic reach
// requested targets.
//
// The work is split into leaf-first packages:
//
//	tile/     — Tile, Table and the uniform integer split
//	metric/   — PSI and KS calculators
//	shuffle/  — population and responder shufflers, seeded random streams
//	search/   — bounded iterate-until-target loops for PSI and KS
//	mockup/   — the orchestrator: uniform start, PSI phase, KS phase
//	gains/    — gains chart (ks, psi, cumsum, odds, lift, separation)
//	batch/    — many mockups in parallel with per-job seeds
//	config/   — viper/YAML configuration for the command line
//	cmd/popmock — the CLI
//
// Quick start:
//
//	m, err := mockup.New(mockup.Params{
//		PopulationSize: 10000,
//		ResponderSize:  1000,
//		NTiles:         10,
//		KSTarget:       0.4,
//		PSITarget:      0.1,
//	}, mockup.WithSeed(7))
//	if err != nil { ... }
//	if err = m.Run(ctx); err != nil { ... }
//	table := m.Table()
package popmock
