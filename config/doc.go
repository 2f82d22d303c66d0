// Package config loads popmock settings from defaults, an optional YAML
// file, POPMOCK_* environment variables and bound command-line flags, in
// increasing order of precedence (viper's layering).
//
// Keys:
//
//	params.population_size   params.responder_size   params.ntiles
//	params.ks_target         params.psi_target
//	search.seed              search.max_iterations   search.time_limit
//	search.remainder         search.progress_every
//	output.format            output.metrics
//	log.level
//	batch.workers            batch.fail_fast
//
// Environment names replace dots with underscores: POPMOCK_PARAMS_NTILES,
// POPMOCK_SEARCH_TIME_LIMIT, and so on.
package config
