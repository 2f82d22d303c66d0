// Package batch runs many mockups concurrently.
//
// A batch is a list of Jobs, usually decoded from a YAML file:
//
//	seed: 42
//	jobs:
//	  - name: deciles
//	    params:
//	      population_size: 10000
//	      responder_size: 1000
//	      ntiles: 10
//	      ks_target: 0.4
//	      psi_target: 0.1
//	  - name: vigintiles
//	    seed: 7
//	    time_limit: 30s
//	    params: {population_size: 20000, responder_size: 1500, ntiles: 20, ks_target: 0.3, psi_target: 0.05}
//
// Each job owns its random stream. A job with a non-zero seed uses it
// verbatim; otherwise its seed is derived from the batch seed and the job's
// position, so results do not depend on worker count or scheduling.
//
// Run bounds concurrency with errgroup.SetLimit. With FailFast the first
// failure cancels every other job; without it each Outcome carries its own
// error and Run reports them joined.
package batch
