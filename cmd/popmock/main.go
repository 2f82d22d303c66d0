// Command popmock generates synthetic PSI/KS tile tables.
//
//	popmock run --tiles 10 --ks 0.4 --psi 0.1 --seed 7
//	popmock batch jobs.yaml --workers 4
//	popmock config --config popmock.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
