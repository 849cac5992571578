// Package testutil provides testing utilities for easyspot.
//
// This package is intended for use in tests only.
//
// # Random Sizes
//
//	rng := testutil.NewRNG(seed)
//	sizes := rng.Sizes(100, 4096) // 100 sizes in [1, 4096]
//
// # Fault Tests
//
// Faults terminate the process, so they are observed from outside:
//
//	func TestDoubleDrop(t *testing.T) {
//	    testutil.ExpectFault(t, "double drop", func() {
//	        b := easyspot.Allocate(8)
//	        b.Drop()
//	        b.Drop()
//	    })
//	}
//
// ExpectFault re-runs the current test in a child process, where fn runs,
// and asserts the child's exit status and stderr.
package testutil
