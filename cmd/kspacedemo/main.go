// Command kspacedemo builds stencils on a reference cell and prints them.
//
// Usage:
//
//	kspacedemo cell --dim 3 --topology 2
//	kspacedemo stencil lower --dim 2
//	kspacedemo stencil proper 2 --at 4,7 --level 3
//	kspacedemo prolong --format yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
