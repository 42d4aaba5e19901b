// Command veccalc evaluates vector operations from the command line.
//
// Usage:
//
//	veccalc [--output text|yaml] <command> [args]
//
// Vectors are written as 2 to 4 comma-separated components, optionally
// wrapped in brackets (parentheses also work when quoted for the shell). An
// argument that starts with a dash would be read as a flag, so negative
// leading components need either the bracketed form or a "--" before the
// operands:
//
//	veccalc dot [-1,2] [3,4]
//	veccalc dot -- -1,2 3,4
//	veccalc lerp 0,0 10,10 [-0.5]
//
// Examples:
//
//	veccalc length 3,4
//	veccalc normalize 0,0 --allow-zero=false
//	veccalc cross 1,0,0 0,1,0
//	veccalc lerp 0,0 10,20 0.25
//	veccalc convert --to i32 3.7,-1.9
//	veccalc lengths 3,4 6,8 5,12
//	veccalc centroid 0,0,0 2,4,6
//	veccalc types
//	veccalc kernels --output yaml
//
// VECCALC_OUTPUT and VECCALC_VERBOSE set the defaults of --output and
// --verbose.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
