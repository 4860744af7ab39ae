// Command simdgen extracts binary SIMD test vectors from WebAssembly .wast
// scripts and prints them as MoonBit test blocks.
//
//	simdgen simd_i16x8_arith.wast i16x8 add,sub --max 10
//	simdgen sat simd_i16x8_sat_arith.wast
//	simdgen batch tests.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
