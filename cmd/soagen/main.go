// Package main is soagen, a code generator for soa table schemas.
// It reads struct declarations from a package directory and writes the
// field handles, schema and table constructor for each named type.
//
//	//go:generate soagen -type=Reading
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	typeNames  = flag.String("type", "", "comma-separated list of struct type names (required)")
	output     = flag.String("output", "", "output directory; must resolve to the package directory (default: the package directory)")
	importPath = flag.String("import", DefaultImportPath, "import path of the soa package")
	verbose    = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()

	if *typeNames == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -type=T[,U...] [options] [dir]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	gen := &Generator{
		Dir:        dir,
		OutputDir:  *output,
		Types:      strings.Split(*typeNames, ","),
		ImportPath: *importPath,
		Verbose:    *verbose,
	}

	files, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, f := range files {
		fmt.Printf("Generated %s\n", f)
	}
}
