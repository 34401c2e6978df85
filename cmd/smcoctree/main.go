// Command smcoctree is a thin driver around the smcoctree package: read
// an input OBJ triangle soup, extract its surface, and write the
// result as an output OBJ. It exists only as a convenience wrapper
// around the library's programmatic surface.
//
// This driver uses the standard library's flag package, since none of
// the underlying library's dependencies cover CLI flag parsing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/smcoctree"
	"github.com/katalvlaran/smcoctree/meshio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("smcoctree", flag.ContinueOnError)
	depth := fs.Int("depth", 6, "octree depth, clamped to [1,9]")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: smcoctree [-depth N] <input.obj> <output.obj>")
		return 2
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smcoctree: %v\n", err)
		return 1
	}
	defer in.Close()

	soup, err := meshio.ReadOBJ(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smcoctree: %v\n", err)
		return 1
	}

	ex, err := smcoctree.New(soup, *depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smcoctree: %v\n", err)
		return 1
	}

	mesh, err := ex.Extract()
	if err != nil {
		fmt.Fprintf(os.Stderr, "smcoctree: %v\n", err)
		return 1
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smcoctree: %v\n", err)
		return 1
	}
	defer out.Close()

	if err := meshio.WriteOBJ(out, mesh); err != nil {
		fmt.Fprintf(os.Stderr, "smcoctree: %v\n", err)
		return 1
	}
	return 0
}
