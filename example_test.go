package smcoctree_test

import (
	"fmt"

	"github.com/katalvlaran/smcoctree"
	"github.com/katalvlaran/smcoctree/vec"
)

// Example demonstrates extracting a closed surface from an implicit
// scalar field, following the package's Example-function convention
// for runnable documentation.
func Example() {
	sphere := func(p vec.Point) float64 { return p.Dot(p) - 1 }
	ex, err := smcoctree.NewImplicit(sphere, 0, vec.New(-1.5, -1.5, -1.5), vec.New(1.5, 1.5, 1.5), 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	mesh, err := ex.Extract()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(mesh.FaceCount() > 0)
	// Output: true
}
