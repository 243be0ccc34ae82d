package operator_test

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
	"github.com/katalvlaran/lvlbie/operator"
)

// ExampleApply evaluates the Laplace double-layer potential of a constant
// unit density on the unit circle. The double-layer kernel is the constant
// -1/(4π) there, so the smooth rule alone integrates it exactly and every
// output entry is -1/2 — the classical jump-relation value.
func ExampleApply() {
	circle, err := chunker.Circle(1, 8, 12)
	if err != nil {
		log.Fatal(err)
	}
	desc, err := kernel.NewSingle(kernel.LaplaceDLP{})
	if err != nil {
		log.Fatal(err)
	}

	density := make([]float64, circle.PointCount())
	for i := range density {
		density[i] = 1
	}

	// The kernel is smooth on the circle, so a zero correction suffices.
	n := circle.PointCount()
	zero := mat.NewDense(n, n, nil)

	opts := operator.DefaultOptions()
	opts.Accel = operator.AccelOff

	u, err := operator.Apply(circle, desc, density, zero, &opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("u[0] = %.4f\n", u[0])
	// Output:
	// u[0] = -0.5000
}
