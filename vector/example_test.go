// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecline/vector"
)

// ExampleVector_Add shows exact decimal addition: no 7.2299999… artifacts.
func ExampleVector_Add() {
	v := vector.MustParse("8.218", "-9.341")
	w := vector.MustParse("-1.129", "2.111")

	sum, err := v.Add(w)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output: Vector(7.089, -7.23)
}

// ExampleVector_Dot computes an exact dot product.
func ExampleVector_Dot() {
	d, _ := vector.MustParse(7.887, 4.138).Dot(vector.MustParse(-8.802, 6.776))
	fmt.Println(d)
	// Output: -41.382286
}

// ExampleVector_Cross shows that 2D operands are promoted to 3D.
func ExampleVector_Cross() {
	c, _ := vector.MustParse(3, 0).Cross(vector.MustParse(0, 4))
	area, _ := vector.MustParse(3, 0).TriangleArea(vector.MustParse(0, 4))
	fmt.Println(c.At(2), area)
	// Output: 12 6
}

// ExampleVector_Project decomposes a vector against the zero vector and
// matches the failure by kind.
func ExampleVector_Project() {
	_, err := vector.MustParse(1, 2).OrthogonalComponent(vector.MustParse(0, 0))
	switch {
	case errors.Is(err, vector.ErrNoUniqueOrthogonalComponent):
		fmt.Println("no unique orthogonal component")
	case err != nil:
		fmt.Println("unexpected:", err)
	}
	// Output: no unique orthogonal component
}
