package geometry

import (
	"errors"
	"fmt"

	"github.com/notargets/gopfield/types"
)

var ErrOutsideDomain = errors.New("point lies outside the domain")

// Tolerance used when deciding whether a point lies on the domain boundary
const BoundaryTol = 1.e-12

/*
Domain is the rectangular box [0,Span[0]] x [0,Span[1]] x [0,Span[2]] meshed
with Subdivisions coarse cells per axis, each refined RefineFactor times by
bisection. Only the leading Dim entries of the arrays are used.
*/
type Domain struct {
	Dim          types.Dimension
	Span         [types.MaxDimension]float64
	Subdivisions [types.MaxDimension]int
	RefineFactor int
}

func (d Domain) Validate() (err error) {
	if err = d.Dim.Check(); err != nil {
		return
	}
	for i := 0; i < int(d.Dim); i++ {
		if d.Span[i] <= 0 {
			return fmt.Errorf("domain span along axis %d must be positive, have %g", i, d.Span[i])
		}
		if d.Subdivisions[i] < 1 {
			return fmt.Errorf("domain subdivisions along axis %d must be at least 1, have %d", i, d.Subdivisions[i])
		}
	}
	if d.RefineFactor < 0 {
		return fmt.Errorf("refine factor must not be negative, have %d", d.RefineFactor)
	}
	return
}

// CellSize is the edge length of a refined cell along x
func (d Domain) CellSize() float64 {
	return d.CellSizes()[0]
}

func (d Domain) CellSizes() (dx [types.MaxDimension]float64) {
	for i := 0; i < int(d.Dim); i++ {
		dx[i] = d.Span[i] / float64(d.Subdivisions[i]<<d.RefineFactor)
	}
	return
}

// NodesPerAxis counts the vertices of the refined grid along each axis
func (d Domain) NodesPerAxis() (n [types.MaxDimension]int) {
	for i := range n {
		n[i] = 1
	}
	for i := 0; i < int(d.Dim); i++ {
		n[i] = d.Subdivisions[i]<<d.RefineFactor + 1
	}
	return
}

func (d Domain) NumNodes() int {
	n := d.NodesPerAxis()
	return n[0] * n[1] * n[2]
}

// Node returns vertex k of the refined grid, x varies fastest
func (d Domain) Node(k int) (p types.Point) {
	var (
		n  = d.NodesPerAxis()
		dx = d.CellSizes()
	)
	p.Dim = d.Dim
	for i := 0; i < int(d.Dim); i++ {
		p.X[i] = float64(k%n[i]) * dx[i]
		k /= n[i]
	}
	return
}

// FractionalPoint maps fractions of the span to a point, (0.5,0.5) is the center
func (d Domain) FractionalPoint(f [types.MaxDimension]float64) (p types.Point) {
	p.Dim = d.Dim
	for i := 0; i < int(d.Dim); i++ {
		p.X[i] = f[i] * d.Span[i]
	}
	return
}

func (d Domain) Contains(p types.Point) bool {
	if p.Dim != d.Dim {
		return false
	}
	for i := 0; i < int(d.Dim); i++ {
		tol := BoundaryTol * d.Span[i]
		if p.X[i] < -tol || p.X[i] > d.Span[i]+tol {
			return false
		}
	}
	return true
}

// CheckPoint reports why a point is not usable in this domain
func (d Domain) CheckPoint(p types.Point) error {
	if p.Dim != d.Dim {
		return fmt.Errorf("point %v has dimension %d, domain has %d", p, int(p.Dim), int(d.Dim))
	}
	if !d.Contains(p) {
		return fmt.Errorf("%w: %v not in span %v", ErrOutsideDomain, p, d.Span[:d.Dim])
	}
	return nil
}

// NumFaces is 2*Dim, faces are numbered 2*axis for the minimum and 2*axis+1
// for the maximum of each axis
func (d Domain) NumFaces() int {
	return 2 * int(d.Dim)
}

func FaceName(face int) string {
	var (
		axes  = "xyz"
		sides = [2]string{"min", "max"}
	)
	axis := face / 2
	if face < 0 || axis >= len(axes) {
		return fmt.Sprintf("face%d", face)
	}
	return fmt.Sprintf("%c-%s", axes[axis], sides[face%2])
}

// OppositeFace pairs x-min with x-max and so on
func OppositeFace(face int) int {
	return face ^ 1
}
