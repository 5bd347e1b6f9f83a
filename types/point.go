package types

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnsupportedDimension = errors.New("unsupported spatial dimension")

// Dimension is the number of spatial coordinates, only 1, 2 and 3 exist
type Dimension int

const MaxDimension = 3

func (d Dimension) Valid(supported ...Dimension) bool {
	if len(supported) == 0 {
		return d >= 1 && d <= MaxDimension
	}
	for _, s := range supported {
		if d == s {
			return true
		}
	}
	return false
}

// Check returns ErrUnsupportedDimension wrapped with the offending value
func (d Dimension) Check(supported ...Dimension) error {
	if !d.Valid(supported...) {
		return fmt.Errorf("%w: %d", ErrUnsupportedDimension, int(d))
	}
	return nil
}

// Point is a location in 1, 2 or 3 dimensions, unused coordinates stay zero
type Point struct {
	Dim Dimension
	X   [MaxDimension]float64
}

func NewPoint(coords ...float64) (p Point) {
	if len(coords) > MaxDimension {
		panic(fmt.Errorf("a point has at most %d coordinates, have %d", MaxDimension, len(coords)))
	}
	p.Dim = Dimension(len(coords))
	copy(p.X[:], coords)
	return
}

func (p Point) Coords() []float64 {
	return p.X[:p.Dim]
}

func (p Point) Distance(q Point) float64 {
	var (
		r2 float64
	)
	for i := 0; i < int(p.Dim); i++ {
		d := p.X[i] - q.X[i]
		r2 += d * d
	}
	return math.Sqrt(r2)
}

func (p Point) String() string {
	return fmt.Sprintf("%v", p.Coords())
}
