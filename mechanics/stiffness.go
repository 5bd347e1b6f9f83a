package mechanics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopfield/types"
)

const SymmetryTol = 1.e-10

var (
	ErrStiffnessSize     = errors.New("stiffness matrix has the wrong size for the dimension")
	ErrStiffnessSymmetry = errors.New("stiffness matrix is not symmetric")
	ErrDimensionMismatch = errors.New("stiffness and tensor dimensions differ")
)

// VoigtSize is the length of a Voigt vector for a symmetric dim x dim tensor
func VoigtSize(dim types.Dimension) int {
	switch dim {
	case 1:
		return 1
	case 2:
		return 3
	case 3:
		return 6
	}
	return 0
}

/*
Stiffness holds the elastic constants CIJ in Voigt notation, 6x6 in 3D, 3x3 in
2D and 1x1 in 1D. A Stiffness is read only after construction and may be shared
between goroutines.
*/
type Stiffness struct {
	dim types.Dimension
	n   int
	c   [6][6]float64
	sym *mat.SymDense
}

// NewStiffness builds CIJ from a row-major n x n slice, n = VoigtSize(dim)
func NewStiffness(dim types.Dimension, data []float64) (C *Stiffness, err error) {
	if err = dim.Check(); err != nil {
		return
	}
	var (
		n = VoigtSize(dim)
	)
	if len(data) != n*n {
		err = fmt.Errorf("%w: dimension %d needs %d entries, have %d",
			ErrStiffnessSize, int(dim), n*n, len(data))
		return
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := data[i*n+j], data[j*n+i]
			scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
			if math.Abs(a-b) > SymmetryTol*scale {
				err = fmt.Errorf("%w: C[%d][%d] = %g, C[%d][%d] = %g",
					ErrStiffnessSymmetry, i, j, a, j, i, b)
				return
			}
		}
	}
	C = &Stiffness{
		dim: dim,
		n:   n,
		sym: mat.NewSymDense(n, append([]float64(nil), data...)),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			C.c[i][j] = C.sym.At(i, j)
		}
	}
	return
}

// NewStiffnessFromDense accepts any gonum matrix, useful when CIJ was
// assembled or rotated with gonum
func NewStiffnessFromDense(dim types.Dimension, M mat.Matrix) (C *Stiffness, err error) {
	var (
		nr, nc = M.Dims()
		data   = make([]float64, nr*nc)
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			data[i*nc+j] = M.At(i, j)
		}
	}
	if nr != nc {
		err = fmt.Errorf("%w: matrix is %d x %d", ErrStiffnessSize, nr, nc)
		return
	}
	return NewStiffness(dim, data)
}

func (C *Stiffness) Dim() types.Dimension { return C.dim }

// Size is the number of Voigt components, the row count of CIJ
func (C *Stiffness) Size() int { return C.n }

func (C *Stiffness) At(i, j int) float64 { return C.c[i][j] }

// Matrix exposes CIJ as a gonum symmetric matrix, callers must not modify it
func (C *Stiffness) Matrix() mat.Symmetric { return C.sym }

func (C *Stiffness) String() string {
	return fmt.Sprintf("CIJ (%dD) =\n%v", int(C.dim), mat.Formatted(C.sym, mat.Squeeze()))
}
