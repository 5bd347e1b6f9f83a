package mechanics

import (
	"fmt"

	"github.com/notargets/gopfield/types"
)

/*
Tensor is a dim x dim second order tensor stored in a fixed 3x3 buffer so that
kernels never allocate. It carries displacement gradients in, and stresses out.
Entries outside the leading dim x dim block are zero.
*/
type Tensor[T types.Real[T]] struct {
	Dim types.Dimension
	C   [types.MaxDimension][types.MaxDimension]T
}

// NewTensor copies a square row slice into a Tensor
func NewTensor[T types.Real[T]](rows [][]T) (A Tensor[T], err error) {
	var (
		dim = types.Dimension(len(rows))
	)
	if err = dim.Check(); err != nil {
		return
	}
	A.Dim = dim
	for i, row := range rows {
		if len(row) != len(rows) {
			err = fmt.Errorf("tensor row %d has %d entries, expected %d", i, len(row), len(rows))
			return
		}
		copy(A.C[i][:], row)
	}
	return
}

// NewScalarTensor is a convenience for float64 input
func NewScalarTensor(rows ...[]float64) (A Tensor[types.Scalar], err error) {
	sr := make([][]types.Scalar, len(rows))
	for i, row := range rows {
		sr[i] = make([]types.Scalar, len(row))
		for j, v := range row {
			sr[i][j] = types.Scalar(v)
		}
	}
	return NewTensor(sr)
}

func (A Tensor[T]) At(i, j int) T { return A.C[i][j] }

// Add and Scale make the tensor itself a linear space
func (A Tensor[T]) Add(B Tensor[T]) (R Tensor[T]) {
	R.Dim = A.Dim
	for i := 0; i < int(A.Dim); i++ {
		for j := 0; j < int(A.Dim); j++ {
			R.C[i][j] = A.C[i][j].Add(B.C[i][j])
		}
	}
	return
}

func (A Tensor[T]) Scale(s float64) (R Tensor[T]) {
	R.Dim = A.Dim
	for i := 0; i < int(A.Dim); i++ {
		for j := 0; j < int(A.Dim); j++ {
			R.C[i][j] = A.C[i][j].Scale(s)
		}
	}
	return
}

func (A Tensor[T]) Rows() (rows [][]T) {
	rows = make([][]T, A.Dim)
	for i := range rows {
		rows[i] = append([]T(nil), A.C[i][:A.Dim]...)
	}
	return
}

// Voigt is a Voigt ordered vector of length N (1, 3 or 6)
type Voigt[T types.Real[T]] struct {
	N int
	V [6]T
}

func (v Voigt[T]) Components() []T {
	return append([]T(nil), v.V[:v.N]...)
}

func (v Voigt[T]) Sub(w Voigt[T]) (r Voigt[T]) {
	r.N = v.N
	for i := 0; i < v.N; i++ {
		r.V[i] = v.V[i].Add(w.V[i].Scale(-1))
	}
	return
}

// Dot is sum_i v_i * w_i
func (v Voigt[T]) Dot(w Voigt[T]) (d T) {
	for i := 0; i < v.N; i++ {
		d = d.Add(v.V[i].Mul(w.V[i]))
	}
	return
}
