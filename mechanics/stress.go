package mechanics

import (
	"fmt"

	"github.com/notargets/gopfield/types"
)

/*
Generalized Hooke's law in Voigt notation, S = C E

	S -> stress vector, R -> stress tensor, C -> stiffness, E -> strain vector

Strain vector from the displacement gradient u_i,j (engineering shear strain)

	E(0) = u1,1
	E(1) = u2,2
	E(2) = u3,3
	E(3) = u2,3 + u3,2
	E(4) = u1,3 + u3,1
	E(5) = u1,2 + u2,1

Stress vector to tensor

	S(0) = R[0][0]
	S(1) = R[1][1]
	S(2) = R[2][2]
	S(3) = R[1][2] = R[2][1]
	S(4) = R[0][2] = R[2][0]
	S(5) = R[0][1] = R[1][0]

In 2D the ordering is (u1,1, u2,2, u1,2+u2,1) and in 1D it is the single u1,1.
*/

// StrainVoigt symmetrizes a displacement gradient into a Voigt strain vector
func StrainVoigt[T types.Real[T]](ux Tensor[T]) (E Voigt[T], err error) {
	u := &ux.C
	switch ux.Dim {
	case 3:
		E.N = 6
		E.V[0], E.V[1], E.V[2] = u[0][0], u[1][1], u[2][2]
		E.V[3] = u[1][2].Add(u[2][1])
		E.V[4] = u[0][2].Add(u[2][0])
		E.V[5] = u[0][1].Add(u[1][0])
	case 2:
		E.N = 3
		E.V[0], E.V[1] = u[0][0], u[1][1]
		E.V[2] = u[0][1].Add(u[1][0])
	case 1:
		E.N = 1
		E.V[0] = u[0][0]
	default:
		err = ux.Dim.Check()
	}
	return
}

// StressVoigt computes S = C E for a Voigt strain vector
func StressVoigt[T types.Real[T]](C *Stiffness, E Voigt[T]) (S Voigt[T], err error) {
	if C.n != E.N {
		err = fmt.Errorf("%w: CIJ is %dx%d, strain has %d components",
			ErrDimensionMismatch, C.n, C.n, E.N)
		return
	}
	S.N = E.N
	for i := 0; i < C.n; i++ {
		var s T
		for j := 0; j < C.n; j++ {
			s = s.Add(E.V[j].Scale(C.c[i][j]))
		}
		S.V[i] = s
	}
	return
}

// UnpackStress writes a Voigt stress vector into a symmetric tensor
func UnpackStress[T types.Real[T]](S Voigt[T]) (R Tensor[T], err error) {
	r := &R.C
	switch S.N {
	case 6:
		R.Dim = 3
		r[0][0], r[1][1], r[2][2] = S.V[0], S.V[1], S.V[2]
		r[1][2], r[2][1] = S.V[3], S.V[3]
		r[0][2], r[2][0] = S.V[4], S.V[4]
		r[0][1], r[1][0] = S.V[5], S.V[5]
	case 3:
		R.Dim = 2
		r[0][0], r[1][1] = S.V[0], S.V[1]
		r[0][1], r[1][0] = S.V[2], S.V[2]
	case 1:
		R.Dim = 1
		r[0][0] = S.V[0]
	default:
		err = fmt.Errorf("%w: Voigt vector of length %d", types.ErrUnsupportedDimension, S.N)
	}
	return
}

// ComputeStress returns the stress tensor for stiffness C and displacement
// gradient ux
func ComputeStress[T types.Real[T]](C *Stiffness, ux Tensor[T]) (R Tensor[T], err error) {
	var (
		E, S Voigt[T]
	)
	if ux.Dim != C.dim {
		err = fmt.Errorf("%w: CIJ is %dD, gradient is %dD", ErrDimensionMismatch, int(C.dim), int(ux.Dim))
		return
	}
	if E, err = StrainVoigt(ux); err != nil {
		return
	}
	if S, err = StressVoigt(C, E); err != nil {
		return
	}
	return UnpackStress(S)
}

// ComputeStressFromStrain is ComputeStress for a strain already in Voigt form
func ComputeStressFromStrain[T types.Real[T]](C *Stiffness, E Voigt[T]) (R Tensor[T], err error) {
	var (
		S Voigt[T]
	)
	if S, err = StressVoigt(C, E); err != nil {
		return
	}
	return UnpackStress(S)
}

/*
ComputeStressWithEigenstrain subtracts a stress free strain eps0 (a symmetric
tensor, e.g. the misfit strain of a precipitate) from the total strain before
applying Hooke's law.
*/
func ComputeStressWithEigenstrain[T types.Real[T]](C *Stiffness, ux, eps0 Tensor[T]) (R Tensor[T], err error) {
	var (
		E Voigt[T]
	)
	if ux.Dim != C.dim || eps0.Dim != C.dim {
		err = fmt.Errorf("%w: CIJ is %dD, gradient is %dD, eigenstrain is %dD",
			ErrDimensionMismatch, int(C.dim), int(ux.Dim), int(eps0.Dim))
		return
	}
	if E, err = ElasticStrain(ux, eps0); err != nil {
		return
	}
	return ComputeStressFromStrain(C, E)
}

// StrainEnergyDensity is 0.5 * S.E for the gradient ux
func StrainEnergyDensity[T types.Real[T]](C *Stiffness, ux Tensor[T]) (w T, err error) {
	var (
		E Voigt[T]
	)
	if ux.Dim != C.dim {
		err = fmt.Errorf("%w: CIJ is %dD, gradient is %dD", ErrDimensionMismatch, int(C.dim), int(ux.Dim))
		return
	}
	if E, err = StrainVoigt(ux); err != nil {
		return
	}
	return StrainEnergyDensityFromStrain(C, E)
}

// StrainEnergyDensityFromStrain is 0.5 * S.E for an elastic strain in Voigt form
func StrainEnergyDensityFromStrain[T types.Real[T]](C *Stiffness, E Voigt[T]) (w T, err error) {
	var (
		S Voigt[T]
	)
	if S, err = StressVoigt(C, E); err != nil {
		return
	}
	w = S.Dot(E).Scale(0.5)
	return
}

// ElasticStrain is the Voigt strain of ux less the stress free strain eps0
func ElasticStrain[T types.Real[T]](ux, eps0 Tensor[T]) (E Voigt[T], err error) {
	var (
		E0 Voigt[T]
	)
	if ux.Dim != eps0.Dim {
		err = fmt.Errorf("%w: gradient is %dD, eigenstrain is %dD", ErrDimensionMismatch, int(ux.Dim), int(eps0.Dim))
		return
	}
	if E, err = StrainVoigt(ux); err != nil {
		return
	}
	if E0, err = StrainVoigt(eps0); err != nil {
		return
	}
	return E.Sub(E0), nil
}
