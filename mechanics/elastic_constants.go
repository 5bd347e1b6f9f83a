package mechanics

import (
	"fmt"
	"strings"

	"github.com/notargets/gopfield/types"
)

type ElasticModel uint8

const (
	Isotropic   ElasticModel = iota // E, nu (E alone in 1D)
	Transverse                      // C11, C33, C44, C12, C13, symmetry axis along z
	Orthotropic                     // C11, C22, C33, C44, C55, C66, C12, C13, C23
	Cubic                           // C11, C12, C44
	Anisotropic                     // upper triangle of CIJ, row major
)

var elasticModelNames = map[string]ElasticModel{
	"isotropic":   Isotropic,
	"transverse":  Transverse,
	"orthotropic": Orthotropic,
	"cubic":       Cubic,
	"anisotropic": Anisotropic,
}

func NewElasticModel(name string) (ElasticModel, error) {
	if m, ok := elasticModelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown elastic model %q", name)
}

func (m ElasticModel) String() string {
	switch m {
	case Isotropic:
		return "ISOTROPIC"
	case Transverse:
		return "TRANSVERSE"
	case Orthotropic:
		return "ORTHOTROPIC"
	case Cubic:
		return "CUBIC"
	case Anisotropic:
		return "ANISOTROPIC"
	}
	return "UNKNOWN"
}

// NumConstants is the count of constants a model needs in dimension dim, zero
// when the combination is unsupported
func (m ElasticModel) NumConstants(dim types.Dimension) int {
	switch dim {
	case 1:
		switch m {
		case Isotropic, Anisotropic:
			return 1
		}
	case 2:
		switch m {
		case Isotropic:
			return 2
		case Cubic:
			return 3
		case Anisotropic:
			return 6
		}
	case 3:
		switch m {
		case Isotropic:
			return 2
		case Transverse:
			return 5
		case Orthotropic:
			return 9
		case Cubic:
			return 3
		case Anisotropic:
			return 21
		}
	}
	return 0
}

// Lame returns the Lame parameters for Young's modulus E and Poisson ratio nu
func Lame(E, nu float64) (lambda, mu float64) {
	lambda = E * nu / ((1. + nu) * (1. - 2.*nu))
	mu = E / (2. * (1. + nu))
	return
}

/*
NewStiffnessFromConstants assembles CIJ from a list of elastic constants for
the chosen model. 2D isotropic and cubic media are plane strain reductions of
the 3D matrices, 1D isotropic uses Young's modulus alone.
*/
func NewStiffnessFromConstants(dim types.Dimension, model ElasticModel, constants []float64) (C *Stiffness, err error) {
	if err = dim.Check(); err != nil {
		return
	}
	var (
		nc = model.NumConstants(dim)
		n  = VoigtSize(dim)
		c  = make([]float64, n*n)
	)
	if nc == 0 {
		err = fmt.Errorf("elastic model %s is not available in %dD", model, int(dim))
		return
	}
	if len(constants) != nc {
		err = fmt.Errorf("elastic model %s in %dD needs %d constants, have %d",
			model, int(dim), nc, len(constants))
		return
	}
	set := func(i, j int, val float64) {
		c[i*n+j] = val
		c[j*n+i] = val
	}
	k := constants
	switch {
	case dim == 1 && model == Isotropic:
		set(0, 0, k[0])
	case model == Anisotropic:
		var ii int
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				set(i, j, k[ii])
				ii++
			}
		}
	case model == Isotropic:
		lambda, mu := Lame(k[0], k[1])
		for i := 0; i < int(dim); i++ {
			for j := 0; j < int(dim); j++ {
				set(i, j, lambda)
			}
			set(i, i, lambda+2.*mu)
		}
		for i := int(dim); i < n; i++ {
			set(i, i, mu)
		}
	case model == Cubic:
		C11, C12, C44 := k[0], k[1], k[2]
		for i := 0; i < int(dim); i++ {
			for j := 0; j < int(dim); j++ {
				set(i, j, C12)
			}
			set(i, i, C11)
		}
		for i := int(dim); i < n; i++ {
			set(i, i, C44)
		}
	case model == Transverse:
		C11, C33, C44, C12, C13 := k[0], k[1], k[2], k[3], k[4]
		set(0, 0, C11)
		set(1, 1, C11)
		set(2, 2, C33)
		set(0, 1, C12)
		set(0, 2, C13)
		set(1, 2, C13)
		set(3, 3, C44)
		set(4, 4, C44)
		set(5, 5, 0.5*(C11-C12))
	case model == Orthotropic:
		set(0, 0, k[0])
		set(1, 1, k[1])
		set(2, 2, k[2])
		set(3, 3, k[3])
		set(4, 4, k[4])
		set(5, 5, k[5])
		set(0, 1, k[6])
		set(0, 2, k[7])
		set(1, 2, k[8])
	}
	return NewStiffness(dim, c)
}
