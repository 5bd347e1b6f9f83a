package utils

import (
	"fmt"
	"strings"
)

// BCType represents the boundary condition kinds understood by the phase
// field driver
type BCType uint8

const (
	// BCNone marks a face that has not been assigned a condition
	BCNone BCType = iota

	BCZeroDerivative // Homogeneous Neumann, zero normal gradient
	BCDirichlet      // Fixed value
	BCPeriodic       // Face is identified with the opposite face
)

// String returns the input-file spelling of a BCType
func (bc BCType) String() string {
	names := map[BCType]string{
		BCNone:           "NONE",
		BCZeroDerivative: "ZERO_DERIVATIVE",
		BCDirichlet:      "DIRICHLET",
		BCPeriodic:       "PERIODIC",
	}

	if name, ok := names[bc]; ok {
		return name
	}
	return "UNKNOWN"
}

// UsesValue is true only for kinds that carry a boundary value
func (bc BCType) UsesValue() bool {
	return bc == BCDirichlet
}

// BCNameMap provides a mapping from boundary condition names to BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"zero_derivative": BCZeroDerivative,
	"zeroderivative":  BCZeroDerivative,
	"neumann":         BCZeroDerivative,
	"no_flux":         BCZeroDerivative,
	"noflux":          BCZeroDerivative,

	"dirichlet": BCDirichlet,
	"fixed":     BCDirichlet,

	"periodic": BCPeriodic,
}

// ParseBCName converts a boundary condition name string to BCType
// The matching is case-insensitive and trims whitespace
func ParseBCName(name string) (BCType, error) {
	lowerName := strings.ToLower(strings.TrimSpace(name))

	if bcType, ok := BCNameMap[lowerName]; ok {
		return bcType, nil
	}
	return BCNone, fmt.Errorf("unknown boundary condition type %q, options are ZERO_DERIVATIVE, DIRICHLET and PERIODIC", name)
}
