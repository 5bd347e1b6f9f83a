package initial

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gopfield/geometry"
	"github.com/notargets/gopfield/types"
)

var ErrFieldIndex = errors.New("field index out of range")

// ScalarInitialCondition is the driver hook for scalar fields
type ScalarInitialCondition interface {
	Value(p types.Point, field int) (float64, error)
}

// VectorInitialCondition is the driver hook for vector fields, out holds one
// entry per spatial component
type VectorInitialCondition interface {
	VectorValue(p types.Point, field int, out []float64) error
}

/*
Inclusion is a smoothed circular (2D) or spherical (3D) seed. Center is given as
fractions of the domain span, Radius as a fraction of the x span.
*/
type Inclusion struct {
	Center [types.MaxDimension]float64
	Radius float64
}

// Profile is 0.5*(1-tanh((r-R)/w)), one inside the seed and zero far outside
func Profile(r, radius, width float64) float64 {
	return 0.5 * (1. - math.Tanh((r-radius)/width))
}

// FieldProfile is the value far from every seed plus the jump to the seed
// interior
type FieldProfile struct {
	Baseline, Amplitude float64
}

/*
CoupledCHAC evaluates the initial state of the coupled Cahn-Hilliard/Allen-Cahn
model: a concentration field (index 0) and NumFields-1 structural order
parameters, each the superposition of the same set of inclusions.
*/
type CoupledCHAC struct {
	Domain         geometry.Domain
	Inclusions     []Inclusion
	InterfaceWidth float64
	Concentration  FieldProfile
	OrderParameter FieldProfile
	NumFields      int
}

// NewCoupledCHAC returns the two-inclusion precipitate setup, seeds at 1/3 and
// 3/4 of the span with radii SpanX/5 and SpanX/12
func NewCoupledCHAC(domain geometry.Domain) (ic *CoupledCHAC) {
	ic = &CoupledCHAC{
		Domain: domain,
		Inclusions: []Inclusion{
			{Center: [3]float64{1. / 3., 1. / 3., 1. / 3.}, Radius: 1. / 5.},
			{Center: [3]float64{3. / 4., 3. / 4., 3. / 4.}, Radius: 1. / 12.},
		},
		InterfaceWidth: 1.0,
		Concentration:  FieldProfile{Baseline: 0.009, Amplitude: 0.125},
		OrderParameter: FieldProfile{Baseline: 0, Amplitude: 1},
		NumFields:      2,
	}
	return
}

func (ic *CoupledCHAC) Validate() (err error) {
	if err = ic.Domain.Dim.Check(2, 3); err != nil {
		return fmt.Errorf("initial conditions: %w", err)
	}
	if err = ic.Domain.Validate(); err != nil {
		return
	}
	if ic.InterfaceWidth <= 0 {
		return fmt.Errorf("interface width must be positive, have %g", ic.InterfaceWidth)
	}
	if ic.NumFields < 1 {
		return fmt.Errorf("at least one field is required, have %d", ic.NumFields)
	}
	return
}

// FieldProfile returns the baseline/amplitude pair for a field index
func (ic *CoupledCHAC) FieldProfile(field int) (fp FieldProfile, err error) {
	if field < 0 || field >= ic.NumFields {
		err = fmt.Errorf("%w: %d, model has %d fields", ErrFieldIndex, field, ic.NumFields)
		return
	}
	if field == 0 {
		return ic.Concentration, nil
	}
	return ic.OrderParameter, nil
}

// Value is the initial value of a scalar field at p
func (ic *CoupledCHAC) Value(p types.Point, field int) (val float64, err error) {
	var (
		fp FieldProfile
	)
	if err = ic.Domain.Dim.Check(2, 3); err != nil {
		return
	}
	if err = ic.Domain.CheckPoint(p); err != nil {
		return
	}
	if fp, err = ic.FieldProfile(field); err != nil {
		return
	}
	val = fp.Baseline
	for _, inc := range ic.Inclusions {
		r := p.Distance(ic.Domain.FractionalPoint(inc.Center))
		val += fp.Amplitude * Profile(r, inc.Radius*ic.Domain.Span[0], ic.InterfaceWidth)
	}
	return
}

// VectorValue leaves out untouched, no vector field in this model needs a
// nontrivial initial state
func (ic *CoupledCHAC) VectorValue(p types.Point, field int, out []float64) (err error) {
	if err = ic.Domain.Dim.Check(2, 3); err != nil {
		return
	}
	if err = ic.Domain.CheckPoint(p); err != nil {
		return
	}
	if len(out) != int(ic.Domain.Dim) {
		return fmt.Errorf("vector initial condition needs %d components, have %d", int(ic.Domain.Dim), len(out))
	}
	return
}
