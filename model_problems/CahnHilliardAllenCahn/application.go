package CahnHilliardAllenCahn

import (
	"errors"
	"fmt"

	"github.com/notargets/gopfield/InputParameters"
	"github.com/notargets/gopfield/boundary"
	"github.com/notargets/gopfield/geometry"
	"github.com/notargets/gopfield/initial"
	"github.com/notargets/gopfield/mechanics"
	"github.com/notargets/gopfield/types"
)

var ErrNoElasticity = errors.New("no elastic constants were supplied")

/*
Application is the per-problem setup handed to the phase field driver: the
domain, initial conditions for every scalar field, the boundary condition
declarations and, when the model is coupled to mechanics, the stiffness.
*/
type Application struct {
	Title  string
	Domain geometry.Domain
	IC     *initial.CoupledCHAC
	BCs    *boundary.Registry
	CIJ    *mechanics.Stiffness
}

// NewApplication uses the default initial and boundary conditions
func NewApplication(domain geometry.Domain) (app *Application, err error) {
	app = &Application{
		Title:  "Coupled Cahn-Hilliard/Allen-Cahn",
		Domain: domain,
		IC:     initial.NewCoupledCHAC(domain),
		BCs:    boundary.NewRegistry(domain.Dim),
	}
	if err = app.IC.Validate(); err != nil {
		return nil, err
	}
	if err = app.SetBCs(); err != nil {
		return nil, err
	}
	return
}

// SetBCs declares no-flux conditions on the concentration and the order
// parameter, skipping fields the model does not have
func (app *Application) SetBCs() (err error) {
	for f := 0; f < 2 && f < app.IC.NumFields; f++ {
		if err = app.BCs.InputBCs(f, 0, "ZERO_DERIVATIVE", 0); err != nil {
			return
		}
	}
	return
}

func NewFromInput(ip *InputParameters.InputParametersPF) (app *Application, err error) {
	var (
		domain = geometry.Domain{
			Dim:          types.Dimension(ip.Dimension),
			RefineFactor: ip.RefineFactor,
		}
	)
	if len(ip.Span) < ip.Dimension || len(ip.Subdivisions) < ip.Dimension {
		return nil, fmt.Errorf("input needs %d Span and Subdivisions entries, have %d and %d",
			ip.Dimension, len(ip.Span), len(ip.Subdivisions))
	}
	copy(domain.Span[:], ip.Span)
	copy(domain.Subdivisions[:], ip.Subdivisions)
	app = &Application{
		Title:  ip.Title,
		Domain: domain,
		IC:     initial.NewCoupledCHAC(domain),
		BCs:    boundary.NewRegistry(domain.Dim),
	}
	if ip.NumFields != 0 {
		app.IC.NumFields = ip.NumFields
	}
	if ip.InterfaceWidth != 0 {
		app.IC.InterfaceWidth = ip.InterfaceWidth
	}
	if err = app.IC.Validate(); err != nil {
		return nil, err
	}
	if len(ip.BCs) == 0 {
		err = app.SetBCs()
	} else {
		err = app.declareBCs(ip.BCs)
	}
	if err != nil {
		return nil, err
	}
	if ip.Elasticity != nil {
		var model mechanics.ElasticModel
		if model, err = mechanics.NewElasticModel(ip.Elasticity.Model); err != nil {
			return nil, err
		}
		if app.CIJ, err = mechanics.NewStiffnessFromConstants(domain.Dim, model, ip.Elasticity.Constants); err != nil {
			return nil, err
		}
	}
	return
}

func (app *Application) declareBCs(bcs []InputParameters.BCInput) (err error) {
	for _, bc := range bcs {
		if len(bc.Faces) == 0 {
			err = app.BCs.InputBCs(bc.Field, bc.Component, bc.Type, bc.Value)
		} else {
			faces := make([]boundary.FaceBC, len(bc.Faces))
			for i, f := range bc.Faces {
				if faces[i], err = boundary.NewFaceBC(f.Type, f.Value); err != nil {
					break
				}
			}
			if err == nil {
				err = app.BCs.InputBCsPerFace(bc.Field, bc.Component, faces)
			}
		}
		if err != nil {
			return fmt.Errorf("boundary condition for field %d component %d: %w", bc.Field, bc.Component, err)
		}
	}
	return
}

// RequiredBCs lists the unknowns the PDE system integrates, one scalar
// component per field
func (app *Application) RequiredBCs() (req []boundary.FieldComponent) {
	for f := 0; f < app.IC.NumFields; f++ {
		req = append(req, boundary.FieldComponent{Field: f})
	}
	return
}

// CheckBCs is the driver side test that every unknown received a declaration
func (app *Application) CheckBCs() error {
	if missing := app.BCs.Missing(app.RequiredBCs()); len(missing) != 0 {
		return fmt.Errorf("no boundary condition declared for (field,component) %v", missing)
	}
	return nil
}

// Stress applies the application's stiffness to a displacement gradient
func (app *Application) Stress(ux mechanics.Tensor[types.Scalar]) (R mechanics.Tensor[types.Scalar], err error) {
	if app.CIJ == nil {
		err = ErrNoElasticity
		return
	}
	return mechanics.ComputeStress(app.CIJ, ux)
}
