package boundary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/notargets/gopfield/geometry"
	"github.com/notargets/gopfield/types"
	"github.com/notargets/gopfield/utils"
)

var (
	ErrDuplicateBC = errors.New("boundary condition already declared")
	ErrFaceCount   = errors.New("wrong number of per-face boundary conditions")
	ErrPeriodic    = errors.New("periodic boundary condition must be set on both faces of an axis")
)

// FieldComponent identifies one scalar unknown, the component is zero for
// scalar fields
type FieldComponent struct {
	Field, Component int
}

func (fc FieldComponent) String() string {
	return fmt.Sprintf("(%d,%d)", fc.Field, fc.Component)
}

// FaceBC is the condition applied on one face of the domain
type FaceBC struct {
	Type  utils.BCType
	Value float64
}

func NewFaceBC(kind string, value float64) (fb FaceBC, err error) {
	if fb.Type, err = utils.ParseBCName(kind); err != nil {
		return
	}
	if fb.Type.UsesValue() {
		fb.Value = value
	}
	return
}

// Record holds the conditions for one (field, component) on every face,
// indexed with the geometry face numbering
type Record struct {
	FieldComponent
	Faces []FaceBC
}

// Uniform is true when every face shares the same condition, false for an
// empty Record
func (r Record) Uniform() bool {
	if len(r.Faces) == 0 {
		return false
	}
	for _, f := range r.Faces[1:] {
		if f != r.Faces[0] {
			return false
		}
	}
	return true
}

func (r Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "field %d component %d:", r.Field, r.Component)
	if len(r.Faces) == 0 {
		b.WriteString(" none")
		return b.String()
	}
	if r.Uniform() {
		fmt.Fprintf(&b, " all %s", r.Faces[0].format())
		return b.String()
	}
	for face, f := range r.Faces {
		fmt.Fprintf(&b, " %s %s", geometry.FaceName(face), f.format())
	}
	return b.String()
}

func (f FaceBC) format() string {
	if f.Type.UsesValue() {
		return fmt.Sprintf("%s=%g", f.Type, f.Value)
	}
	return f.Type.String()
}

/*
Registry collects the boundary conditions declared before time stepping. Each
(field, component) is declared exactly once. Declarations are safe from
multiple goroutines; records are not modified after declaration.
*/
type Registry struct {
	Dim     types.Dimension
	mu      sync.RWMutex
	order   []FieldComponent
	records map[FieldComponent]Record
}

func NewRegistry(dim types.Dimension) *Registry {
	return &Registry{
		Dim:     dim,
		records: make(map[FieldComponent]Record),
	}
}

// InputBCs sets the same condition on the entire boundary, value is ignored
// unless kind is DIRICHLET
func (reg *Registry) InputBCs(field, component int, kind string, value float64) (err error) {
	var (
		fb FaceBC
	)
	if fb, err = NewFaceBC(kind, value); err != nil {
		return
	}
	faces := make([]FaceBC, 2*int(reg.Dim))
	for i := range faces {
		faces[i] = fb
	}
	return reg.InputBCsPerFace(field, component, faces)
}

// InputBCsPerFace sets one condition per face, 2*Dim entries ordered x-min,
// x-max, y-min, ...
func (reg *Registry) InputBCsPerFace(field, component int, faces []FaceBC) (err error) {
	if err = reg.Dim.Check(); err != nil {
		return
	}
	if field < 0 || component < 0 {
		return fmt.Errorf("field and component must not be negative, have %d and %d", field, component)
	}
	if len(faces) != 2*int(reg.Dim) {
		return fmt.Errorf("%w: %dD needs %d, have %d", ErrFaceCount, int(reg.Dim), 2*int(reg.Dim), len(faces))
	}
	rec := Record{
		FieldComponent: FieldComponent{field, component},
		Faces:          make([]FaceBC, len(faces)),
	}
	for face, f := range faces {
		if f.Type == utils.BCNone || f.Type > utils.BCPeriodic {
			return fmt.Errorf("face %s of %v has no valid boundary condition type", geometry.FaceName(face), rec.FieldComponent)
		}
		if !f.Type.UsesValue() {
			f.Value = 0
		}
		rec.Faces[face] = f
	}
	for face := 0; face < len(faces); face += 2 {
		if (rec.Faces[face].Type == utils.BCPeriodic) != (rec.Faces[face+1].Type == utils.BCPeriodic) {
			return fmt.Errorf("%w: %v on %s and %s", ErrPeriodic, rec.FieldComponent,
				geometry.FaceName(face), geometry.FaceName(face+1))
		}
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.records[rec.FieldComponent]; exists {
		return fmt.Errorf("%w: field %d component %d", ErrDuplicateBC, field, component)
	}
	reg.records[rec.FieldComponent] = rec
	reg.order = append(reg.order, rec.FieldComponent)
	return
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.order)
}

func (reg *Registry) Get(field, component int) (rec Record, ok bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rec, ok = reg.records[FieldComponent{field, component}]
	return
}

// Entries returns the records in declaration order
func (reg *Registry) Entries() (recs []Record) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	recs = make([]Record, len(reg.order))
	for i, fc := range reg.order {
		recs[i] = reg.records[fc]
	}
	return
}

// Missing lists the required pairs that were never declared, sorted
func (reg *Registry) Missing(required []FieldComponent) (missing []FieldComponent) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	for _, fc := range required {
		if _, ok := reg.records[fc]; !ok {
			missing = append(missing, fc)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Field != missing[j].Field {
			return missing[i].Field < missing[j].Field
		}
		return missing[i].Component < missing[j].Component
	})
	return
}

// PeriodicAxes reports which axes are periodic for a (field, component)
func (reg *Registry) PeriodicAxes(field, component int) (axes []int) {
	rec, ok := reg.Get(field, component)
	if !ok {
		return
	}
	for face := 0; face < len(rec.Faces); face += 2 {
		if rec.Faces[face].Type == utils.BCPeriodic {
			axes = append(axes, face/2)
		}
	}
	return
}
