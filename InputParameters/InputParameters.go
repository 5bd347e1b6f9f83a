package InputParameters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"
)

// BCInput is one call to the boundary condition declarator. Either Type/Value
// apply to the whole boundary, or Faces lists one entry per face
type BCInput struct {
	Field     int           `yaml:"Field"`
	Component int           `yaml:"Component"`
	Type      string        `yaml:"Type"`
	Value     float64       `yaml:"Value"`
	Faces     []FaceBCInput `yaml:"Faces"`
}

type FaceBCInput struct {
	Type  string  `yaml:"Type"`
	Value float64 `yaml:"Value"`
}

type ElasticityInput struct {
	Model     string    `yaml:"Model"`     // ISOTROPIC, TRANSVERSE, ORTHOTROPIC, CUBIC, ANISOTROPIC
	Constants []float64 `yaml:"Constants"` // Ordered as documented for each model
}

// Parameters obtained from the YAML input file
type InputParametersPF struct {
	Title          string           `yaml:"Title"`
	Dimension      int              `yaml:"Dimension"`
	Span           []float64        `yaml:"Span"`
	Subdivisions   []int            `yaml:"Subdivisions"`
	RefineFactor   int              `yaml:"RefineFactor"`
	NumFields      int              `yaml:"NumFields"`
	InterfaceWidth float64          `yaml:"InterfaceWidth"`
	BCs            []BCInput        `yaml:"BCs"`
	Elasticity     *ElasticityInput `yaml:"Elasticity"`
}

// Defaults match the two-field precipitate application
func NewInputParametersPF() *InputParametersPF {
	return &InputParametersPF{
		Title:          "Coupled Cahn-Hilliard/Allen-Cahn",
		Dimension:      2,
		Span:           []float64{100, 100, 100},
		Subdivisions:   []int{3, 3, 3},
		RefineFactor:   4,
		NumFields:      2,
		InterfaceWidth: 1.0,
	}
}

func (ip *InputParametersPF) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func ReadFile(fileName string) (ip *InputParametersPF, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = NewInputParametersPF()
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		ip = nil
	}
	return
}

func (ip *InputParametersPF) Print() {
	fmt.Print(ip.String())
}

func (ip *InputParametersPF) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(&b, "[%d]\t\t\t\t= Dimension\n", ip.Dimension)
	fmt.Fprintf(&b, "%v\t\t= Span\n", ip.Span)
	fmt.Fprintf(&b, "%v\t\t\t= Subdivisions\n", ip.Subdivisions)
	fmt.Fprintf(&b, "[%d]\t\t\t\t= Refine Factor\n", ip.RefineFactor)
	fmt.Fprintf(&b, "[%d]\t\t\t\t= Number of Fields\n", ip.NumFields)
	fmt.Fprintf(&b, "%8.5f\t\t= Interface Width\n", ip.InterfaceWidth)
	for _, bc := range ip.BCs {
		if len(bc.Faces) != 0 {
			fmt.Fprintf(&b, "BCs[%d,%d] = %v\n", bc.Field, bc.Component, bc.Faces)
			continue
		}
		fmt.Fprintf(&b, "BCs[%d,%d] = %s %g\n", bc.Field, bc.Component, bc.Type, bc.Value)
	}
	if ip.Elasticity != nil {
		fmt.Fprintf(&b, "[%s] %v\t= Elasticity\n", ip.Elasticity.Model, ip.Elasticity.Constants)
	}
	return b.String()
}
