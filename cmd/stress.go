/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/gopfield/model_problems/CahnHilliardAllenCahn"
	"github.com/notargets/gopfield/mechanics"
	"github.com/notargets/gopfield/types"
)

// StressCmd represents the stress command
var StressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Compute the stress for a displacement gradient",
	Long: `Compute the strain, stress and strain energy density for a displacement
gradient using the elastic constants of the input file. The gradient is given
row major, Dimension*Dimension entries:

gopfield stress -I input.yaml --grad 0.01,0,0,0`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var grad, eigen []float64
		if grad, err = cmd.Flags().GetFloat64Slice("grad"); err != nil {
			return
		}
		if eigen, err = cmd.Flags().GetFloat64Slice("eigenstrain"); err != nil {
			return
		}
		return RunStress(cmd.OutOrStdout(), grad, eigen)
	},
}

func init() {
	rootCmd.AddCommand(StressCmd)
	StressCmd.Flags().Float64Slice("grad", nil, "displacement gradient u_i,j, row major")
	StressCmd.Flags().Float64Slice("eigenstrain", nil, "optional stress free strain, row major")
}

func tensorFromFlag(dim types.Dimension, name string, vals []float64) (A mechanics.Tensor[types.Scalar], err error) {
	d := int(dim)
	if len(vals) != d*d {
		err = fmt.Errorf("--%s needs %d values for dimension %d, have %d", name, d*d, d, len(vals))
		return
	}
	rows := make([][]float64, d)
	for i := range rows {
		rows[i] = vals[i*d : (i+1)*d]
	}
	return mechanics.NewScalarTensor(rows...)
}

func RunStress(out io.Writer, grad, eigen []float64) (err error) {
	ip, err := readInput()
	if err != nil {
		return
	}
	app, err := CahnHilliardAllenCahn.NewFromInput(ip)
	if err != nil {
		return
	}
	if app.CIJ == nil {
		return fmt.Errorf("%w, add an Elasticity section to the input", CahnHilliardAllenCahn.ErrNoElasticity)
	}
	dim := app.Domain.Dim
	ux, err := tensorFromFlag(dim, "grad", grad)
	if err != nil {
		return
	}
	// E is the elastic strain, the total strain less any eigenstrain
	var E mechanics.Voigt[types.Scalar]
	if len(eigen) != 0 {
		var eps0 mechanics.Tensor[types.Scalar]
		if eps0, err = tensorFromFlag(dim, "eigenstrain", eigen); err != nil {
			return
		}
		E, err = mechanics.ElasticStrain(ux, eps0)
	} else {
		E, err = mechanics.StrainVoigt(ux)
	}
	if err != nil {
		return
	}
	S, err := mechanics.StressVoigt(app.CIJ, E)
	if err != nil {
		return
	}
	R, err := mechanics.UnpackStress(S)
	if err != nil {
		return
	}
	w, err := mechanics.StrainEnergyDensityFromStrain(app.CIJ, E)
	if err != nil {
		return
	}
	fmt.Fprintln(out, app.CIJ)
	fmt.Fprintf(out, "elastic strain (Voigt) = %v\n", E.Components())
	fmt.Fprintf(out, "stress (Voigt) = %v\n", S.Components())
	fmt.Fprintln(out, "stress =")
	for _, row := range R.Rows() {
		fmt.Fprintf(out, "\t%v\n", row)
	}
	fmt.Fprintf(out, "strain energy density = %g\n", float64(w))
	return
}
