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
)

// BCsCmd represents the bcs command
var BCsCmd = &cobra.Command{
	Use:   "bcs",
	Short: "List the boundary conditions declared for every field",
	Long: `List the boundary conditions declared for every (field, component), in
declaration order, and check that every field of the model has one`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunBCs(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(BCsCmd)
}

func RunBCs(out io.Writer) (err error) {
	ip, err := readInput()
	if err != nil {
		return
	}
	app, err := CahnHilliardAllenCahn.NewFromInput(ip)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "\"%s\" %dD, %d fields\n", app.Title, int(app.Domain.Dim), app.IC.NumFields)
	for _, rec := range app.BCs.Entries() {
		fmt.Fprintln(out, rec)
		if axes := app.BCs.PeriodicAxes(rec.Field, rec.Component); len(axes) != 0 {
			fmt.Fprintf(out, "\tperiodic axes %v\n", axes)
		}
	}
	if err = app.CheckBCs(); err != nil {
		return
	}
	fmt.Fprintln(out, "every field has a boundary condition")
	return
}
