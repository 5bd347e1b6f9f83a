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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopfield/model_problems/CahnHilliardAllenCahn"
	"github.com/notargets/gopfield/utils"
)

type ModelIC struct {
	OutputFile     string
	ParallelDegree int
	Profile        string
	Perf           bool
}

// ICCmd represents the ic command
var ICCmd = &cobra.Command{
	Use:   "ic",
	Short: "Evaluate the initial conditions on the refined grid",
	Long: `Evaluate the initial condition of every field on every vertex of the refined
grid, print a per field summary and optionally write the table to a file`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var mic *ModelIC
		if mic, err = readICFlags(cmd); err != nil {
			return
		}
		return RunIC(cmd.OutOrStdout(), mic)
	},
}

func readICFlags(cmd *cobra.Command) (mic *ModelIC, err error) {
	mic = &ModelIC{}
	if mic.OutputFile, err = cmd.Flags().GetString("outputFile"); err != nil {
		return nil, err
	}
	if mic.Profile, err = cmd.Flags().GetString("profile"); err != nil {
		return nil, err
	}
	if mic.Perf, err = cmd.Flags().GetBool("perf"); err != nil {
		return nil, err
	}
	mic.ParallelDegree = viper.GetInt("parallelDegree")
	return
}

func init() {
	rootCmd.AddCommand(ICCmd)
	ICCmd.Flags().StringP("outputFile", "o", "", "write the sampled fields as a whitespace separated table")
	ICCmd.Flags().IntP("parallelDegree", "p", 0, "number of goroutines sampling the grid, 0 uses every CPU, --perf forces 1")
	ICCmd.Flags().String("profile", "", "write a pprof profile of the run to the current directory: cpu or mem")
	ICCmd.Flags().Bool("perf", false, "count the CPU instructions used to sample the grid (linux only)")
	_ = viper.BindPFlag("parallelDegree", ICCmd.Flags().Lookup("parallelDegree"))
}

func RunIC(out io.Writer, mic *ModelIC) (err error) {
	switch mic.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile kind %q, use cpu or mem", mic.Profile)
	}
	ip, err := readInput()
	if err != nil {
		return
	}
	fmt.Fprint(out, ip.String())
	app, err := CahnHilliardAllenCahn.NewFromInput(ip)
	if err != nil {
		return
	}
	if err = app.CheckBCs(); err != nil {
		return
	}
	var (
		snap   *CahnHilliardAllenCahn.Snapshot
		sample = func() (err error) {
			snap, err = app.SampleICs(mic.ParallelDegree)
			return
		}
	)
	if mic.Perf {
		// The counters follow the calling thread only
		mic.ParallelDegree = 1
		var instructions uint64
		if instructions, err = utils.CountInstructions(sample); err != nil {
			return
		}
		fmt.Fprintf(out, "%d CPU instructions\n", instructions)
	} else if err = sample(); err != nil {
		return
	}
	fmt.Fprintf(out, "run %s, %d nodes, cell size %g\n",
		snap.RunID, app.Domain.NumNodes(), app.Domain.CellSize())
	for _, s := range snap.Summary() {
		fmt.Fprintf(out, "field %d: min %8.5f max %8.5f mean %8.5f\n", s.Field, s.Min, s.Max, s.Mean)
	}
	fmt.Fprintln(out, utils.GetMemUsage())
	if len(mic.OutputFile) != 0 {
		var f *os.File
		if f, err = os.Create(mic.OutputFile); err != nil {
			return
		}
		defer f.Close()
		if err = snap.Write(f); err != nil {
			return
		}
		fmt.Fprintf(out, "wrote %s\n", mic.OutputFile)
	}
	return
}
