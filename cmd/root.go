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
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopfield/InputParameters"
)

var cfgFile string

const exampleFile = `
########################################
Title: "Two precipitates"
Dimension: 2
Span: [100., 100.]
Subdivisions: [3, 3]
RefineFactor: 4
NumFields: 2
BCs:
  - {Field: 0, Component: 0, Type: ZERO_DERIVATIVE}
  - {Field: 1, Component: 0, Type: ZERO_DERIVATIVE}
Elasticity:
  Model: ISOTROPIC # or TRANSVERSE, ORTHOTROPIC, CUBIC, ANISOTROPIC
  Constants: [200., 0.3]
########################################
`

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gopfield",
	Short: "Phase field application setup: initial conditions, boundary conditions and elastic stress",
	Long: `
Evaluates the per-application hooks of a coupled Cahn-Hilliard/Allen-Cahn phase
field model: initial conditions on the refined grid, boundary condition
declarations, and the stress for a displacement gradient.

gopfield ic -I input.yaml`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gopfield.yaml)")
	rootCmd.PersistentFlags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Dimension, Span, Subdivisions\n\t- BCs\n\t- Elasticity")
	_ = viper.BindPFlag("inputConditionsFile", rootCmd.PersistentFlags().Lookup("inputConditionsFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gopfield" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gopfield")
	}

	viper.SetEnvPrefix("gopfield")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func readInput() (ip *InputParameters.InputParametersPF, err error) {
	fileName := viper.GetString("inputConditionsFile")
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile), example:%s", exampleFile)
		return
	}
	return InputParameters.ReadFile(fileName)
}
