package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopfield/model_problems/CahnHilliardAllenCahn"
)

const bcsInput = `
Title: golden
Dimension: 2
Span: [40, 40]
Subdivisions: [2, 2]
RefineFactor: 1
BCs:
  - {Field: 0, Component: 0, Type: ZERO_DERIVATIVE}
  - Field: 1
    Component: 0
    Faces:
      - {Type: DIRICHLET, Value: 1}
      - {Type: DIRICHLET, Value: 0}
      - {Type: PERIODIC}
      - {Type: PERIODIC}
`

const stressInput = `
Title: cubic
Dimension: 2
Span: [40, 40]
Subdivisions: [2, 2]
RefineFactor: 1
Elasticity:
  Model: CUBIC
  Constants: [250, 150, 120]
`

func writeInput(t *testing.T, input string) (fileName string) {
	fileName = filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(input), 0644))
	viper.Set("inputConditionsFile", fileName)
	return
}

func TestBCsCommand(t *testing.T) {
	fileName := writeInput(t, bcsInput)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"bcs", "-I", fileName})
	require.NoError(t, rootCmd.Execute())
	g := goldie.New(t)
	g.Assert(t, "bcs", buf.Bytes())
}

func TestBCsMissingField(t *testing.T) {
	writeInput(t, strings.Replace(bcsInput, "RefineFactor: 1", "RefineFactor: 1\nNumFields: 3", 1))
	var buf bytes.Buffer
	err := RunBCs(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(2,0)")
	// Declared conditions are still listed
	assert.Contains(t, buf.String(), "field 1 component 0")
}

func TestICCommand(t *testing.T) {
	fileName := writeInput(t, bcsInput)
	outFile := filepath.Join(t.TempDir(), "ic.dat")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"ic", "-I", fileName, "-o", outFile, "-p", "2"})
	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "\"golden\"")
	assert.Contains(t, out, "25 nodes, cell size 10")
	assert.Contains(t, out, "field 0: min")
	assert.Contains(t, out, "field 1: min")
	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 4+25)
	assert.Equal(t, "# golden", lines[0])
}

func TestReadICFlags(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().String("outputFile", "out.dat", "")
	c.Flags().String("profile", "cpu", "")
	_, err := readICFlags(c)
	assert.Error(t, err)
	c.Flags().Bool("perf", true, "")
	mic, err := readICFlags(c)
	require.NoError(t, err)
	assert.Equal(t, "out.dat", mic.OutputFile)
	assert.Equal(t, "cpu", mic.Profile)
	assert.True(t, mic.Perf)
	_, err = readICFlags(&cobra.Command{})
	assert.Error(t, err)
}

func TestICErrors(t *testing.T) {
	var buf bytes.Buffer
	err := RunIC(&buf, &ModelIC{Profile: "gpu"})
	assert.Error(t, err)

	writeInput(t, "Dimension: 1\nSpan: [1]\nSubdivisions: [1]\n")
	err = RunIC(&buf, &ModelIC{})
	assert.Error(t, err)

	viper.Set("inputConditionsFile", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, RunIC(&buf, &ModelIC{}))
}

func TestStress(t *testing.T) {
	writeInput(t, stressInput)
	{
		var buf bytes.Buffer
		require.NoError(t, RunStress(&buf, []float64{0.5, 0, 0, 0}, nil))
		out := buf.String()
		assert.Contains(t, out, "strain (Voigt) = [0.5 0 0]")
		assert.Contains(t, out, "stress (Voigt) = [125 75 0]")
		assert.Contains(t, out, "\t[125 0]\n\t[0 75]\n")
		assert.Contains(t, out, "strain energy density = 31.25")
	}
	{ // Stress free when the gradient matches the eigenstrain
		var buf bytes.Buffer
		require.NoError(t, RunStress(&buf, []float64{0.5, 0, 0, 0}, []float64{0.5, 0, 0, 0}))
		out := buf.String()
		assert.Contains(t, out, "elastic strain (Voigt) = [0 0 0]")
		assert.Contains(t, out, "stress (Voigt) = [0 0 0]")
		assert.Contains(t, out, "\t[0 0]\n\t[0 0]\n")
		assert.Contains(t, out, "strain energy density = 0\n")
	}
	{ // Every printed quantity uses the elastic part of the strain
		var buf bytes.Buffer
		require.NoError(t, RunStress(&buf, []float64{0.5, 0, 0, 0}, []float64{0.25, 0, 0, 0}))
		out := buf.String()
		assert.Contains(t, out, "elastic strain (Voigt) = [0.25 0 0]")
		assert.Contains(t, out, "stress (Voigt) = [62.5 37.5 0]")
		assert.Contains(t, out, "\t[62.5 0]\n\t[0 37.5]\n")
		assert.Contains(t, out, "strain energy density = 7.8125\n")
	}
	{
		var buf bytes.Buffer
		err := RunStress(&buf, []float64{0.5, 0, 0}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "needs 4 values")
	}
	{
		writeInput(t, bcsInput)
		var buf bytes.Buffer
		err := RunStress(&buf, []float64{0.5, 0, 0, 0}, nil)
		assert.True(t, errors.Is(err, CahnHilliardAllenCahn.ErrNoElasticity))
	}
}
