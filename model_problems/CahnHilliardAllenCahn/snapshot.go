package CahnHilliardAllenCahn

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gopfield/geometry"
	"github.com/notargets/gopfield/utils"
)

// Snapshot is every scalar field evaluated on the vertices of the refined grid
type Snapshot struct {
	RunID   uuid.UUID
	Title   string
	Created time.Time
	Domain  geometry.Domain
	Fields  [][]float64 // Fields[field][node], node numbering from Domain.Node
}

type FieldSummary struct {
	Field          int
	Min, Max, Mean float64
}

/*
SampleICs evaluates the initial condition of every field on every grid vertex.
The vertices are sharded over ParallelDegree goroutines, below one uses every
CPU.
*/
func (app *Application) SampleICs(ParallelDegree int) (snap *Snapshot, err error) {
	var (
		Nnodes = app.Domain.NumNodes()
		Nf     = app.IC.NumFields
	)
	snap = &Snapshot{
		RunID:   uuid.New(),
		Title:   app.Title,
		Created: time.Now(),
		Domain:  app.Domain,
		Fields:  make([][]float64, Nf),
	}
	for f := range snap.Fields {
		snap.Fields[f] = make([]float64, Nnodes)
	}
	pm := utils.NewPartitionMap(ParallelDegree, Nnodes)
	err = pm.Run(func(_, kMin, kMax int) (err error) {
		for k := kMin; k < kMax; k++ {
			p := app.Domain.Node(k)
			for f := 0; f < Nf; f++ {
				if snap.Fields[f][k], err = app.IC.Value(p, f); err != nil {
					return fmt.Errorf("node %d: %w", k, err)
				}
			}
		}
		return
	})
	if err != nil {
		return nil, err
	}
	for f, vals := range snap.Fields {
		if k := utils.FindNaN(vals); k >= 0 {
			return nil, fmt.Errorf("field %d is NaN at node %d, %v", f, k, app.Domain.Node(k))
		}
	}
	return
}

func (snap *Snapshot) Summary() (sums []FieldSummary) {
	sums = make([]FieldSummary, len(snap.Fields))
	for f, vals := range snap.Fields {
		sums[f].Field = f
		if len(vals) == 0 {
			continue
		}
		sums[f].Min = floats.Min(vals)
		sums[f].Max = floats.Max(vals)
		sums[f].Mean = floats.Sum(vals) / float64(len(vals))
	}
	return
}

// Write emits a whitespace separated table, one row per vertex with the
// coordinates followed by every field, readable by gnuplot
func (snap *Snapshot) Write(w io.Writer) (err error) {
	var (
		bw  = bufio.NewWriter(w)
		dim = int(snap.Domain.Dim)
		n   = snap.Domain.NodesPerAxis()
	)
	fmt.Fprintf(bw, "# %s\n", snap.Title)
	fmt.Fprintf(bw, "# run %s %s\n", snap.RunID, snap.Created.Format(time.RFC3339))
	fmt.Fprintf(bw, "# dimension %d nodes %v\n", dim, n[:dim])
	fmt.Fprint(bw, "#")
	for i := 0; i < dim; i++ {
		fmt.Fprintf(bw, " %c", "xyz"[i])
	}
	for f := range snap.Fields {
		fmt.Fprintf(bw, " field%d", f)
	}
	fmt.Fprintln(bw)
	for k := 0; k < snap.Domain.NumNodes(); k++ {
		p := snap.Domain.Node(k)
		for i, x := range p.Coords() {
			if i != 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprintf(bw, "%.8g", x)
		}
		for f := range snap.Fields {
			fmt.Fprintf(bw, " %.10g", snap.Fields[f][k])
		}
		if _, err = fmt.Fprintln(bw); err != nil {
			return
		}
	}
	return bw.Flush()
}
