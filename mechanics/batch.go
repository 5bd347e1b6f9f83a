package mechanics

import (
	"github.com/notargets/gopfield/types"
	"github.com/notargets/gopfield/utils"
)

/*
ComputeStressBatch evaluates the stress for every gradient in ux, sharding the
work over ParallelDegree goroutines. A ParallelDegree below one uses every CPU.
*/
func ComputeStressBatch[T types.Real[T]](C *Stiffness, ux []Tensor[T], ParallelDegree int) (R []Tensor[T], err error) {
	if ParallelDegree > len(ux) {
		ParallelDegree = max(len(ux), 1)
	}
	pm := utils.NewPartitionMap(ParallelDegree, len(ux))
	R = make([]Tensor[T], len(ux))
	err = pm.Run(func(_, kMin, kMax int) (err error) {
		for k := kMin; k < kMax; k++ {
			if R[k], err = ComputeStress(C, ux[k]); err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		R = nil
	}
	return
}
