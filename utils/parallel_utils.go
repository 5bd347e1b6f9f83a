package utils

import (
	"runtime"
	"sync"
)

/*
PartitionMap splits MaxIndex items into ParallelDegree contiguous buckets with a
maximum imbalance of one item. Grid nodes and quadrature batches are both
sharded this way.
*/
type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

// NewPartitionMap clamps ParallelDegree to [1, NumCPU] when it is below one
func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = runtime.NumCPU()
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into pm.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

/*
Run calls f once per bucket, each in its own goroutine, and waits for all of
them. The first non-nil error in bucket order is returned. A single bucket runs
on the calling goroutine.
*/
func (pm *PartitionMap) Run(f func(bn, kMin, kMax int) error) error {
	if pm.ParallelDegree == 1 {
		kMin, kMax := pm.GetBucketRange(0)
		return f(0, kMin, kMax)
	}
	var (
		wg   = sync.WaitGroup{}
		errs = make([]error, pm.ParallelDegree)
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			errs[np] = f(np, kMin, kMax)
		}(np)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
