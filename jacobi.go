// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package retrofit

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/retrofit/embedding"
	"github.com/poiesic/retrofit/lexicon"
)

// RunJacobi retrofits the table using a fully synchronous update: every
// iteration reads neighbor vectors from a frozen snapshot of the previous
// iteration, so words within a pass are independent and are fanned out
// over a worker pool of poolSize goroutines (poolSize <= 0 picks a size
// from the CPU count).
//
// This is NOT numerically equivalent to Run. The reference sweep reads
// neighbors updated earlier in the same pass; the Jacobi variant never
// does. Callers choose this variant explicitly when they want parallelism
// and can accept the different (still convergent) trajectory.
func RunJacobi(table *embedding.Table, graph *lexicon.Graph, iterations, poolSize int, opts ...Option) (*embedding.Table, error) {
	if err := validate(table, iterations); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	if poolSize <= 0 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	working := table.Clone()
	loop := buildLoopSet(table, graph)
	o.logger.Debug("loop set computed",
		"table_words", table.Len(),
		"loop_words", len(loop),
		"pool_size", poolSize)

	dim := table.Dim()

	for it := 0; it < iterations; it++ {
		snapshot := working.Clone()

		var wg sync.WaitGroup
		for _, nd := range loop {
			if len(nd.ctxt) == 0 {
				continue
			}
			nd := nd
			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()

				n := float64(len(nd.ctxt))
				orig := table.Row(nd.idx)
				newVec := make([]float64, dim)
				for d, v := range orig {
					newVec[d] = n * v
				}
				for _, j := range nd.ctxt {
					for d, v := range snapshot.Row(j) {
						newVec[d] += v
					}
				}
				den := 2 * n
				for d := range newVec {
					newVec[d] /= den
				}
				// Distinct rows per task, no coordination needed
				copy(working.Row(nd.idx), newVec)
			})
			if submitErr != nil {
				wg.Done()
				wg.Wait()
				return nil, fmt.Errorf("submitting update task: %w", submitErr)
			}
		}
		wg.Wait()

		if o.observer != nil {
			o.observer(it)
		}
	}

	return working, nil
}
