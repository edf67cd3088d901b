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
	"log/slog"
	"sort"

	"github.com/poiesic/retrofit/core"
	"github.com/poiesic/retrofit/embedding"
	"github.com/poiesic/retrofit/lexicon"
)

// Option configures a retrofitting run.
type Option func(*options)

type options struct {
	observer func(iteration int)
	logger   *slog.Logger
}

// WithObserver registers a callback invoked once after each completed
// iteration with the 0-based iteration index. Display only; the engine
// ignores its effects.
func WithObserver(fn func(iteration int)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithLogger sets the logger for the run. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// node is a loop-set member: a table position plus the table positions of
// its in-vocabulary neighbors. Both are fixed for the whole run.
type node struct {
	idx  int
	ctxt []int
}

// buildLoopSet intersects the table vocabulary with the graph keys, in
// table order, and resolves each member's neighbors to table positions.
// Table words are matched against the graph's canonical keys as-is; the
// engine never re-normalizes them.
func buildLoopSet(table *embedding.Table, graph *lexicon.Graph) []node {
	if graph == nil {
		return nil
	}
	var loop []node
	for i := 0; i < table.Len(); i++ {
		word := table.WordAt(i)
		if !graph.Has(word) {
			continue
		}
		var ctxt []int
		for u := range graph.Neighbors(word) {
			if j, ok := table.Index(u); ok {
				ctxt = append(ctxt, j)
			}
		}
		// Neighbor summation in table order keeps runs reproducible
		sort.Ints(ctxt)
		loop = append(loop, node{idx: i, ctxt: ctxt})
	}
	return loop
}

func validate(table *embedding.Table, iterations int) error {
	if table == nil || table.Len() == 0 {
		return core.ErrEmptyTable
	}
	if iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeIterations, iterations)
	}
	return nil
}

// Run retrofits the table to the relation graph and returns the refined
// table. The caller's table is never modified; its original vectors anchor
// every iteration.
//
// Each iteration sweeps the loop set (words present in both the raw table
// vocabulary and the graph) in table order. A word with no in-vocabulary
// neighbors is skipped. Otherwise, with n neighbors, its working vector
// becomes
//
//	(n*original + sum of neighbors' working vectors) / (2n)
//
// where neighbor reads within a pass see values already updated earlier in
// the same pass. With zero iterations the result equals the input.
func Run(table *embedding.Table, graph *lexicon.Graph, iterations int, opts ...Option) (*embedding.Table, error) {
	if err := validate(table, iterations); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	working := table.Clone()
	loop := buildLoopSet(table, graph)
	o.logger.Debug("loop set computed",
		"table_words", table.Len(),
		"graph_words", graphLen(graph),
		"loop_words", len(loop))

	dim := table.Dim()
	newVec := make([]float64, dim)

	for it := 0; it < iterations; it++ {
		for _, nd := range loop {
			if len(nd.ctxt) == 0 {
				continue
			}
			n := float64(len(nd.ctxt))
			orig := table.Row(nd.idx)
			for d, v := range orig {
				newVec[d] = n * v
			}
			for _, j := range nd.ctxt {
				// Gauss-Seidel: the working row, not a snapshot
				for d, v := range working.Row(j) {
					newVec[d] += v
				}
			}
			den := 2 * n
			for d := range newVec {
				newVec[d] /= den
			}
			copy(working.Row(nd.idx), newVec)
		}
		if o.observer != nil {
			o.observer(it)
		}
	}

	return working, nil
}

func graphLen(graph *lexicon.Graph) int {
	if graph == nil {
		return 0
	}
	return graph.Len()
}
