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
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/retrofit/embedding"
	"github.com/poiesic/retrofit/lexicon"
)

// Config holds configuration for a file-to-file retrofitting run.
type Config struct {
	// Iterations is the number of full passes over the loop set
	Iterations int

	// L2Normalize applies unit-length normalization to the input vectors
	// before retrofitting
	L2Normalize bool

	// Jacobi selects the synchronous parallel variant instead of the
	// reference Gauss-Seidel sweep
	Jacobi bool

	// PoolSize is the worker pool size for the Jacobi variant; <= 0 picks
	// a size from the CPU count
	PoolSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Iterations: 10,
	}
}

// Pipeline runs the full retrofitting flow: load vectors, parse the
// lexicon, iterate, write the refined table.
type Pipeline struct {
	config   *Config
	progress io.Writer
	logger   *slog.Logger
}

// NewPipeline creates a pipeline.
// progress: where to write progress output (typically os.Stderr); nil
// silences progress reporting.
func NewPipeline(config *Config, progress io.Writer) *Pipeline {
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Pipeline{
		config:   config,
		progress: progress,
		logger:   slog.Default(),
	}
}

// Run loads the embedding table from inputPath and the lexicon from
// lexiconPath, retrofits for the configured number of iterations, and
// writes the refined table to outputPath. Progress is reported once per
// completed iteration.
func (p *Pipeline) Run(inputPath, lexiconPath, outputPath string) error {
	table, err := embedding.LoadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load vectors: %w", err)
	}
	p.logger.Info("vectors loaded", "path", inputPath, "words", table.Len(), "dim", table.Dim())

	graph, err := lexicon.ParseFile(lexiconPath)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	p.logger.Info("lexicon loaded", "path", lexiconPath, "words", graph.Len())

	if p.config.L2Normalize {
		table.NormalizeL2()
	}

	refined, err := p.retrofit(table, graph)
	if err != nil {
		return err
	}

	if err := embedding.WriteFile(outputPath, refined); err != nil {
		return fmt.Errorf("failed to write vectors: %w", err)
	}
	p.logger.Info("vectors written", "path", outputPath, "words", refined.Len())

	return nil
}

// retrofit runs the configured engine variant over an in-memory table.
func (p *Pipeline) retrofit(table *embedding.Table, graph *lexicon.Graph) (*embedding.Table, error) {
	fmt.Fprintf(p.progress, "Retrofitting %d words for %d iterations\n",
		table.Len(), p.config.Iterations)

	tracker := NewProgressTracker(p.progress, p.config.Iterations)
	tracker.Start()

	observer := WithObserver(func(iteration int) {
		tracker.Update(iteration + 1)
	})

	var (
		refined *embedding.Table
		err     error
	)
	if p.config.Jacobi {
		refined, err = RunJacobi(table, graph, p.config.Iterations, p.config.PoolSize,
			observer, WithLogger(p.logger))
	} else {
		refined, err = Run(table, graph, p.config.Iterations,
			observer, WithLogger(p.logger))
	}
	if err != nil {
		return nil, err
	}

	tracker.Finish()
	elapsed := tracker.Elapsed()
	fmt.Fprintf(p.progress, "Retrofitting complete in %v\n", elapsed.Round(time.Millisecond))

	return refined, nil
}
