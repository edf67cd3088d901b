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


package lexicon

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/retrofit/core"
)

// Lexicon lines are short compared to embedding rows, but PPDB-scale
// paraphrase lists can still run long.
const maxLineBytes = 1024 * 1024

// Graph maps a canonical word key to its set of canonical neighbor keys.
// It is built once by Parse and immutable afterwards.
type Graph struct {
	relations map[string]map[string]struct{}
}

// NewGraph creates an empty relation graph.
func NewGraph() *Graph {
	return &Graph{
		relations: make(map[string]map[string]struct{}),
	}
}

// Len returns the number of source words in the graph.
func (g *Graph) Len() int {
	return len(g.relations)
}

// Has reports whether the word has an entry in the graph.
// An entry with an empty neighbor set still counts.
func (g *Graph) Has(word string) bool {
	_, ok := g.relations[word]
	return ok
}

// Neighbors returns the neighbor set for the word, or nil if the word has
// no entry. The returned map is the graph's own storage and must not be
// modified.
func (g *Graph) Neighbors(word string) map[string]struct{} {
	return g.relations[word]
}

// Words returns all source words in the graph, in no particular order.
func (g *Graph) Words() []string {
	out := make([]string, 0, len(g.relations))
	for w := range g.relations {
		out = append(out, w)
	}
	return out
}

// set assigns the neighbor set for a source word, replacing any earlier
// set. Replacement, not union: a lexicon line overrides prior lines for
// the same source word.
func (g *Graph) set(word string, neighbors map[string]struct{}) {
	g.relations[word] = neighbors
}

// Parse reads a relation lexicon from r and builds the graph.
//
// Each line is lower-cased and split on whitespace; the first token (after
// core.Normalize) keys the set of the remaining normalized tokens.
// Duplicate neighbors collapse. Blank lines are skipped and single-token
// lines produce an empty neighbor set; no line is ever an error.
func Parse(r io.Reader) (*Graph, error) {
	g := NewGraph()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		neighbors := make(map[string]struct{}, len(fields)-1)
		for _, token := range fields[1:] {
			neighbors[core.Normalize(token)] = struct{}{}
		}
		g.set(core.Normalize(fields[0]), neighbors)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}

	return g, nil
}

// ParseFile reads a relation lexicon from path. Files ending in ".gz" are
// decompressed transparently.
func ParseFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return Parse(r)
}
