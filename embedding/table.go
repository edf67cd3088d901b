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


package embedding

import (
	"fmt"
	"math"

	"github.com/poiesic/retrofit/core"
)

// l2Epsilon is added under the square root when L2-normalizing so that
// zero vectors divide cleanly instead of producing NaNs.
const l2Epsilon = 1e-6

// Table is an ordered word-vector table. Words are distinct, kept in
// insertion order, and aligned 1:1 with fixed-length float64 vectors.
//
// Table is not safe for concurrent mutation.
type Table struct {
	dim     int
	words   []string
	index   map[string]int
	vectors [][]float64
}

// NewTable creates an empty table. The dimensionality is fixed by the
// first vector added.
func NewTable() *Table {
	return &Table{
		index: make(map[string]int),
	}
}

// FromEntries builds a table from a sequence of entries, preserving their
// order. Duplicate words or ragged vectors are rejected.
func FromEntries(entries []core.Entry) (*Table, error) {
	t := NewTable()
	for _, e := range entries {
		if err := t.Add(e.Word, e.Vector); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Word, err)
		}
	}
	return t, nil
}

// Add appends a word and its vector to the table.
// Returns core.ErrDuplicateWord if the word is already present and
// core.ErrDimensionMismatch if the vector's length differs from the
// table's dimensionality. The vector is copied.
func (t *Table) Add(word string, vec []float64) error {
	if _, ok := t.index[word]; ok {
		return fmt.Errorf("%w: %q", core.ErrDuplicateWord, word)
	}
	return t.Set(word, vec)
}

// Set adds a word or replaces the vector of an existing word in place.
// A replaced word keeps its original position. The vector is copied.
func (t *Table) Set(word string, vec []float64) error {
	if word == "" {
		return core.ErrEmptyWord
	}
	if len(vec) == 0 {
		return core.ErrEmptyVector
	}
	if t.dim == 0 {
		t.dim = len(vec)
	} else if len(vec) != t.dim {
		return fmt.Errorf("%w: %q has %d values, table dimension is %d",
			core.ErrDimensionMismatch, word, len(vec), t.dim)
	}

	row := make([]float64, len(vec))
	copy(row, vec)

	if i, ok := t.index[word]; ok {
		t.vectors[i] = row
		return nil
	}
	t.index[word] = len(t.words)
	t.words = append(t.words, word)
	t.vectors = append(t.vectors, row)
	return nil
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	return len(t.words)
}

// Dim returns the table's vector dimensionality, or 0 for an empty table.
func (t *Table) Dim() int {
	return t.dim
}

// Has reports whether the word is present in the table.
func (t *Table) Has(word string) bool {
	_, ok := t.index[word]
	return ok
}

// Index returns the position of the word in table order.
func (t *Table) Index(word string) (int, bool) {
	i, ok := t.index[word]
	return i, ok
}

// Words returns the word keys in table order. The returned slice is a copy.
func (t *Table) Words() []string {
	out := make([]string, len(t.words))
	copy(out, t.words)
	return out
}

// WordAt returns the word at position i in table order.
func (t *Table) WordAt(i int) string {
	return t.words[i]
}

// Vector returns the vector stored for the word. The returned slice
// aliases the table's backing storage; callers that do not own the table
// must not modify it.
func (t *Table) Vector(word string) ([]float64, bool) {
	i, ok := t.index[word]
	if !ok {
		return nil, false
	}
	return t.vectors[i], true
}

// Row returns the vector at position i. The returned slice aliases the
// table's backing storage; callers that do not own the table must not
// modify it.
func (t *Table) Row(i int) []float64 {
	return t.vectors[i]
}

// SetRow replaces the vector at position i. The values are copied in.
func (t *Table) SetRow(i int, vec []float64) error {
	if len(vec) != t.dim {
		return fmt.Errorf("%w: row %d has %d values, table dimension is %d",
			core.ErrDimensionMismatch, i, len(vec), t.dim)
	}
	copy(t.vectors[i], vec)
	return nil
}

// Clone returns a deep copy of the table. The copy shares no storage with
// the original.
func (t *Table) Clone() *Table {
	c := &Table{
		dim:     t.dim,
		words:   make([]string, len(t.words)),
		index:   make(map[string]int, len(t.index)),
		vectors: make([][]float64, len(t.vectors)),
	}
	copy(c.words, t.words)
	for w, i := range t.index {
		c.index[w] = i
	}
	for i, row := range t.vectors {
		c.vectors[i] = make([]float64, len(row))
		copy(c.vectors[i], row)
	}
	return c
}

// Equal reports whether two tables hold the same words in the same order
// with numerically identical vectors.
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.words) != len(o.words) || t.dim != o.dim {
		return false
	}
	for i, w := range t.words {
		if o.words[i] != w {
			return false
		}
		for d, v := range t.vectors[i] {
			if o.vectors[i][d] != v {
				return false
			}
		}
	}
	return true
}

// NormalizeL2 scales every vector to (approximately) unit length in place,
// dividing by sqrt(sum of squares + 1e-6). The epsilon keeps zero vectors
// finite. This is the optional pre-normalization step applied before
// retrofitting; the engine itself never normalizes.
func (t *Table) NormalizeL2() {
	for _, row := range t.vectors {
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		norm := math.Sqrt(sum + l2Epsilon)
		for d := range row {
			row[d] /= norm
		}
	}
}

// Entries returns the table contents as a sequence of entries in table
// order. Vectors are copied.
func (t *Table) Entries() []core.Entry {
	out := make([]core.Entry, len(t.words))
	for i, w := range t.words {
		vec := make([]float64, len(t.vectors[i]))
		copy(vec, t.vectors[i])
		out[i] = core.Entry{Word: w, Vector: vec}
	}
	return out
}
