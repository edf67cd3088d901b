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


package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/poiesic/retrofit/core"
	"github.com/poiesic/retrofit/embedding"
)

// Match is a word ranked by similarity to the probe.
type Match struct {
	Word  string
	Score float64
}

// Nearest returns up to limit words most similar to the given word by
// cosine similarity, ranked highest first. The probe word itself is
// excluded from the results. Returns core.ErrUnknownWord if the word has
// no vector.
func Nearest(table *embedding.Table, word string, limit int) ([]Match, error) {
	probe, ok := table.Vector(word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownWord, word)
	}

	matches := NearestVector(table, probe, limit+1)

	// Drop the probe word, which matches itself with similarity 1
	out := matches[:0]
	for _, m := range matches {
		if m.Word != word {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// NearestVector returns up to limit words most similar to the probe
// vector by cosine similarity, ranked highest first. Ties break in table
// order.
func NearestVector(table *embedding.Table, probe []float64, limit int) []Match {
	if table == nil || limit <= 0 {
		return nil
	}

	matches := make([]Match, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		matches = append(matches, Match{
			Word:  table.WordAt(i),
			Score: cosine(probe, table.Row(i)),
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// cosine computes cosine similarity. Zero vectors score 0.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
