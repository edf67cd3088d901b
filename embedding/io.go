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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/retrofit/core"
)

// maxLineBytes bounds a single input line. High-dimensional rows are long;
// 16MB accommodates thousands of dimensions with room to spare.
const maxLineBytes = 16 * 1024 * 1024

// Load reads a whitespace-separated word-vector table from r.
//
// Each line holds a word followed by its vector values. Lines are
// lower-cased before splitting, matching the convention that embedding
// vocabularies are lower-cased at load time. If the first line holds
// exactly two tokens it is treated as a "count dim" header and skipped.
// A repeated word replaces the earlier vector but keeps its original
// position. All vectors must share one dimensionality.
func Load(r io.Reader) (*Table, error) {
	t := NewTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		lineNo++
		if len(fields) == 0 {
			continue
		}
		if lineNo == 1 && len(fields) == 2 {
			// word2vec-style header line
			continue
		}

		word := fields[0]
		vec := make([]float64, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing value %d for %q: %w", lineNo, i+1, word, err)
			}
			vec[i] = v
		}

		if err := t.Set(word, vec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vectors: %w", err)
	}

	if t.Len() == 0 {
		return nil, core.ErrEmptyTable
	}
	return t, nil
}

// LoadFile reads a word-vector table from path. Files ending in ".gz" are
// decompressed transparently.
func LoadFile(path string) (*Table, error) {
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

	return Load(r)
}

// Write writes the table to w in text form, one "word v1 v2 ... vn" line
// per word in table order.
func Write(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for i, word := range t.words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		for _, v := range t.vectors[i] {
			if _, err := fmt.Fprintf(bw, " %f", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the table to path in text form, preserving table order.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
