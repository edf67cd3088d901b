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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/retrofit/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalEntry serializes a table entry to bytes.
func MarshalEntry(entry core.Entry) []byte {
	buf := make([]byte, core.EntryMUS.Size(entry))
	core.EntryMUS.Marshal(entry, buf)
	return buf
}

// UnmarshalEntry deserializes a table entry from bytes.
func UnmarshalEntry(data []byte) (core.Entry, error) {
	entry, _, err := core.EntryMUS.Unmarshal(data)
	if err != nil {
		return core.Entry{}, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return entry, nil
}

// MarshalTableMeta serializes a stored table's word count and
// dimensionality.
func MarshalTableMeta(words, dim int) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(words))+varint.Uint64.Size(uint64(dim)))
	n := varint.Uint64.Marshal(uint64(words), buf)
	varint.Uint64.Marshal(uint64(dim), buf[n:])
	return buf
}

// UnmarshalTableMeta deserializes a stored table's word count and
// dimensionality.
func UnmarshalTableMeta(data []byte) (words, dim int, err error) {
	w, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	d, _, err := varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return int(w), int(d), nil
}
