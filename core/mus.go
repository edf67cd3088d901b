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


package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types persisted by the storage layer. The
// serialized surface is small enough that the serializers are composed by
// hand on mus-go primitives rather than generated.

// vectorMUS serializes an embedding vector as a varint length followed by
// fixed-width float64 values.
var vectorMUS = ord.NewSliceSer[float64](raw.Float64)

// IDMUS serializes an ID as a varint-encoded uint64.
var IDMUS = idSer{}

type idSer struct{}

func (idSer) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idSer) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idSer) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idSer) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// EntryMUS serializes an Entry as a length-prefixed word followed by its
// vector.
var EntryMUS = entrySer{}

type entrySer struct{}

func (entrySer) Marshal(e Entry, bs []byte) (n int) {
	n = ord.String.Marshal(e.Word, bs)
	n += vectorMUS.Marshal(e.Vector, bs[n:])
	return n
}

func (entrySer) Unmarshal(bs []byte) (e Entry, n int, err error) {
	e.Word, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return e, n, err
	}
	var n1 int
	e.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return e, n, err
}

func (entrySer) Size(e Entry) int {
	return ord.String.Size(e.Word) + vectorMUS.Size(e.Vector)
}

func (entrySer) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return n, err
	}
	var n1 int
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return n, err
}
