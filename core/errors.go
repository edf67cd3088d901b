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

import "errors"

// Domain validation errors
var (
	// ErrEmptyTable indicates an embedding table with no entries where one
	// is required.
	ErrEmptyTable = errors.New("embedding table is empty")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// table's established dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrDuplicateWord indicates an attempt to add a word that is already
	// present in the table.
	ErrDuplicateWord = errors.New("duplicate word")

	// ErrEmptyWord indicates an empty word key.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrEmptyVector indicates a zero-length vector.
	ErrEmptyVector = errors.New("vector cannot be empty")

	// ErrUnknownWord indicates a word with no vector in the table.
	ErrUnknownWord = errors.New("word not in table")
)
