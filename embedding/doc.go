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


// Package embedding provides the ordered word-vector table and its text
// serialization.
//
// A Table holds distinct word keys in insertion order, each paired with a
// fixed-length float64 vector. The order and the key set never change once
// a table has been handed to the retrofitting engine; values are replaced
// in place. The text format is the common whitespace-separated layout
// ("word v1 v2 ... vn" per line) with an optional "count dim" header line
// and transparent gzip support, matching what word2vec-style tools emit.
package embedding
