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


// Package core defines the domain types shared across the retrofit system:
// canonical word keys and their normalization rule, content-derived IDs,
// the serialized table entry, and the domain error sentinels.
//
// Word normalization follows the lexicon convention: tokens containing a
// digit collapse to the "<num>" sentinel, tokens with no word characters
// collapse to "<punc>", and everything else is lower-cased. Normalization
// is applied to lexicon tokens only; embedding vocabularies are taken as
// loaded and never re-normalized (see the lexicon package doc for why this
// asymmetry is kept).
package core
