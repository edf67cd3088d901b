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
	"regexp"
	"strings"
)

// Sentinel word keys produced by Normalize.
const (
	// NumKey replaces any token containing a digit.
	NumKey = "<num>"

	// PuncKey replaces any token with no word characters.
	PuncKey = "<punc>"
)

// Unicode classes, not ASCII \d and \W: tokens in any script keep their
// word characters, and digits from any numbering system count as digits.
var (
	hasDigit = regexp.MustCompile(`\p{Nd}`)
	nonWord  = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// Normalize maps a raw token to its canonical word key.
//
// Tokens containing a digit become NumKey, tokens that are empty after
// stripping non-word characters become PuncKey, and all remaining tokens
// are lower-cased. Normalize is pure and safe for concurrent use.
func Normalize(token string) string {
	lower := strings.ToLower(token)
	if hasDigit.MatchString(lower) {
		return NumKey
	}
	if nonWord.ReplaceAllString(token, "") == "" {
		return PuncKey
	}
	return lower
}
