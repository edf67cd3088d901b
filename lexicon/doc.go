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


// Package lexicon builds the semantic relation graph from a lexicon file.
//
// Each input line is a whitespace-separated list: the first token is the
// source word and the remaining tokens are its related words. Every token
// is normalized with core.Normalize before it enters the graph. If a
// source word appears on more than one line the later line replaces the
// earlier neighbor set; sets are never merged. Malformed lines never fail
// the parse: blank lines are skipped and a single-token line yields an
// empty neighbor set.
//
// Known quirk, kept on purpose: lexicon tokens are normalized here but
// embedding vocabularies are not re-normalized anywhere. The retrofitting
// engine intersects the raw table vocabulary against these canonical keys,
// so a table word that normalization would change simply never joins the
// graph. Upstream tools behave the same way.
package lexicon
