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


// Package retrofit post-processes precomputed word embeddings against a
// semantic relation lexicon (Faruqui et al., 2014).
//
// Run performs the reference fixed-point iteration: each word present in
// both the embedding vocabulary and the relation graph is repeatedly
// recomputed as a weighted blend of its original vector and its neighbors'
// current vectors. Within a pass, neighbor reads see values already
// updated earlier in the same pass (a Gauss-Seidel sweep); this is part of
// the reference behavior, not an accident of implementation.
//
// RunJacobi is an explicitly different, synchronous variant that reads
// each iteration from a frozen snapshot and may therefore fan words out
// over a worker pool. Its results differ numerically from Run and the two
// are never substituted for each other.
//
// Pipeline ties the pieces together for file-to-file runs: load vectors,
// optionally L2-normalize them, parse the lexicon, iterate, write the
// refined table.
package retrofit
