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


// Package storage provides the storage abstraction for persisted embedding
// sets.
//
// It defines the TableRepository interface for keeping named embedding
// tables (input snapshots and retrofitted outputs) in a local database,
// decoupled from the backend implementation, plus the MUS serialization
// helpers shared by backends.
//
// Constructors of backend packages return this package's interfaces so
// consumers never couple to a specific store:
//
//	repo, err := badger.NewTableRepository(path)  // returns storage.TableRepository
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// A stored table round-trips exactly: word order, dimensionality, and
// vector values are all preserved.
package storage
