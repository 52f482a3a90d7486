/*
 * Copyright 2025 MiJIT Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package debug exposes inspection helpers for generated code: mapping
// statistics, the hex display format and a disassembly view. Nothing in
// here is load-bearing for execution.
package debug

import (
	"github.com/alvarorichard/mijit/internal/loader"
)

// A Stats records statistics about the code generator.
type Stats struct {
	Memory MemStats
}

// A MemStats records statistics about executable memory mappings.
type MemStats struct {
	Alloc int
	Count int
}

// GetStats returns statistics of the code generator.
func GetStats() Stats {
	return Stats{
		Memory: MemStats{
			Count: int(loader.FnCount),
			Alloc: int(loader.LoadSize),
		},
	}
}
