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

package mijit

import (
	"github.com/alvarorichard/mijit/internal/loader"
	"github.com/alvarorichard/mijit/internal/template"
)

// The error taxonomy of a run. Anything else that can go wrong, a buffer
// executed on the wrong platform in particular, is a precondition
// violation with undefined behavior, not an error value.
type (
	// AllocationError reports a refused code-memory mapping.
	AllocationError = loader.AllocationError

	// ProtectionError reports a failed write-to-execute flip.
	ProtectionError = loader.ProtectionError

	// EncodingOverflow reports a message too long for the length field
	// of the selected instruction encoding.
	EncodingOverflow = template.EncodingOverflow
)
