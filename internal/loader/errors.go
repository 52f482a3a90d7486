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

package loader

import (
	"fmt"
)

// AllocationError occures when the kernel refuses the anonymous mapping
// that would hold the generated code.
type AllocationError struct {
	Size int
	Err  error
}

func (self AllocationError) Error() string {
	return fmt.Sprintf("AllocationError: cannot allocate %d bytes of code memory: %s", self.Size, self.Err)
}

func (self AllocationError) Unwrap() error {
	return self.Err
}

// ProtectionError occures when the mapping cannot be flipped from
// writable to executable.
type ProtectionError struct {
	Err error
}

func (self ProtectionError) Error() string {
	return fmt.Sprintf("ProtectionError: cannot make code memory executable: %s", self.Err)
}

func (self ProtectionError) Unwrap() error {
	return self.Err
}
