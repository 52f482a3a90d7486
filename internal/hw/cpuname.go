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

package hw

import (
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// CPUName returns the host CPU brand string for the platform banner, or
// an empty string when the CPU does not report one.
func CPUName() string {
	return strings.TrimSpace(cpuid.CPU.BrandName)
}
