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
	"runtime"
)

// Arch identifies one of the supported OS / CPU combinations. Each value
// selects exactly one instruction template; it is fixed at startup and
// never changes during a run.
type Arch uint8

const (
	LinuxAMD64 Arch = iota
	DarwinAMD64
	LinuxARM64
	DarwinARM64
)

func (self Arch) String() string {
	switch self {
	case LinuxAMD64:
		return "Linux x86-64"
	case DarwinAMD64:
		return "macOS x86-64"
	case LinuxARM64:
		return "Linux ARM64"
	case DarwinARM64:
		return "Apple Silicon ARM64"
	default:
		return "unknown"
	}
}

// Restricted reports whether the profile cannot issue the write syscall
// from freshly mapped memory. The generated code then only returns a
// status value, and the caller prints the message itself.
func (self Arch) Restricted() bool {
	return self == DarwinARM64
}

// Host selects the profile for the build platform. The second return
// value is false when the platform has no template.
func Host() (Arch, bool) {
	switch {
	case runtime.GOOS == "linux" && runtime.GOARCH == "amd64":
		return LinuxAMD64, true
	case runtime.GOOS == "darwin" && runtime.GOARCH == "amd64":
		return DarwinAMD64, true
	case runtime.GOOS == "linux" && runtime.GOARCH == "arm64":
		return LinuxARM64, true
	case runtime.GOOS == "darwin" && runtime.GOARCH == "arm64":
		return DarwinARM64, true
	default:
		return 0, false
	}
}
