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

// Package mijit synthesizes a native routine that prints a greeting,
// places it in executable memory and calls it.
package mijit

import (
	"fmt"
	"os"

	"github.com/alvarorichard/mijit/internal/hw"
	"github.com/alvarorichard/mijit/internal/loader"
	"github.com/alvarorichard/mijit/internal/template"
)

// Arch selects the instruction template. It must match the platform the
// process actually runs on; executing a foreign template is undefined
// behavior, not a detected error.
type Arch = hw.Arch

const (
	LinuxAMD64  = hw.LinuxAMD64
	DarwinAMD64 = hw.DarwinAMD64
	LinuxARM64  = hw.LinuxARM64
	DarwinARM64 = hw.DarwinARM64
)

// HostArch returns the profile of the build platform, false if there is
// no template for it.
func HostArch() (Arch, bool) {
	return hw.Host()
}

// Result reports one completed invocation.
type Result struct {
	// Code is the instruction buffer that was executed, instructions
	// first, message payload after (when the profile embeds it).
	Code []byte

	// Status is the value returned by the generated routine on the
	// restricted profile, zero otherwise.
	Status int

	// Deferred is true when the generated code did not print the message
	// itself and the caller should print it instead.
	Deferred bool
}

// Assemble produces the instruction buffer printing msg on cpu. The
// returned bytes are final and ready to be copied into executable memory.
func Assemble(cpu Arch, msg string) ([]byte, error) {
	return template.Build(cpu, []byte(msg))
}

// Execute runs an assembled buffer through the full memory lifecycle:
// allocate writable, populate, seal executable, invoke, release. The
// region is released on every path, including a failed seal.
func Execute(cpu Arch, code []byte) (*Result, error) {
	region, err := loader.Alloc(loader.RoundPage(len(code), os.Getpagesize()))
	if err != nil {
		return nil, err
	}

	defer region.Release()
	region.Populate(code)

	if err := region.Seal(); err != nil {
		return nil, err
	}

	ret := &Result{Code: code}
	if cpu.Restricted() {
		ret.Status = region.InvokeStatus()
		ret.Deferred = true
	} else {
		region.Invoke()
	}
	return ret, nil
}

// Run assembles and executes the message on the host profile.
func Run(msg string) (*Result, error) {
	cpu, ok := hw.Host()
	if !ok {
		return nil, fmt.Errorf("mijit: no instruction template for this platform")
	}

	code, err := Assemble(cpu, msg)
	if err != nil {
		return nil, err
	}
	return Execute(cpu, code)
}
