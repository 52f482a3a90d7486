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
	"os"
	"testing"
	"unsafe"

	"github.com/chenzhuoyu/iasm/x86_64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, src string) *Region {
	var asm x86_64.Assembler
	require.NoError(t, asm.Assemble(src))

	code := asm.Code()
	region, err := Alloc(RoundPage(len(code), os.Getpagesize()))
	require.NoError(t, err)

	region.Populate(code)
	require.NoError(t, region.Seal())
	return region
}

func TestRegion_Run(t *testing.T) {
	region := load(t, "movq $1234, (%rax)\nret")
	defer region.Release()

	v0 := 0
	p := region.base
	fp := unsafe.Pointer(&p)
	(*(*func(*int))(unsafe.Pointer(&fp)))(&v0)
	assert.Equal(t, 1234, v0)
}

func TestRegion_InvokeStatus(t *testing.T) {
	region := load(t, "movq $42, %rax\nret")
	defer region.Release()
	assert.Equal(t, 42, region.InvokeStatus())
}
