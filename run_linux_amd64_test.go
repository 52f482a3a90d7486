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
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// captureFD1 swaps the process stdout for a pipe while fn runs. The
// generated code writes to the raw descriptor, so os.Stdout wrapping is
// not enough.
func captureFD1(t *testing.T, fn func()) string {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	saved, err := unix.Dup(1)
	require.NoError(t, err)
	require.NoError(t, unix.Dup2(int(w.Fd()), 1))

	// restore stdout even when fn panics or fails an assertion, later
	// tests must not keep writing into the pipe
	func() {
		defer func() {
			require.NoError(t, unix.Dup2(saved, 1))
			require.NoError(t, unix.Close(saved))
		}()
		fn()
	}()

	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(out)
}

func TestRun_Ada(t *testing.T) {
	msg := Greeting("Ada")
	require.Len(t, msg, 12)

	var ret *Result
	var err error
	out := captureFD1(t, func() { ret, err = Run(msg) })

	require.NoError(t, err)
	assert.False(t, ret.Deferred)
	assert.Equal(t, msg, out)
	assert.Equal(t, []byte{0x0c, 0x00, 0x00, 0x00}, ret.Code[24:28])
}

func TestExecute_HelloWorld(t *testing.T) {
	msg := Greeting("World")
	code, err := Assemble(LinuxAMD64, msg)
	require.NoError(t, err)

	var ret *Result
	out := captureFD1(t, func() { ret, err = Execute(LinuxAMD64, code) })

	require.NoError(t, err)
	assert.False(t, ret.Deferred)
	assert.Equal(t, msg, out)
}
