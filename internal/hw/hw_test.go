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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestricted(t *testing.T) {
	assert.False(t, LinuxAMD64.Restricted())
	assert.False(t, DarwinAMD64.Restricted())
	assert.False(t, LinuxARM64.Restricted())
	assert.True(t, DarwinARM64.Restricted())
}

func TestHost(t *testing.T) {
	cpu, ok := Host()
	switch runtime.GOOS + "/" + runtime.GOARCH {
	case "linux/amd64":
		require.True(t, ok)
		assert.Equal(t, LinuxAMD64, cpu)
	case "darwin/amd64":
		require.True(t, ok)
		assert.Equal(t, DarwinAMD64, cpu)
	case "linux/arm64":
		require.True(t, ok)
		assert.Equal(t, LinuxARM64, cpu)
	case "darwin/arm64":
		require.True(t, ok)
		assert.Equal(t, DarwinARM64, cpu)
	default:
		assert.False(t, ok)
	}
}
