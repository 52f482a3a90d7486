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

package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexdump(t *testing.T) {
	assert.Equal(t, "", Hexdump(nil))
	assert.Equal(t, "48 c7 ab ", Hexdump([]byte{0x48, 0xc7, 0xab}))

	// a line break after every 7th byte, single digits unpadded
	assert.Equal(
		t,
		"48 c7 c0 1 0 0 0 \n48 ",
		Hexdump([]byte{0x48, 0xc7, 0xc0, 0x01, 0x00, 0x00, 0x00, 0x48}),
	)
}
