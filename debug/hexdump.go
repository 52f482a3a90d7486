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
	"fmt"
	"strings"
)

// HexWidth is the number of bytes shown per line of Hexdump.
const HexWidth = 7

// Hexdump renders an instruction buffer as space-separated hex byte
// values wrapped every HexWidth bytes. The format is cosmetic only.
func Hexdump(code []byte) string {
	var sb strings.Builder
	for i, v := range code {
		fmt.Fprintf(&sb, "%x ", v)
		if (i+1)%HexWidth == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
