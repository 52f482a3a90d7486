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

	"golang.org/x/arch/x86/x86asm"
)

// Disassemble decodes the instruction stream up to and including the
// final RET. Payload bytes after the RET are not instructions and are
// left out.
func Disassemble(code []byte) (string, error) {
	pc := 0
	sb := strings.Builder{}

	for pc < len(code) {
		ins, err := x86asm.Decode(code[pc:], 64)
		if err != nil {
			return "", fmt.Errorf("invalid instruction at offset %d: %w", pc, err)
		}
		fmt.Fprintf(&sb, "%4d  %s\n", pc, x86asm.GNUSyntax(ins, uint64(pc), nil))
		pc += ins.Len
		if ins.Op == x86asm.RET {
			break
		}
	}
	return sb.String(), nil
}
