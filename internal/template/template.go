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

// Package template synthesizes the machine code that prints the greeting.
//
// Every profile is a fixed byte template plus a patch descriptor, so the
// builder is a table lookup and two small patch routines rather than
// per-architecture logic. The emitted routine is always a variant of
// "write(stdout, payload, len); ret", where payload sits at a fixed
// instruction-relative offset right after the code, except on the
// restricted profile which merely returns a status.
package template

import (
	"encoding/binary"

	"github.com/alvarorichard/mijit/internal/hw"
)

// MaxMOVZLen is the largest length the 16-bit pre-shifted MOVZ immediate
// field can hold without spilling into the hw bits of the instruction.
const MaxMOVZLen = 0x7FF

type patchKind uint8

const (
	patchNone  patchKind = iota // restricted profile, nothing to patch
	patchImm32                  // 4-byte little-endian immediate
	patchMOVZ                   // 2-byte field holding (len & 0xFFFF) << 5
)

type template struct {
	code    []byte
	kind    patchKind
	offset  int
	payload bool
}

// Templates index by hw.Arch. Offsets are byte positions of the length
// placeholder inside the code stream.
var templates = [...]template{
	hw.LinuxAMD64: {
		kind:    patchImm32,
		offset:  24,
		payload: true,
		code: []byte{
			0x48, 0xc7, 0xc0, 0x01, 0x00, 0x00, 0x00, // mov rax, 1          (SYS_write)
			0x48, 0xc7, 0xc7, 0x01, 0x00, 0x00, 0x00, // mov rdi, 1          (stdout)
			0x48, 0x8d, 0x35, 0x0a, 0x00, 0x00, 0x00, // lea rsi, [rip + 10] (payload)
			0x48, 0xc7, 0xc2, 0x00, 0x00, 0x00, 0x00, // mov rdx, 0          (patched)
			0x0f, 0x05, // syscall
			0xc3, // ret
		},
	},
	hw.DarwinAMD64: {
		kind:    patchImm32,
		offset:  24,
		payload: true,
		code: []byte{
			0x48, 0xc7, 0xc0, 0x04, 0x00, 0x00, 0x02, // mov rax, 0x02000004 (write)
			0x48, 0xc7, 0xc7, 0x01, 0x00, 0x00, 0x00, // mov rdi, 1          (stdout)
			0x48, 0x8d, 0x35, 0x0a, 0x00, 0x00, 0x00, // lea rsi, [rip + 10] (payload)
			0x48, 0xc7, 0xc2, 0x00, 0x00, 0x00, 0x00, // mov rdx, 0          (patched)
			0x0f, 0x05, // syscall
			0xc3, // ret
		},
	},
	hw.LinuxARM64: {
		kind:    patchMOVZ,
		offset:  8,
		payload: true,
		code: []byte{
			0x20, 0x00, 0x80, 0xd2, // mov x0, #1  (stdout)
			0x41, 0x00, 0x00, 0x10, // adr x1, #8  (payload)
			0x42, 0x00, 0x80, 0xd2, // mov x2, #2  (patched)
			0x08, 0x08, 0x80, 0xd2, // mov x8, #64 (SYS_write)
			0x01, 0x00, 0x00, 0xd4, // svc #0
			0xc0, 0x03, 0x5f, 0xd6, // ret
		},
	},
	hw.DarwinARM64: {
		kind: patchNone,
		code: []byte{
			0x00, 0x00, 0x80, 0xd2, // mov x0, #0
			0xc0, 0x03, 0x5f, 0xd6, // ret
		},
	},
}

// Program is an instruction buffer under construction. Once the length is
// patched and the payload appended, the bytes are final and are copied
// verbatim into executable memory.
type Program struct {
	cpu  hw.Arch
	code []byte
}

// New returns a fresh copy of the fixed template for cpu.
func New(cpu hw.Arch) *Program {
	tab := &templates[cpu]
	buf := make([]byte, len(tab.code))
	copy(buf, tab.code)
	return &Program{cpu: cpu, code: buf}
}

// PatchLength overwrites the length placeholder with n. The MOVZ field
// only has room for 11 bits of length once shifted, larger values would
// corrupt the neighbouring hw bits, so they are rejected instead.
func (self *Program) PatchLength(n int) error {
	switch tab := &templates[self.cpu]; tab.kind {
	case patchNone:
		return nil
	case patchImm32:
		binary.LittleEndian.PutUint32(self.code[tab.offset:], uint32(n))
		return nil
	case patchMOVZ:
		if n > MaxMOVZLen {
			return EncodingOverflow{Len: n, Max: MaxMOVZLen}
		}
		binary.LittleEndian.PutUint16(self.code[tab.offset:], uint16(n)<<5)
		return nil
	default:
		panic("template: invalid patch kind")
	}
}

// AppendPayload places the message bytes right after the instruction
// stream, where the address computed by the template points. No-op on the
// restricted profile whose code never touches the message.
func (self *Program) AppendPayload(msg []byte) {
	if templates[self.cpu].payload {
		self.code = append(self.code, msg...)
	}
}

// Bytes returns the backing buffer. The caller must not grow it.
func (self *Program) Bytes() []byte {
	return self.code
}

// Build runs the full synthesis for one message: template copy, length
// patch, payload append.
func Build(cpu hw.Arch, msg []byte) ([]byte, error) {
	p := New(cpu)
	if err := p.PatchLength(len(msg)); err != nil {
		return nil, err
	}
	p.AppendPayload(msg)
	return p.Bytes(), nil
}
