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

// Package loader owns the executable memory a synthesized program runs
// from. A Region moves through ReadWrite (Alloc), ReadExecute (Seal) and
// released (Release), in that order, exactly once each. Invoke is the
// single unsafe call site of the whole module: it treats the mapping base
// as a zero-argument function, and a malformed instruction buffer is
// undefined process behavior rather than a catchable error.
package loader

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	_AP = unix.MAP_ANON | unix.MAP_PRIVATE
	_RX = unix.PROT_READ | unix.PROT_EXEC
	_RW = unix.PROT_READ | unix.PROT_WRITE
)

var (
	FnCount  uint32
	LoadSize uintptr
)

// Region is one page-aligned anonymous mapping. The zero value is not
// usable; regions come from Alloc only and are never aliased.
type Region struct {
	mem  []byte
	base uintptr
}

// RoundPage returns the smallest positive multiple of the page size p
// that covers n. Zero bytes of code still take a whole page.
func RoundPage(n int, p int) int {
	if r := (n + p - 1) &^ (p - 1); r > 0 {
		return r
	}
	return p
}

// Alloc maps size bytes of anonymous read-write memory. size must already
// be page-aligned via RoundPage.
func Alloc(size int) (*Region, error) {
	mm, err := unix.Mmap(-1, 0, size, _RW, _AP|mapExtra)
	if err != nil {
		return nil, AllocationError{Size: size, Err: err}
	}
	atomic.AddUint32(&FnCount, 1)
	atomic.AddUintptr(&LoadSize, uintptr(size))
	return &Region{mem: mm, base: uintptr(unsafe.Pointer(&mm[0]))}, nil
}

// Size returns the mapped length in bytes, zero after Release.
func (self *Region) Size() int {
	return len(self.mem)
}

// Populate copies code to the base of the mapping. The region must still
// be writable and code must not exceed the mapped size.
func (self *Region) Populate(code []byte) {
	copy(self.mem, code)
}

// Seal revokes write access and grants execute access. The caller still
// owns the region on failure and must release it.
func (self *Region) Seal() error {
	if err := unix.Mprotect(self.mem, _RX); err != nil {
		return ProtectionError{Err: err}
	}
	return nil
}

// Invoke calls the sealed region as a function with no arguments and no
// results. The generated code performs its side effect and returns.
func (self *Region) Invoke() {
	p := self.base
	fp := unsafe.Pointer(&p)
	(*(*func())(unsafe.Pointer(&fp)))()
}

// InvokeStatus calls the sealed region as a function returning an integer
// status, the convention of the restricted profile.
func (self *Region) InvokeStatus() int {
	p := self.base
	fp := unsafe.Pointer(&p)
	return (*(*func() int)(unsafe.Pointer(&fp)))()
}

// Release unmaps the region. Teardown is best-effort, unmap errors are
// dropped. Releasing an already released region is a no-op.
func (self *Region) Release() {
	if self.mem != nil {
		_ = unix.Munmap(self.mem)
		self.mem = nil
		self.base = 0
	}
}
