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

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alvarorichard/mijit"
	"github.com/alvarorichard/mijit/debug"
	"github.com/alvarorichard/mijit/internal/hw"
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println("What is your name?")
	name := readLine()

	cpu, ok := mijit.HostArch()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no instruction template for this platform")
		return 1
	}
	banner(cpu)

	msg := mijit.Greeting(name)
	code, err := mijit.Assemble(cpu, msg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	fmt.Println("\nMachine code generated:")
	fmt.Println(debug.Hexdump(code))
	if os.Getenv("MIJIT_DISASM") != "" {
		if dis, err := debug.Disassemble(code); err == nil {
			fmt.Print(dis)
		}
	}

	ret, err := mijit.Execute(cpu, code)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	// The restricted profile cannot print from generated code, so the
	// greeting is printed here instead.
	if ret.Deferred {
		fmt.Printf("JIT executed successfully (returned: %d)\n", ret.Status)
		fmt.Print(msg)
	}

	if os.Getenv("MIJIT_STATS") != "" {
		st := debug.GetStats()
		fmt.Printf("Code mappings: %d, %d bytes\n", st.Memory.Count, st.Memory.Alloc)
	}
	return 0
}

func readLine() string {
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func banner(cpu mijit.Arch) {
	if name := hw.CPUName(); name != "" {
		fmt.Printf("Platform detected: %s (%s)\n", cpu, name)
	} else {
		fmt.Printf("Platform detected: %s\n", cpu)
	}
	if cpu.Restricted() {
		fmt.Println("Note: Using simplified JIT approach due to system call security restrictions on Apple Silicon.")
	}
}
