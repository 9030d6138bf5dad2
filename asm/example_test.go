package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/CredibleOpossum/bf-fast/asm"
)

// Shows the steps of compilation and the disassembly of the result.
func ExampleDisassembleAll() {
	code := `
	++++++++	set cell 0 to 8
	[>++++++++<-]	multiply by 8 into cell 1
	>+.		print 'A'
	[-]		clear it
`
	src := asm.Normalize(code)
	fmt.Println(src)
	src = asm.Rewrite(src)
	fmt.Println(src)

	prog, err := asm.Compile(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	asm.DisassembleAll(prog, os.Stdout)

	// Output:
	// ++++++++[>++++++++<-]>+.[-]
	// ++++++++[>++++++++<-]>+.c
	// 0	+ 8
	// 1	[ 6
	// 2	  > 1
	// 3	  + 8
	// 4	  < 1
	// 5	  - 1
	// 6	] 1
	// 7	> 1
	// 8	+ 1
	// 9	.
	// 10	clear
}

func ExampleAssemble() {
	_, err := asm.Assemble("loop.b", strings.NewReader("+[>+<-]]"))
	fmt.Println(err)

	// Output:
	// loop.b: offset 7: unmatched ']': malformed program
}
