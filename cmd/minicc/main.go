package main

import (
	"fmt"
	"os"

	"minicc/pkg/compiler"
)

const testSource = `fn int add(int a, int b) {
    return a + b;
}

fn int main() {
    int x = add(1, 2);
    return x;
}
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	prog, instrs, err := compiler.Compile(src)
	if err != nil {
		os.Exit(1)
	}

	fmt.Println("AST")
	for _, fn := range prog.Functions {
		fmt.Println(" ", fn)
	}
	fmt.Println()

	fmt.Println("Three-Address Code")
	fmt.Print(compiler.RenderTAC(instrs))
}
