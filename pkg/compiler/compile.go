package compiler

import (
	"fmt"
	"os"
)

// Compile runs the whole pipeline over src and returns the AST and the TAC
// instruction sequence. Passes run in order and the first error stops the
// pipeline; nothing downstream of a failed pass runs.
func Compile(src string) (*Program, []TACInstruction, error) {
	tokens, err := Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		return nil, nil, err
	}

	prog, err := Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return nil, nil, err
	}

	if err := AnalyzeScopes(prog); err != nil {
		fmt.Fprintln(os.Stderr, "scope error:", err)
		return nil, nil, err
	}

	if err := CheckTypes(prog); err != nil {
		fmt.Fprintln(os.Stderr, "type error:", err)
		return nil, nil, err
	}

	instrs, err := GenerateTAC(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tac error:", err)
		return nil, nil, err
	}

	return prog, instrs, nil
}
