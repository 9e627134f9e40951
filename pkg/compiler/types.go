package compiler

import "fmt"

// ValueType is the small type algebra of the source language. TypeUnknown is
// an internal "not found" sentinel and never the type of a valid expression;
// TypeVoid exists only so that bare returns have something to check against.
type ValueType int

const (
	TypeUnknown ValueType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeString
	TypeVoid
)

var typeNames = [...]string{
	TypeUnknown: "unknown",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeBool:    "bool",
	TypeString:  "string",
	TypeVoid:    "void",
}

func (t ValueType) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// typeFromToken maps a type keyword token to its ValueType.
func typeFromToken(tt TokenType) ValueType {
	switch tt {
	case INT:
		return TypeInt
	case FLOAT:
		return TypeFloat
	case BOOL:
		return TypeBool
	case STRING:
		return TypeString
	}
	return TypeUnknown
}

func isNumeric(t ValueType) bool {
	return t == TypeInt || t == TypeFloat
}

// assignable reports whether a value of type from may be stored into a slot
// of type to. The only implicit widening is int to float.
func assignable(to, from ValueType) bool {
	return to == from || (to == TypeFloat && from == TypeInt)
}
