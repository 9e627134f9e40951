package compiler

import "fmt"

// ErrorKind categorises a compile error by the pass that raised it and the
// rule that was violated. The pipeline stops at the first error.
type ErrorKind int

const (
	// Lexer
	LexInvalidIdentifier ErrorKind = iota
	LexUnterminatedString
	LexUnterminatedComment
	LexUnknownChar

	// Parser
	ParseUnexpectedEOF
	ParseExpectedToken
	ParseExpectedType
	ParseExpectedIdentifier
	ParseExpectedExpr
	ParseInvalidAssignTarget

	// Scope analysis
	ScopeRedefinition
	ScopeUndeclaredVar
	ScopeUndefinedFunction

	// Type checking
	TypeMismatch
	TypeNonBoolCondition
	TypeBadOperand
	TypeCallArity
	TypeUndefinedFunction
	TypeRedefinition
	TypeReturnMismatch

	// TAC generation
	IRMalformedAST
)

var errorKindNames = [...]string{
	LexInvalidIdentifier:     "LexInvalidIdentifier",
	LexUnterminatedString:    "LexUnterminatedString",
	LexUnterminatedComment:   "LexUnterminatedComment",
	LexUnknownChar:           "LexUnknownChar",
	ParseUnexpectedEOF:       "ParseUnexpectedEOF",
	ParseExpectedToken:       "ParseExpectedToken",
	ParseExpectedType:        "ParseExpectedType",
	ParseExpectedIdentifier:  "ParseExpectedIdentifier",
	ParseExpectedExpr:        "ParseExpectedExpr",
	ParseInvalidAssignTarget: "ParseInvalidAssignTarget",
	ScopeRedefinition:        "ScopeRedefinition",
	ScopeUndeclaredVar:       "ScopeUndeclaredVar",
	ScopeUndefinedFunction:   "ScopeUndefinedFunction",
	TypeMismatch:             "TypeMismatch",
	TypeNonBoolCondition:     "TypeNonBoolCondition",
	TypeBadOperand:           "TypeBadOperand",
	TypeCallArity:            "TypeCallArity",
	TypeUndefinedFunction:    "TypeUndefinedFunction",
	TypeRedefinition:         "TypeRedefinition",
	TypeReturnMismatch:       "TypeReturnMismatch",
	IRMalformedAST:           "IRMalformedAST",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a categorised compile error. The message names the offending
// construct; Kind carries the taxonomy entry for programmatic checks.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func errf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
