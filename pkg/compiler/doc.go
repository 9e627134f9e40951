// Package compiler provides the front end for a small statically typed,
// C-like language: lexer, parser, scope analysis, type checking, and
// lowering to three-address code.
//
// Pipeline: source → Lex → Parse → AnalyzeScopes → CheckTypes → GenerateTAC → TAC text
//
// Each pass is an independent traversal; the AST built by the parser is
// never rewritten. Errors are categorised (see ErrorKind) and the first one
// stops the pipeline.
package compiler
