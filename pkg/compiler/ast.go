package compiler

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// Literal is a compile-time constant. Type records the lexical form the
// literal had in the source (int, float, bool, or string).
//
//	int x = 10;
//	         ^^  Literal{Type: TypeInt, Value: "10"}
type Literal struct {
	Type  ValueType
	Value string
}

func (*Literal) exprNode() {}
func (l *Literal) String() string {
	if l.Type == TypeString {
		return fmt.Sprintf("%q", l.Value)
	}
	return l.Value
}

// Ident is a read of a named variable.
//
//	return x;
//	       ^  Ident{Name: "x"}
type Ident struct {
	Name string
}

func (*Ident) exprNode()        {}
func (i *Ident) String() string { return i.Name }

// BinaryExpr represents Left Op Right.
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, opSymbol(b.Op), b.Right)
}

// UnaryExpr represents a prefix !, -, or + applied to an operand.
type UnaryExpr struct {
	Op      TokenType
	Operand Expr
}

func (*UnaryExpr) exprNode() {}
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", opSymbol(u.Op), u.Operand)
}

// PostfixExpr represents x++ or x--. The operand is always an identifier.
type PostfixExpr struct {
	Op      TokenType
	Operand *Ident
}

func (*PostfixExpr) exprNode() {}
func (p *PostfixExpr) String() string {
	return fmt.Sprintf("(%s%s)", p.Operand, opSymbol(p.Op))
}

// PrefixExpr represents ++x or --x. The operand is always an identifier.
type PrefixExpr struct {
	Op      TokenType
	Operand *Ident
}

func (*PrefixExpr) exprNode() {}
func (p *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", opSymbol(p.Op), p.Operand)
}

// CallExpr represents name(args).
type CallExpr struct {
	Name string
	Args []Expr
}

func (*CallExpr) exprNode() {}
func (c *CallExpr) String() string {
	return fmt.Sprintf("FunctionCall(%s, args=%v)", c.Name, c.Args)
}

// IndexExpr represents array[index].
type IndexExpr struct {
	Array *Ident
	Index Expr
}

func (*IndexExpr) exprNode() {}
func (e *IndexExpr) String() string {
	return fmt.Sprintf("(%s[%s])", e.Array, e.Index)
}

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// VarDecl represents  type name = expr;
type VarDecl struct {
	Type ValueType
	Name string
	Init Expr // may be nil
}

func (*VarDecl) stmtNode() {}
func (d *VarDecl) String() string {
	if d.Init != nil {
		return fmt.Sprintf("VarDecl(%s %s = %s)", d.Type, d.Name, d.Init)
	}
	return fmt.Sprintf("VarDecl(%s %s)", d.Type, d.Name)
}

// Assign represents  Target = Value;  where Target is an Ident or IndexExpr.
type Assign struct {
	Target Expr
	Value  Expr
}

func (*Assign) stmtNode() {}
func (a *Assign) String() string {
	return fmt.Sprintf("Assign(%s = %s)", a.Target, a.Value)
}

// IfStmt represents if (cond) { ... } [else { ... }]
type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // may be nil
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	if i.Else != nil {
		return fmt.Sprintf("IfStmt(if %s then %s else %s)", i.Cond, i.Then, i.Else)
	}
	return fmt.Sprintf("IfStmt(if %s then %s)", i.Cond, i.Then)
}

// WhileStmt represents while (cond) { ... }
type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
}

func (*WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string {
	return fmt.Sprintf("WhileStmt(while %s do %s)", w.Cond, w.Body)
}

// ForStmt represents for (init; cond; post) body. Any of init, cond, and
// post may be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Stmt
	Body Stmt
}

func (*ForStmt) stmtNode() {}
func (f *ForStmt) String() string {
	return fmt.Sprintf("ForStmt(init=%s, cond=%s, post=%s, body=%s)", f.Init, f.Cond, f.Post, f.Body)
}

// ReturnStmt represents  return expr;  or a bare  return;
type ReturnStmt struct {
	Expr Expr // may be nil
}

func (*ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string {
	if r.Expr == nil {
		return "ReturnStmt()"
	}
	return fmt.Sprintf("ReturnStmt(%s)", r.Expr)
}

// ExprStmt represents an expression evaluated for its side effects.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.Expr)
}

// BlockStmt represents { statement; ... }
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	return fmt.Sprintf("BlockStmt(len=%d)", len(b.Stmts))
}

// BreakStmt represents break;
type BreakStmt struct{}

func (*BreakStmt) stmtNode()        {}
func (s *BreakStmt) String() string { return "BreakStmt" }

// ContinueStmt represents continue;
type ContinueStmt struct{}

func (*ContinueStmt) stmtNode()        {}
func (s *ContinueStmt) String() string { return "ContinueStmt" }

//  Declarations

// Param is one function parameter.
type Param struct {
	Type ValueType
	Name string
}

func (p Param) String() string { return fmt.Sprintf("%s %s", p.Type, p.Name) }

// FunctionDecl represents fn type name(params) { body }
type FunctionDecl struct {
	ReturnType ValueType
	Name       string
	Params     []Param
	Body       *BlockStmt
}

func (f *FunctionDecl) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("FunctionDecl(%s %s(%s), body=%s)",
		f.ReturnType, f.Name, strings.Join(params, ", "), f.Body)
}

// Program is the AST root: the ordered list of top-level functions.
type Program struct {
	Functions []*FunctionDecl
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(functions=%d)", len(p.Functions))
}
