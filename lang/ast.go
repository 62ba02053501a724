package lang

// Position tracks a 1-based line and column inside the source file.
type Position struct {
	Line   int
	Column int
}

// Diagnostic captures a lexer or parser issue tied to a source position.
type Diagnostic struct {
	Message string
	Pos     Position
}

// Module is the root node for one parsed source file.
type Module struct {
	Body []Stmt
}

type Stmt interface {
	stmtNode()
	Pos() Position
}

type Expr interface {
	exprNode()
	Pos() Position
}

type Param struct {
	Name string
	Pos  Position
}

// FunctionDef is a named function with a statement body. Nested function
// definitions appear as ordinary statements inside an enclosing body.
type FunctionDef struct {
	Name   string
	Params []Param
	Body   []Stmt
	pos    Position
}

func (s *FunctionDef) stmtNode()     {}
func (s *FunctionDef) Pos() Position { return s.pos }

// AssignStmt covers both simple and chained assignment; a chain like
// a = b = c = expr carries every target in source order.
type AssignStmt struct {
	Targets []Expr
	Value   Expr
	pos     Position
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Pos() Position { return s.pos }

type AugAssignStmt struct {
	Target Expr
	Op     TokenType
	Value  Expr
	pos    Position
}

func (s *AugAssignStmt) stmtNode()     {}
func (s *AugAssignStmt) Pos() Position { return s.pos }

type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
	pos  Position
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Pos() Position { return s.pos }

type WhileStmt struct {
	Cond Expr
	Body []Stmt
	pos  Position
}

func (s *WhileStmt) stmtNode()     {}
func (s *WhileStmt) Pos() Position { return s.pos }

type ForStmt struct {
	Target Expr
	Iter   Expr
	Body   []Stmt
	pos    Position
}

func (s *ForStmt) stmtNode()     {}
func (s *ForStmt) Pos() Position { return s.pos }

type ReturnStmt struct {
	Value Expr
	pos   Position
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Pos() Position { return s.pos }

type RaiseStmt struct {
	Value Expr
	pos   Position
}

func (s *RaiseStmt) stmtNode()     {}
func (s *RaiseStmt) Pos() Position { return s.pos }

type DeleteStmt struct {
	Targets []Expr
	pos     Position
}

func (s *DeleteStmt) stmtNode()     {}
func (s *DeleteStmt) Pos() Position { return s.pos }

type ExprStmt struct {
	Expr Expr
	pos  Position
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Pos() Position { return s.pos }

type PassStmt struct {
	pos Position
}

func (s *PassStmt) stmtNode()     {}
func (s *PassStmt) Pos() Position { return s.pos }

type BreakStmt struct {
	pos Position
}

func (s *BreakStmt) stmtNode()     {}
func (s *BreakStmt) Pos() Position { return s.pos }

type ContinueStmt struct {
	pos Position
}

func (s *ContinueStmt) stmtNode()     {}
func (s *ContinueStmt) Pos() Position { return s.pos }

type IdentExpr struct {
	Name string
	pos  Position
}

func (e *IdentExpr) exprNode()     {}
func (e *IdentExpr) Pos() Position { return e.pos }

type NumberLit struct {
	Value string
	pos   Position
}

func (e *NumberLit) exprNode()     {}
func (e *NumberLit) Pos() Position { return e.pos }

type StringLit struct {
	Value string
	pos   Position
}

func (e *StringLit) exprNode()     {}
func (e *StringLit) Pos() Position { return e.pos }

type BoolLit struct {
	Value bool
	pos   Position
}

func (e *BoolLit) exprNode()     {}
func (e *BoolLit) Pos() Position { return e.pos }

type NoneLit struct {
	pos Position
}

func (e *NoneLit) exprNode()     {}
func (e *NoneLit) Pos() Position { return e.pos }

type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
	pos   Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.pos }

type UnaryExpr struct {
	Op      TokenType
	Operand Expr
	pos     Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.pos }

// BoolOpExpr is an and/or chain; Python folds consecutive uses of the same
// operator into one node with all operands.
type BoolOpExpr struct {
	Op     TokenType
	Values []Expr
	pos    Position
}

func (e *BoolOpExpr) exprNode()     {}
func (e *BoolOpExpr) Pos() Position { return e.pos }

// CompareExpr carries a left operand plus parallel operator and comparator
// lists, so chained comparisons like a < b <= c stay one node.
type CompareExpr struct {
	Left        Expr
	Ops         []TokenType
	Comparators []Expr
	pos         Position
}

func (e *CompareExpr) exprNode()     {}
func (e *CompareExpr) Pos() Position { return e.pos }

type CallExpr struct {
	Callee Expr
	Args   []Expr
	pos    Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.pos }

type AttributeExpr struct {
	Object Expr
	Name   string
	pos    Position
}

func (e *AttributeExpr) exprNode()     {}
func (e *AttributeExpr) Pos() Position { return e.pos }

type IndexExpr struct {
	Object Expr
	Index  Expr
	pos    Position
}

func (e *IndexExpr) exprNode()     {}
func (e *IndexExpr) Pos() Position { return e.pos }

// SliceExpr is parsed so that slicing fails loudly at translation instead
// of silently producing wrong output.
type SliceExpr struct {
	Object Expr
	Low    Expr
	High   Expr
	pos    Position
}

func (e *SliceExpr) exprNode()     {}
func (e *SliceExpr) Pos() Position { return e.pos }

// CondExpr is the conditional expression form: then if cond else orelse.
type CondExpr struct {
	Cond   Expr
	Then   Expr
	Orelse Expr
	pos    Position
}

func (e *CondExpr) exprNode()     {}
func (e *CondExpr) Pos() Position { return e.pos }

type LambdaExpr struct {
	Params []Param
	Body   Expr
	pos    Position
}

func (e *LambdaExpr) exprNode()     {}
func (e *LambdaExpr) Pos() Position { return e.pos }

type ListLit struct {
	Elems []Expr
	pos   Position
}

func (e *ListLit) exprNode()     {}
func (e *ListLit) Pos() Position { return e.pos }

type DictLit struct {
	Keys   []Expr
	Values []Expr
	pos    Position
}

func (e *DictLit) exprNode()     {}
func (e *DictLit) Pos() Position { return e.pos }

// TupleLit exists so that multi-value targets and bare tuples surface as a
// translation failure rather than being flattened away.
type TupleLit struct {
	Elems []Expr
	pos   Position
}

func (e *TupleLit) exprNode()     {}
func (e *TupleLit) Pos() Position { return e.pos }
