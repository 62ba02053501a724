package translator

// scope records which identifiers have already been declared in the
// JavaScript output of one function body. A var declaration hoists to
// function level in JavaScript, so there is exactly one record per function
// and no per-branch tracking: a name first assigned inside an if branch
// counts as declared for the remainder of the function. Nested function
// definitions get a fresh scope of their own.
//
// The record also spans for bodies, which render as forEach callbacks: a
// name first assigned inside one carries its var inside the callback, and
// a later assignment after the loop renders bare even though that var is
// not visible there. This is part of the hoisting emulation, reproduced
// rather than fixed.
type scope struct {
	declared map[string]bool
}

func newScope() *scope {
	return &scope{declared: map[string]bool{}}
}

func (s *scope) has(name string) bool {
	return s.declared[name]
}

func (s *scope) add(name string) {
	s.declared[name] = true
}
