package translator

import (
	"fmt"

	"pyjs/lang"
)

// UnsupportedConstructError reports a syntax-node kind or host-language
// feature that has no JavaScript translation rule. Translation stops at the
// point of detection; no partial output is produced.
type UnsupportedConstructError struct {
	Construct string
	Pos       lang.Position
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("line %d: no JavaScript translation for %s", e.Pos.Line, e.Construct)
}

// ReservedWordError reports an identifier that would collide with a
// JavaScript reserved word in the output.
type ReservedWordError struct {
	Name string
	Pos  lang.Position
}

func (e *ReservedWordError) Error() string {
	return fmt.Sprintf("line %d: identifier %q is a JavaScript reserved word", e.Pos.Line, e.Name)
}

// TranslationError reports a construct that matched a rendering rule but
// violated the rule's precondition.
type TranslationError struct {
	Detail string
	Pos    lang.Position
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Pos.Line, e.Detail)
}
