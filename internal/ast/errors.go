package ast

import "fmt"

// UnknownNodeRole is a structural error: the parser front end produced a
// tag outside the closed Role set. Fatal to the analysis of the offending
// file, never silently ignored.
type UnknownNodeRole struct {
	Tag string
	Pos Position
}

func (e *UnknownNodeRole) Error() string {
	return fmt.Sprintf("unknown node role %q at %s", e.Tag, e.Pos)
}
