// Package context builds the tree of code contexts (Root, Module, Class,
// Method, Block) from a classified AST, and collects, per Method, the
// references that imply dependence on instance state.
package context

import (
	"github.com/hatchan/smellcop/internal/ast"
)

// Kind identifies which of the five context shapes a Context node is.
type Kind int

const (
	KindRoot Kind = iota
	KindModule
	KindClass
	KindMethod
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindModule:
		return "Module"
	case KindClass:
		return "Class"
	case KindMethod:
		return "Method"
	case KindBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Context is one node of the code-context hierarchy: Root -> Module/Class
// -> Method -> Block. Parent is nil only for the single Root context.
type Context struct {
	Kind Kind

	// Node is the defining AST node (nil for Root).
	Node ast.Node

	Parent   *Context
	Children []*Context

	name      string
	singleton bool

	// fullName caches FullName's result once computed; nil until first access.
	fullName *string

	// refs holds the reference-collector result for Method contexts.
	refs *references
}

// NewRoot creates the single Root context for an analysis.
func NewRoot() *Context {
	return &Context{Kind: KindRoot}
}

// FullName renders the context's fully qualified name by combining its
// own name with its parent's FullName, joining Module/Class segments with
// "::" and a Method segment with "#". The result is computed once and
// cached, since the dispatcher calls this once per detector per context.
func (c *Context) FullName() string {
	if c.fullName != nil {
		return *c.fullName
	}

	var full string
	switch n := c.Node.(type) {
	case *ast.ModuleNode:
		full = n.FullName(c.Parent.FullName())
	case *ast.ClassNode:
		full = n.FullName(c.Parent.FullName())
	case *ast.DefNode:
		full = n.FullName(c.Parent.FullName())
	case *ast.DefsNode:
		full = n.FullName(c.Parent.FullName())
	default:
		// Root and Block contexts contribute no name segment of their own.
		if c.Parent == nil {
			full = ""
		} else {
			full = c.Parent.FullName()
		}
	}
	c.fullName = &full
	return full
}

// SimpleName is the last segment of FullName after "::" or "#".
func (c *Context) SimpleName() string {
	full := c.FullName()
	cut := -1
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ':' || full[i] == '#' {
			cut = i + 1
			break
		}
	}
	if cut == -1 {
		return full
	}
	return full[cut:]
}

// Singleton reports whether a Method context is a singleton method: a Defs,
// or a Def nested directly in a `class << self` opener.
func (c *Context) Singleton() bool { return c.singleton }

// addChild appends a child context and wires its parent pointer.
func (c *Context) addChild(child *Context) {
	child.Parent = c
	c.Children = append(c.Children, child)
}

// Walk visits this context and every descendant in pre-order, the traversal
// order the dispatcher relies on.
func (c *Context) Walk(visit func(*Context)) {
	visit(c)
	for _, child := range c.Children {
		child.Walk(visit)
	}
}
