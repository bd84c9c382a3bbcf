package context

import "github.com/hatchan/smellcop/internal/ast"

// references is the reference-collector result for one Method context:
// how many syntactic references imply dependence on instance state, and
// which instance variables were touched.
type references struct {
	numRefs   int
	ivarNames map[string]bool
}

// NumRefsToSelf returns the number of syntactic references that imply
// dependence on instance state: explicit self, ivar reads/writes, sends
// with an implicit self receiver, and super. Zero for non-Method contexts
// and, always, for singleton methods (Defs, and a Def inside class << self).
func (c *Context) NumRefsToSelf() int {
	if c.refs == nil {
		return 0
	}
	return c.refs.numRefs
}

// DependsOnInstance is true iff NumRefsToSelf is greater than zero.
func (c *Context) DependsOnInstance() bool {
	return c.NumRefsToSelf() > 0
}

// InstanceVariableNames returns the distinct @ivar names referenced by a
// Method context's body; not part of the core NumRefsToSelf/DependsOnInstance
// contract, but useful to detectors that care which ivars are narrow.
func (c *Context) InstanceVariableNames() []string {
	if c.refs == nil {
		return nil
	}
	names := make([]string, 0, len(c.refs.ivarNames))
	for name := range c.refs.ivarNames {
		names = append(names, name)
	}
	return names
}

// attachReferenceCollector walks the freshly built context tree and, for
// every Method context, computes its reference-collector result. Singleton
// methods (Defs, and a Def inside class << self) are fixed at zero regardless
// of body content: self inside them is the class object, not an instance.
func attachReferenceCollector(root *Context) {
	root.Walk(func(c *Context) {
		if c.Kind != KindMethod {
			return
		}
		if c.singleton {
			c.refs = &references{ivarNames: map[string]bool{}}
			return
		}
		body := methodBody(c.Node)
		refs := &references{ivarNames: map[string]bool{}}
		collectReferences(body, refs)
		c.refs = refs
	})
}

func methodBody(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.DefNode:
		return v.Body()
	case *ast.DefsNode:
		return v.Body()
	default:
		return nil
	}
}

// collectReferences walks a method body, stopping at nested Def/Defs
// boundaries (those are separate Method contexts with their own result).
func collectReferences(n ast.Node, refs *references) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case *ast.DefNode, *ast.DefsNode:
		return
	case *ast.SelfNode:
		refs.numRefs++
	case *ast.IVarNode:
		refs.numRefs++
		refs.ivarNames[v.Name()] = true
	case *ast.IVAsgnNode:
		refs.numRefs++
		refs.ivarNames[v.Name()] = true
	case *ast.SuperNode:
		refs.numRefs++
	case *ast.SendNode:
		if v.Receiver() == nil && !v.VisibilityModifier() && !v.AttributeWriter() {
			refs.numRefs++
		}
	}
	for _, child := range n.Children() {
		collectReferences(child, refs)
	}
}
