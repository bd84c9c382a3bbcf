package context

import "github.com/hatchan/smellcop/internal/ast"

// eventKind distinguishes entering a node from leaving it in the traversal
// event stream consumed by the tree builder.
type eventKind int

const (
	eventEnter eventKind = iota
	eventLeave
)

type event struct {
	kind eventKind
	node ast.Node
}

// walk performs a depth-first pre-order traversal, producing a stream of
// enter/leave events. It is independent of role:
// every Node exposes Children() for exactly this purpose.
func walk(root ast.Node, emit func(event)) {
	if root == nil {
		return
	}
	emit(event{eventEnter, root})
	for _, child := range root.Children() {
		walk(child, emit)
	}
	emit(event{eventLeave, root})
}

// Build consumes the traversal event stream and returns the root of the
// context tree. Exactly one Root context exists per analysis.
func Build(program ast.Node) *Context {
	root := NewRoot()
	stack := []*Context{root}
	// inSClass tracks, per stack entry, whether that entry was pushed for a
	// singleton-class body, so that a Def found directly inside it is
	// classified as a singleton method.
	var inSClass []bool

	top := func() *Context { return stack[len(stack)-1] }
	push := func(c *Context, nestedInSClass bool) {
		top().addChild(c)
		stack = append(stack, c)
		inSClass = append(inSClass, nestedInSClass)
	}
	pop := func() {
		stack = stack[:len(stack)-1]
		inSClass = inSClass[:len(inSClass)-1]
	}
	currentlyInSClass := func() bool {
		return len(inSClass) > 0 && inSClass[len(inSClass)-1]
	}

	walk(program, func(e event) {
		switch n := e.node.(type) {
		case *ast.ModuleNode:
			if e.kind == eventEnter {
				push(&Context{Kind: KindModule, Node: n}, false)
			} else {
				pop()
			}
		case *ast.ClassNode:
			if e.kind == eventEnter {
				push(&Context{Kind: KindClass, Node: n}, false)
			} else {
				pop()
			}
		case *ast.SClassNode:
			if e.kind == eventEnter {
				// The singleton-class opener contributes no context of its
				// own; it only flags the Def nodes nested directly in it.
				inSClass = append(inSClass, true)
				stack = append(stack, top())
			} else {
				pop()
			}
		case *ast.DefNode:
			if e.kind == eventEnter {
				push(&Context{Kind: KindMethod, Node: n, singleton: currentlyInSClass()}, false)
			} else {
				pop()
			}
		case *ast.DefsNode:
			if e.kind == eventEnter {
				push(&Context{Kind: KindMethod, Node: n, singleton: true}, false)
			} else {
				pop()
			}
		case *ast.BlockNode:
			if e.kind == eventEnter {
				push(&Context{Kind: KindBlock, Node: n}, false)
			} else {
				pop()
			}
		}
	})

	attachReferenceCollector(root)
	return root
}
