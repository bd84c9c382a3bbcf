package ast

// moduleConstructorNames is the small, closed set of built-in
// class-constructor names recognised by ModuleCreationCall.
var moduleConstructorNames = map[string]bool{
	"Class":  true,
	"Struct": true,
	"Module": true,
}

var visibilityModifierNames = map[string]bool{
	"private":   true,
	"protected": true,
	"public":    true,
}

// SendNode is a method call: `receiver.method_name(args)`, or a bare
// `method_name(args)` when Receiver is nil (implicit self receiver).
type SendNode struct {
	base
	receiver   Node
	methodName string
	args       []Node
}

func (s *SendNode) Receiver() Node    { return s.receiver }
func (s *SendNode) MethodName() string { return s.methodName }
func (s *SendNode) Args() []Node      { return s.args }

func (s *SendNode) ArgNames() []string {
	names := make([]string, 0, len(s.args))
	for _, a := range s.args {
		if named, ok := a.(interface{ Name() string }); ok {
			names = append(names, named.Name())
		}
	}
	return names
}

// ObjectCreationCall reports whether this send is an object-construction
// call: method_name is the `new` sentinel.
func (s *SendNode) ObjectCreationCall() bool {
	return s.methodName == "new"
}

// ModuleCreationCall reports whether this send constructs a new
// class/module object: object creation whose receiver is one of the
// built-in class-constructor names.
func (s *SendNode) ModuleCreationCall() bool {
	if !s.ObjectCreationCall() {
		return false
	}
	c, ok := s.receiver.(*ConstNode)
	return ok && moduleConstructorNames[c.SimpleName()]
}

// VisibilityModifier reports whether this send is a bare visibility
// declaration (`private`, `protected`, `public`) with an implicit receiver.
func (s *SendNode) VisibilityModifier() bool {
	return s.receiver == nil && visibilityModifierNames[s.methodName]
}

// AttributeWriter reports whether this send declares a writable attribute:
// `attr_writer`/`attr_accessor`, or `attr :name, true` (the literal `true`
// as the last argument flags it writable).
func (s *SendNode) AttributeWriter() bool {
	switch s.methodName {
	case "attr_writer", "attr_accessor":
		return true
	case "attr":
		if len(s.args) == 0 {
			return false
		}
		last, ok := s.args[len(s.args)-1].(*LitNode)
		return ok && last.Kind == "true"
	default:
		return false
	}
}

func (s *SendNode) Children() []Node {
	out := make([]Node, 0, len(s.args)+1)
	if s.receiver != nil {
		out = append(out, s.receiver)
	}
	out = append(out, s.args...)
	return out
}

func (s *SendNode) String() string { return "Send(" + s.methodName + ")" }
