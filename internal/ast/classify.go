package ast

// literalTags are raw tags folded into the single catch-all Lit role; the
// engine only ever walks past them.
var literalTags = map[string]bool{
	"str": true, "int": true, "float": true, "true": true, "false": true,
	"nil": true, "regexp": true, "array": true, "hash": true, "pair": true,
	"irange": true, "erange": true, "dstr": true, "xstr": true,
}

// Classify converts a raw syntax node, tagged by the (out-of-scope) parser
// front end, into the corresponding typed Node. It recurses into children
// eagerly, so the returned Node's subtree is fully classified. An
// unrecognised tag yields *UnknownNodeRole — fatal to this file's analysis,
// not to the run.
func Classify(raw *RawNode) (Node, error) {
	if raw == nil {
		return nil, nil
	}

	switch {
	case literalTags[raw.Tag]:
		return &LitNode{base: base{RoleLit, raw.Pos}, Kind: raw.Tag, Value: raw.Value}, nil
	}

	switch raw.Tag {
	case "arg":
		return classifyArgLeaf(raw, RoleArg)
	case "kwarg":
		return classifyArgLeaf(raw, RoleKwArg)
	case "blockarg":
		return classifyArgLeaf(raw, RoleBlockArg)
	case "restarg":
		return classifyArgLeaf(raw, RoleRestArg)
	case "kwrestarg":
		return classifyArgLeaf(raw, RoleKwRestArg)
	case "shadowarg":
		return classifyArgLeaf(raw, RoleShadowArg)
	case "optarg":
		return classifyOptArg(raw)
	case "args":
		return classifyArgs(raw)
	case "mlhs":
		return classifyMLHS(raw)
	case "send":
		return classifySend(raw)
	case "def":
		return classifyDef(raw)
	case "defs":
		return classifyDefs(raw)
	case "module":
		return classifyModule(raw)
	case "class":
		return classifyClass(raw)
	case "casgn":
		return classifyCAsgn(raw)
	case "lvasgn":
		return classifyAsgn(raw, RoleLVAsgn)
	case "ivasgn":
		return classifyAsgn(raw, RoleIVAsgn)
	case "cvasgn":
		return classifyAsgn(raw, RoleCVAsgn)
	case "gvasgn":
		return classifyAsgn(raw, RoleGVAsgn)
	case "if":
		return classifyIf(raw)
	case "case":
		return classifyCase(raw)
	case "when":
		return classifyWhen(raw)
	case "and":
		return classifyAndOr(raw, RoleAnd)
	case "or":
		return classifyAndOr(raw, RoleOr)
	case "block":
		return classifyBlock(raw)
	case "const":
		return &ConstNode{namedLeaf{base{RoleConst, raw.Pos}, raw.Value}}, nil
	case "sym":
		return &SymNode{namedLeaf{base{RoleSym, raw.Pos}, raw.Value}}, nil
	case "ivar":
		return &IVarNode{namedLeaf{base{RoleIVar, raw.Pos}, raw.Value}}, nil
	case "cvar":
		return &CVarNode{namedLeaf{base{RoleCVar, raw.Pos}, raw.Value}}, nil
	case "lvar":
		return &LVarNode{namedLeaf{base{RoleLVar, raw.Pos}, raw.Value}}, nil
	case "self":
		return &SelfNode{base{RoleSelf, raw.Pos}}, nil
	case "super", "zsuper":
		return classifySuper(raw)
	case "yield":
		return classifyYield(raw)
	case "begin", "kwbegin":
		return classifyBegin(raw)
	case "sclass":
		return classifySClass(raw)
	default:
		return nil, &UnknownNodeRole{Tag: raw.Tag, Pos: raw.Pos}
	}
}

func classifyChild(raw *RawNode) (Node, error) {
	if raw == nil {
		return nil, nil
	}
	return Classify(raw)
}

func classifyChildren(raws []*RawNode) ([]Node, error) {
	out := make([]Node, 0, len(raws))
	for _, r := range raws {
		if r == nil {
			continue
		}
		n, err := Classify(r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func classifyArgLeaf(raw *RawNode, role Role) (Node, error) {
	ab := argBase{base: base{role, raw.Pos}, name: raw.Value, splat: role == RoleRestArg || role == RoleKwRestArg}
	ab.block = role == RoleBlockArg
	switch role {
	case RoleArg:
		return &ArgNode{ab}, nil
	case RoleKwArg:
		return &KwArgNode{ab}, nil
	case RoleBlockArg:
		return &BlockArgNode{ab}, nil
	case RoleRestArg:
		return &RestArgNode{ab}, nil
	case RoleKwRestArg:
		return &KwRestArgNode{ab}, nil
	case RoleShadowArg:
		return &ShadowArgNode{ab}, nil
	}
	return nil, &UnknownNodeRole{Tag: raw.Tag, Pos: raw.Pos}
}

func classifyOptArg(raw *RawNode) (Node, error) {
	var def Node
	var err error
	if len(raw.Children) > 0 {
		def, err = classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
	}
	return &OptArgNode{
		argBase: argBase{base: base{RoleOptArg, raw.Pos}, name: raw.Value, optional: true},
		Default: def,
	}, nil
}

func classifyArgs(raw *RawNode) (Node, error) {
	items, err := classifyChildren(raw.Children)
	if err != nil {
		return nil, err
	}
	return &ArgsNode{base: base{RoleArgs, raw.Pos}, items: items}, nil
}

func classifyMLHS(raw *RawNode) (Node, error) {
	items, err := classifyChildren(raw.Children)
	if err != nil {
		return nil, err
	}
	return &MLHSNode{base: base{RoleMLHS, raw.Pos}, items: items}, nil
}

func classifySend(raw *RawNode) (Node, error) {
	if len(raw.Children) == 0 {
		return &SendNode{base: base{RoleSend, raw.Pos}, methodName: raw.Value}, nil
	}
	receiver, err := classifyChild(raw.Children[0])
	if err != nil {
		return nil, err
	}
	args, err := classifyChildren(raw.Children[1:])
	if err != nil {
		return nil, err
	}
	return &SendNode{base: base{RoleSend, raw.Pos}, receiver: receiver, methodName: raw.Value, args: args}, nil
}

func classifyDef(raw *RawNode) (Node, error) {
	var argsNode *ArgsNode
	var body Node
	if len(raw.Children) > 0 {
		n, err := classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
		argsNode, _ = n.(*ArgsNode)
	}
	if argsNode == nil {
		argsNode = &ArgsNode{base: base{RoleArgs, raw.Pos}}
	}
	if len(raw.Children) > 1 {
		b, err := classifyChild(raw.Children[1])
		if err != nil {
			return nil, err
		}
		body = b
	}
	return &DefNode{base: base{RoleDef, raw.Pos}, name: raw.Value, args: argsNode, body: body}, nil
}

func classifyDefs(raw *RawNode) (Node, error) {
	var receiver Node
	var argsNode *ArgsNode
	var body Node
	var err error
	if len(raw.Children) > 0 {
		receiver, err = classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
	}
	if len(raw.Children) > 1 {
		n, cerr := classifyChild(raw.Children[1])
		if cerr != nil {
			return nil, cerr
		}
		argsNode, _ = n.(*ArgsNode)
	}
	if argsNode == nil {
		argsNode = &ArgsNode{base: base{RoleArgs, raw.Pos}}
	}
	if len(raw.Children) > 2 {
		body, err = classifyChild(raw.Children[2])
		if err != nil {
			return nil, err
		}
	}
	return &DefsNode{base: base{RoleDefs, raw.Pos}, receiver: receiver, name: raw.Value, args: argsNode, body: body}, nil
}

func classifyModule(raw *RawNode) (Node, error) {
	var body Node
	if len(raw.Children) > 0 {
		b, err := classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
		body = b
	}
	return &ModuleNode{base: base{RoleModule, raw.Pos}, name: raw.Value, body: body}, nil
}

func classifyClass(raw *RawNode) (Node, error) {
	var superclass, body Node
	var err error
	if len(raw.Children) > 0 {
		superclass, err = classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
	}
	if len(raw.Children) > 1 {
		body, err = classifyChild(raw.Children[1])
		if err != nil {
			return nil, err
		}
	}
	return &ClassNode{base: base{RoleClass, raw.Pos}, name: raw.Value, superclass: superclass, body: body}, nil
}

func classifyCAsgn(raw *RawNode) (Node, error) {
	if len(raw.Children) == 0 {
		return &CAsgnNode{base: base{RoleCAsgn, raw.Pos}, name: raw.Value}, nil
	}
	value, err := classifyChild(raw.Children[len(raw.Children)-1])
	if err != nil {
		return nil, err
	}
	return &CAsgnNode{base: base{RoleCAsgn, raw.Pos}, name: raw.Value, value: value}, nil
}

// classifyAsgn handles the four variable-assignment write tags
// (lvasgn/ivasgn/cvasgn/gvasgn), each a bare name plus an optional value
// expression as the last child — the `parser` gem emits these as distinct
// tags from the corresponding read tags (lvar/ivar/cvar).
func classifyAsgn(raw *RawNode, role Role) (Node, error) {
	var value Node
	var err error
	if len(raw.Children) > 0 {
		value, err = classifyChild(raw.Children[len(raw.Children)-1])
		if err != nil {
			return nil, err
		}
	}
	ab := asgnBase{base: base{role, raw.Pos}, name: raw.Value, value: value}
	switch role {
	case RoleLVAsgn:
		return &LVAsgnNode{ab}, nil
	case RoleIVAsgn:
		return &IVAsgnNode{ab}, nil
	case RoleCVAsgn:
		return &CVAsgnNode{ab}, nil
	case RoleGVAsgn:
		return &GVAsgnNode{ab}, nil
	}
	return nil, &UnknownNodeRole{Tag: raw.Tag, Pos: raw.Pos}
}

func classifyIf(raw *RawNode) (Node, error) {
	var condition, then, els Node
	var err error
	if len(raw.Children) > 0 {
		condition, err = classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
	}
	if len(raw.Children) > 1 {
		then, err = classifyChild(raw.Children[1])
		if err != nil {
			return nil, err
		}
	}
	if len(raw.Children) > 2 {
		els, err = classifyChild(raw.Children[2])
		if err != nil {
			return nil, err
		}
	}
	return &IfNode{base: base{RoleIf, raw.Pos}, condition: condition, then: then, els: els}, nil
}

func classifyCase(raw *RawNode) (Node, error) {
	if len(raw.Children) == 0 {
		return &CaseNode{base: base{RoleCase, raw.Pos}}, nil
	}
	condition, err := classifyChild(raw.Children[0])
	if err != nil {
		return nil, err
	}
	rest := raw.Children[1:]
	var els Node
	if n := len(rest); n > 0 && (rest[n-1] == nil || rest[n-1].Tag != "when") {
		els, err = classifyChild(rest[n-1])
		if err != nil {
			return nil, err
		}
		rest = rest[:n-1]
	}
	whens := make([]*WhenNode, 0, len(rest))
	for _, r := range rest {
		n, err := classifyWhen(r)
		if err != nil {
			return nil, err
		}
		whens = append(whens, n.(*WhenNode))
	}
	return &CaseNode{base: base{RoleCase, raw.Pos}, condition: condition, whens: whens, els: els}, nil
}

func classifyWhen(raw *RawNode) (Node, error) {
	if len(raw.Children) == 0 {
		return &WhenNode{base: base{RoleWhen, raw.Pos}}, nil
	}
	conditions, err := classifyChildren(raw.Children[:len(raw.Children)-1])
	if err != nil {
		return nil, err
	}
	body, err := classifyChild(raw.Children[len(raw.Children)-1])
	if err != nil {
		return nil, err
	}
	return &WhenNode{base: base{RoleWhen, raw.Pos}, conditions: conditions, body: body}, nil
}

func classifyAndOr(raw *RawNode, role Role) (Node, error) {
	var left, right Node
	var err error
	if len(raw.Children) > 0 {
		left, err = classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
	}
	if len(raw.Children) > 1 {
		right, err = classifyChild(raw.Children[1])
		if err != nil {
			return nil, err
		}
	}
	if role == RoleAnd {
		return &AndNode{base: base{role, raw.Pos}, left: left, right: right}, nil
	}
	return &OrNode{base: base{role, raw.Pos}, left: left, right: right}, nil
}

func classifyBlock(raw *RawNode) (Node, error) {
	var call Node
	var argsNode *ArgsNode
	var body Node
	var err error
	if len(raw.Children) > 0 {
		call, err = classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
	}
	if len(raw.Children) > 1 {
		n, cerr := classifyChild(raw.Children[1])
		if cerr != nil {
			return nil, cerr
		}
		argsNode, _ = n.(*ArgsNode)
	}
	if argsNode == nil {
		argsNode = &ArgsNode{base: base{RoleArgs, raw.Pos}}
	}
	if len(raw.Children) > 2 {
		body, err = classifyChild(raw.Children[2])
		if err != nil {
			return nil, err
		}
	}
	return &BlockNode{base: base{RoleBlock, raw.Pos}, call: call, args: argsNode, block: body}, nil
}

func classifySuper(raw *RawNode) (Node, error) {
	args, err := classifyChildren(raw.Children)
	if err != nil {
		return nil, err
	}
	return &SuperNode{base: base{RoleSuper, raw.Pos}, args: args}, nil
}

func classifyYield(raw *RawNode) (Node, error) {
	args, err := classifyChildren(raw.Children)
	if err != nil {
		return nil, err
	}
	return &YieldNode{base: base{RoleYield, raw.Pos}, args: args}, nil
}

func classifySClass(raw *RawNode) (Node, error) {
	var target, body Node
	var err error
	if len(raw.Children) > 0 {
		target, err = classifyChild(raw.Children[0])
		if err != nil {
			return nil, err
		}
	}
	if len(raw.Children) > 1 {
		body, err = classifyChild(raw.Children[1])
		if err != nil {
			return nil, err
		}
	}
	statements := []Node{body}
	if begin, ok := body.(*BeginNode); ok {
		statements = begin.statements
	}
	for _, stmt := range statements {
		if def, ok := stmt.(*DefNode); ok {
			def.singleton = true
		}
	}
	return &SClassNode{base: base{RoleSClass, raw.Pos}, target: target, body: body}, nil
}

func classifyBegin(raw *RawNode) (Node, error) {
	statements, err := classifyChildren(raw.Children)
	if err != nil {
		return nil, err
	}
	return &BeginNode{base: base{RoleBegin, raw.Pos}, statements: statements}, nil
}
