package emit

import (
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Value is a handle on an emitted Go expression.
type Value struct {
	expr string
}

// Expr wraps a raw Go expression.
func Expr(expr string) Value {
	return Value{expr: expr}
}

// String returns the expression.
func (v Value) String() string {
	return v.expr
}

// IsZero reports whether v holds no expression, as returned by void calls.
func (v Value) IsZero() bool {
	return v.expr == ""
}

// Op describes a function or method that emitted code calls.
type Op struct {
	Pkg      string   // import path, empty for functions of the generated package
	Name     string   // function or method name
	Method   bool     // called on the first argument
	TypeArgs []string // explicit type arguments
	Fallible bool     // last result is an error
	Void     bool     // no result besides the optional error
}

// Emitter writes the statements of one function body. Every generated body
// returns an error; failed fallible calls return it unchanged.
type Emitter interface {
	// Qualify imports pkgPath and returns the name to qualify it with, empty
	// for the package being generated.
	Qualify(pkgPath string) string
	// Param returns a handle on a parameter of the function.
	Param(name string) Value
	// Const returns a handle on a Go literal.
	Const(literal string) Value
	// Load stores the result of expr in a fresh variable.
	Load(expr Value) Value
	// Invoke calls op. Infallible calls with a result are inlined and must be
	// used exactly once; fallible calls are stored and checked.
	Invoke(op Op, args ...Value) Value
	// Assert checks at run time that v holds the Go type typeExpr and returns
	// it as such. A pointer typeExpr accepts nil or its element type.
	Assert(v Value, typeExpr string) Value
	// Convert returns the static conversion of v to typeExpr.
	Convert(v Value, typeExpr string) Value
	// CallAccessor calls a generated accessor function that assigns.
	CallAccessor(name string, args ...Value)
	// Alloc allocates a zero value of typeExpr and returns its address.
	Alloc(typeExpr string) Value
	// Make makes a map or, with a length, a slice of typeExpr.
	Make(typeExpr string, length ...Value) Value
	// Index returns the element expression v[i].
	Index(v, i Value) Value
	// Addr returns &v.
	Addr(v Value) Value
	// SetIndex assigns v[i] = x.
	SetIndex(v, i, x Value)
	// If emits the statements of then under cond.
	If(cond Value, then func())
	// ForEach ranges over the elements of seq.
	ForEach(seq Value, body func(elem Value))
	// ForIndex ranges over the integers below n.
	ForIndex(n Value, body func(i Value))
	// Return returns a nil error.
	Return()
	// Body returns the statements emitted so far.
	Body() string
}

// ImportSpec is one import of a generated file.
type ImportSpec struct {
	Alias string // set only when it differs from the last path element
	Path  string
}

// Imports assigns names to the packages a generated file refers to. It is
// shared by the emitters of one file and safe for concurrent use.
type Imports struct {
	mu     sync.Mutex
	self   string
	byPath map[string]string
	byName map[string]string
}

// NewImports returns imports for a file of package self.
func NewImports(self string) *Imports {
	return &Imports{self: self, byPath: make(map[string]string), byName: make(map[string]string)}
}

// Qualify returns the name of pkgPath in the file, importing it on first use.
func (im *Imports) Qualify(pkgPath string) string {
	if pkgPath == "" || pkgPath == im.self {
		return ""
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	if name, ok := im.byPath[pkgPath]; ok {
		return name
	}

	base := strings.NewReplacer("-", "", ".", "").Replace(path.Base(pkgPath))
	name := base

	for i := 2; ; i++ {
		if _, taken := im.byName[name]; !taken {
			break
		}

		name = base + strconv.Itoa(i)
	}

	im.byPath[pkgPath] = name
	im.byName[name] = pkgPath

	return name
}

// Specs returns the imports sorted by path.
func (im *Imports) Specs() []ImportSpec {
	im.mu.Lock()
	defer im.mu.Unlock()

	out := make([]ImportSpec, 0, len(im.byPath))
	for p, name := range im.byPath {
		spec := ImportSpec{Path: p}
		if name != path.Base(p) {
			spec.Alias = name
		}

		out = append(out, spec)
	}

	slices.SortFunc(out, func(a, b ImportSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return out
}

// GoEmitter emits Go statements into a buffer.
type GoEmitter struct {
	imports *Imports
	buf     strings.Builder
	depth   int
	temps   int
}

var _ Emitter = (*GoEmitter)(nil)

// NewGoEmitter returns an emitter for one function body of a file using imports.
func NewGoEmitter(imports *Imports) *GoEmitter {
	return &GoEmitter{imports: imports, depth: 1}
}

// Body implements Emitter.
func (e *GoEmitter) Body() string {
	return e.buf.String()
}

// Qualify implements Emitter.
func (e *GoEmitter) Qualify(pkgPath string) string {
	return e.imports.Qualify(pkgPath)
}

// Param implements Emitter.
func (e *GoEmitter) Param(name string) Value {
	return Value{expr: name}
}

// Const implements Emitter.
func (e *GoEmitter) Const(literal string) Value {
	return Value{expr: literal}
}

// Load implements Emitter.
func (e *GoEmitter) Load(expr Value) Value {
	v := e.temp()
	e.line("%s := %s", v, expr)

	return Value{expr: v}
}

// Invoke implements Emitter.
func (e *GoEmitter) Invoke(op Op, args ...Value) Value {
	return e.call(e.callExpr(op, args), op.Fallible, op.Void)
}

// Assert implements Emitter.
func (e *GoEmitter) Assert(v Value, typeExpr string) Value {
	if elem, ok := strings.CutPrefix(typeExpr, "*"); ok {
		return e.Invoke(Op{Pkg: runtimePkg, Name: "AssertPtr", TypeArgs: []string{elem}, Fallible: true}, v)
	}

	return e.Invoke(Op{Pkg: runtimePkg, Name: "Assert", TypeArgs: []string{typeExpr}, Fallible: true}, v)
}

// Convert implements Emitter.
func (e *GoEmitter) Convert(v Value, typeExpr string) Value {
	if strings.HasPrefix(typeExpr, "*") || strings.HasPrefix(typeExpr, "[]") {
		typeExpr = "(" + typeExpr + ")"
	}

	return Value{expr: typeExpr + "(" + v.expr + ")"}
}

// CallAccessor implements Emitter.
func (e *GoEmitter) CallAccessor(name string, args ...Value) {
	e.Invoke(Op{Name: name, Void: true}, args...)
}

// Alloc implements Emitter.
func (e *GoEmitter) Alloc(typeExpr string) Value {
	return e.Load(Value{expr: "new(" + typeExpr + ")"})
}

// Make implements Emitter.
func (e *GoEmitter) Make(typeExpr string, length ...Value) Value {
	args := []string{typeExpr}
	for _, l := range length {
		args = append(args, l.expr)
	}

	return e.Load(Value{expr: "make(" + strings.Join(args, ", ") + ")"})
}

// Index implements Emitter.
func (e *GoEmitter) Index(v, i Value) Value {
	return Value{expr: v.expr + "[" + i.expr + "]"}
}

// Addr implements Emitter.
func (e *GoEmitter) Addr(v Value) Value {
	return Value{expr: "&" + v.expr}
}

// SetIndex implements Emitter.
func (e *GoEmitter) SetIndex(v, i, x Value) {
	e.line("%s[%s] = %s", v, i, x)
}

// If implements Emitter.
func (e *GoEmitter) If(cond Value, then func()) {
	e.line("if %s {", cond)
	e.block(then)
	e.line("}")
}

// ForEach implements Emitter.
func (e *GoEmitter) ForEach(seq Value, body func(elem Value)) {
	v := e.temp()
	e.line("for _, %s := range %s {", v, seq)
	e.block(func() { body(Value{expr: v}) })
	e.line("}")
}

// ForIndex implements Emitter.
func (e *GoEmitter) ForIndex(n Value, body func(i Value)) {
	v := e.temp()
	e.line("for %s := range %s {", v, n)
	e.block(func() { body(Value{expr: v}) })
	e.line("}")
}

// Return implements Emitter.
func (e *GoEmitter) Return() {
	e.line("return nil")
}

// runtimePkg provides Assert to emitted code.
const runtimePkg = "confbind/bindrt"

func (e *GoEmitter) callExpr(op Op, args []Value) string {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = a.expr
	}

	name := op.Name
	if len(op.TypeArgs) > 0 {
		name += "[" + strings.Join(op.TypeArgs, ", ") + "]"
	}

	if op.Method {
		if len(strs) == 0 {
			panic(fmt.Sprintf("emit: method %s without receiver", op.Name))
		}

		return strs[0] + "." + name + "(" + strings.Join(strs[1:], ", ") + ")"
	}

	if q := e.Qualify(op.Pkg); q != "" {
		name = q + "." + name
	}

	return name + "(" + strings.Join(strs, ", ") + ")"
}

func (e *GoEmitter) call(expr string, fallible, void bool) Value {
	switch {
	case fallible && void:
		e.line("if err := %s; err != nil {", expr)
		e.returnErr()

		return Value{}
	case fallible:
		v := e.temp()
		e.line("%s, err := %s", v, expr)
		e.line("if err != nil {")
		e.returnErr()

		return Value{expr: v}
	case void:
		e.line("%s", expr)

		return Value{}
	default:
		return Value{expr: expr}
	}
}

func (e *GoEmitter) returnErr() {
	e.depth++
	e.line("return err")
	e.depth--
	e.line("}")
}

func (e *GoEmitter) block(fn func()) {
	e.depth++
	fn()
	e.depth--
}

func (e *GoEmitter) temp() string {
	v := "v" + strconv.Itoa(e.temps)
	e.temps++

	return v
}

func (e *GoEmitter) line(format string, args ...any) {
	e.buf.WriteString(strings.Repeat("\t", e.depth))
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}
