package object

// Environment stores variable bindings for the tree-walking evaluator.
//
// It mirrors the compiler's symbol table in spirit — nested scopes resolve
// outward through an optional outer environment — but stores live values
// rather than symbol/slot metadata, since the evaluator interprets the AST
// directly instead of compiling it to bytecode.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates an empty, top-level environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates an environment nested inside outer, used
// when evaluating a function call or block that should see outer's
// bindings but not leak its own back into it.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get resolves name in this environment, falling back to the outer
// environment (recursively) if it isn't bound here.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment and returns val.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
