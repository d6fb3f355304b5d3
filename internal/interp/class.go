package interp

// Class is a runtime class object: its name, optional superclass, and its
// own (non-inherited) method table. Method lookup walks the superclass
// chain, first match wins.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass constructs a Class with the given own methods.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name in this class's own method table, then its
// superclass chain. It does not bind the method to an instance — callers
// needing a bound method use Function.Bind on the result.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init` (declared or inherited), or 0 if the class
// has no initializer.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of c, running its `init` method (if any)
// with args.
func (c *Class) Call(in *Interpreter, args []any) (any, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}
