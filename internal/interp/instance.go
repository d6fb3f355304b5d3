package interp

import "fmt"

// Instance is a runtime object built from a Class: its class pointer plus
// its own field table. Fields shadow methods of the same name.
type Instance struct {
	class  *Class
	fields map[string]any
}

// NewInstance constructs a field-less Instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]any)}
}

// Get implements property/method read: fields are consulted first, then
// the class's method table (bound to this instance); anything else is an
// "Undefined property" error.
func (i *Instance) Get(name string) (any, error) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	if method, ok := i.class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set writes a field unconditionally, creating it if it doesn't already
// exist.
func (i *Instance) Set(name string, value any) {
	i.fields[name] = value
}

func (i *Instance) String() string {
	return i.class.Name + " instance"
}
