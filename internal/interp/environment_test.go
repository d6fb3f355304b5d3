package interp

import "testing"

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", 1.0)

	v, err := env.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1.0 {
		t.Fatalf("got %v", v)
	}
}

func TestEnvironment_GetUndefined(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Get("missing"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEnvironment_GetWalksParentChain(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", "from parent")
	child := NewChildEnvironment(parent)

	v, err := child.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "from parent" {
		t.Fatalf("got %v", v)
	}
}

func TestEnvironment_AssignRequiresExistingBinding(t *testing.T) {
	env := NewEnvironment()
	if err := env.Assign("x", 1.0); err == nil {
		t.Fatal("expected an error assigning an undeclared variable")
	}
}

func TestEnvironment_AssignMutatesNearestFrame(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", 1.0)
	child := NewChildEnvironment(parent)

	if err := child.Assign("x", 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := parent.Get("x")
	if v != 2.0 {
		t.Fatalf("expected parent's binding to be mutated, got %v", v)
	}
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	grandparent := NewEnvironment()
	grandparent.Define("x", "original")
	parent := NewChildEnvironment(grandparent)
	child := NewChildEnvironment(parent)

	if v := child.GetAt(2, "x"); v != "original" {
		t.Fatalf("got %v", v)
	}
	child.AssignAt(2, "x", "updated")
	if v, _ := grandparent.Get("x"); v != "updated" {
		t.Fatalf("got %v", v)
	}
}

func TestEnvironment_ChildShadowsParent(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", "outer")
	child := NewChildEnvironment(parent)
	child.Define("x", "inner")

	v, _ := child.Get("x")
	if v != "inner" {
		t.Fatalf("got %v", v)
	}
	parentV, _ := parent.Get("x")
	if parentV != "outer" {
		t.Fatalf("shadowing should not mutate the parent, got %v", parentV)
	}
}
