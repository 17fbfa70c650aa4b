package object_test

import (
	"errors"
	"rdparser/internals"
	"rdparser/object"
	"testing"

	"github.com/go-test/deep"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		obj      object.Object
		expected string
	}{
		{&object.Integer{Value: 0}, "0"},
		{&object.Integer{Value: -17}, "-17"},
		{&object.Integer{Value: -2147483648}, "-2147483648"},
		{&object.Boolean{Value: true}, "TRUE"},
		{&object.Boolean{Value: false}, "FALSE"},
	}
	for _, tt := range tests {
		if tt.obj.Inspect() != tt.expected {
			t.Errorf("expected=%q, got=%q", tt.expected, tt.obj.Inspect())
		}
	}
}

func TestEnvironmentDeclare(t *testing.T) {
	env := object.NewEnvironment()
	env.Declare("x")

	value, err := env.Resolve("x")
	if err != nil || value != 0 {
		t.Fatalf("expected x=0, got=(%d, %v)", value, err)
	}

	if err := env.Assign("x", 5); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if value, _ := env.Resolve("x"); value != 5 {
		t.Fatalf("expected x=5, got=%d", value)
	}

	// re-declaring resets the value
	env.Declare("x")
	if value, _ := env.Resolve("x"); value != 0 {
		t.Fatalf("expected x=0 after redeclaration, got=%d", value)
	}
	if env.Len() != 1 {
		t.Fatalf("expected a single binding, got=%d", env.Len())
	}
}

func TestEnvironmentUndeclared(t *testing.T) {
	env := object.NewEnvironment()

	if _, err := env.Resolve("y"); !errors.Is(err, internals.ErrUndeclaredVariable) {
		t.Errorf("resolve: expected ErrUndeclaredVariable, got=%v", err)
	}
	if err := env.Assign("y", 1); !errors.Is(err, internals.ErrUndeclaredVariable) {
		t.Errorf("assign: expected ErrUndeclaredVariable, got=%v", err)
	}
	if env.Len() != 0 {
		t.Errorf("a failed assignment must not declare, got %d bindings", env.Len())
	}
}

func TestEnvironmentClear(t *testing.T) {
	env := object.NewEnvironment()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		env.Declare(name)
	}

	if diff := deep.Equal(env.Names(), []string{"alpha", "mid", "zeta"}); diff != nil {
		t.Error(diff)
	}

	env.Clear()
	if diff := deep.Equal(env.Names(), []string{}); diff != nil {
		t.Error(diff)
	}
	if _, err := env.Resolve("alpha"); err == nil {
		t.Errorf("alpha should be gone after clear")
	}
}
