package object

import (
	"fmt"
	"rdparser/internals"

	"github.com/google/btree"
)

// Environment is the flat variable table of one line, there are no nested scopes
type Environment struct {
	store *btree.BTree
}

type binding struct {
	name  string
	value int32
}

func (b *binding) Less(than btree.Item) bool {
	return b.name < than.(*binding).name
}

func NewEnvironment() *Environment {
	return &Environment{
		store: btree.New(4),
	}
}

// Declare binds name to 0, re-declaring resets the value
func (e *Environment) Declare(name string) {
	e.store.ReplaceOrInsert(&binding{name: name})
}

func (e *Environment) Resolve(name string) (int32, error) {
	item := e.store.Get(&binding{name: name})
	if item == nil {
		return 0, fmt.Errorf("%w: %s", internals.ErrUndeclaredVariable, name)
	}
	return item.(*binding).value, nil
}

func (e *Environment) Assign(name string, value int32) error {
	item := e.store.Get(&binding{name: name})
	if item == nil {
		return fmt.Errorf("%w: %s", internals.ErrUndeclaredVariable, name)
	}
	item.(*binding).value = value
	return nil
}

func (e *Environment) Clear() {
	e.store.Clear(false)
}

func (e *Environment) Len() int {
	return e.store.Len()
}

// Names lists the declared variables in order
func (e *Environment) Names() []string {
	names := make([]string, 0, e.store.Len())
	e.store.Ascend(func(item btree.Item) bool {
		names = append(names, item.(*binding).name)
		return true
	})
	return names
}
