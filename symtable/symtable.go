// Package symtable implements the two-level scoped symbol table used by
// the Jack code generator: a class scope holding Static/Field entries
// and a subroutine scope holding Argument/Local entries. Lookup tries
// the subroutine scope first, then falls back to class scope.
package symtable

import "fmt"

type Kind string

const (
	Static   Kind = "static"
	Field    Kind = "field"
	Argument Kind = "argument"
	Local    Kind = "local"
)

// Entry is one symbol-table record.
type Entry struct {
	Name  string
	Type  string
	Kind  Kind
	Index int
}

// Table holds a class-scope map and a subroutine-scope map, each
// indexed by name, plus per-kind counters used to assign sequential
// indices.
type Table struct {
	class      map[string]Entry
	subroutine map[string]Entry
	counters   map[Kind]int
}

func New() *Table {
	return &Table{
		class:      make(map[string]Entry),
		subroutine: make(map[string]Entry),
		counters:   make(map[Kind]int),
	}
}

// StartSubroutine resets the subroutine scope and its Argument/Local
// counters, called at the start of every subroutine.
func (t *Table) StartSubroutine() {
	t.subroutine = make(map[string]Entry)
	delete(t.counters, Argument)
	delete(t.counters, Local)
}

// Define adds a new symbol to the scope implied by its kind
// (Static/Field go to class scope, Argument/Local to subroutine scope).
// Redefining a name already present in that scope is an error.
func (t *Table) Define(name, typ string, kind Kind) (Entry, error) {
	scope := t.scopeFor(kind)
	if _, ok := scope[name]; ok {
		return Entry{}, fmt.Errorf("symbol %q already declared in this scope", name)
	}
	idx := t.counters[kind]
	t.counters[kind] = idx + 1
	entry := Entry{Name: name, Type: typ, Kind: kind, Index: idx}
	scope[name] = entry
	return entry, nil
}

// Count returns the number of variables of the given kind declared so
// far in the current scope.
func (t *Table) Count(kind Kind) int {
	return t.counters[kind]
}

// Lookup tries subroutine scope first, then class scope.
func (t *Table) Lookup(name string) (Entry, bool) {
	if e, ok := t.subroutine[name]; ok {
		return e, true
	}
	if e, ok := t.class[name]; ok {
		return e, true
	}
	return Entry{}, false
}

func (t *Table) scopeFor(kind Kind) map[string]Entry {
	switch kind {
	case Static, Field:
		return t.class
	default:
		return t.subroutine
	}
}
