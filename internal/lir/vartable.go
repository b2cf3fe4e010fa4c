package lir

import (
	"golang.org/x/text/unicode/norm"

	"github.com/fanyi-zhao/solang/internal/ice"
)

// Var is one SSA identity's declaration: its type and an optional debug
// name carried over from the source.
type Var struct {
	Ty   Type
	Name string
}

// Vartable assigns and tracks SSA identities for one function. Identities
// are integers, assigned monotonically and never reused or renumbered, so
// printed identifiers stay stable across passes that only add blocks or
// variables. An identity's type never changes after declaration.
//
// The table is owned exclusively by the compilation of its function and is
// torn down with the function's IR.
type Vartable struct {
	vars   map[int]Var
	nextID int
}

// NewVartable creates an empty table.
func NewVartable() *Vartable {
	return &Vartable{vars: map[int]Var{}}
}

// Declare assigns a fresh identity with the given type and optional debug
// name. Debug names are NFC-normalized at this boundary so printed output
// is stable across source input encodings.
func (vt *Vartable) Declare(ty Type, name string) int {
	id := vt.nextID
	vt.nextID++
	vt.vars[id] = Var{Ty: ty, Name: norm.NFC.String(name)}
	return id
}

// TypeOf returns the declared type of an identity. An unknown identity is
// an internal compiler error: it signals that an earlier pass fabricated a
// reference without declaring it.
func (vt *Vartable) TypeOf(id int) (Type, error) {
	v, ok := vt.vars[id]
	if !ok {
		return nil, ice.Errorf("variable %%%d not found in vartable", id)
	}
	return v.Ty, nil
}

// NameOf returns an identity's debug name, or the empty string.
func (vt *Vartable) NameOf(id int) string {
	return vt.vars[id].Name
}

// Len returns the number of declared identities.
func (vt *Vartable) Len() int {
	return len(vt.vars)
}
