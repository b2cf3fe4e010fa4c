package lir

import (
	"fmt"
	"math/big"
	"strings"
)

// Type is a low-level IR type.
//
// This is a sealed interface - only types in this package implement it.
// The set is closed: every source type lowers to exactly one of these, and
// the printer and later passes switch over them exhaustively.
//
// Rendering is structural and deterministic; String is part of the IR's
// external contract.
type Type interface {
	lirType()
	fmt.Stringer
}

// Bool is a boolean.
type Bool struct{}

// Int is a signed integer of explicit bit width. Widths that depend on the
// platform (selectors, values) are fixed by the lowering pass, never
// inferred per expression.
type Int struct {
	Width uint16
}

// Uint is an unsigned integer of explicit bit width.
type Uint struct {
	Width uint16
}

// Bytes is a fixed-width byte sequence, 1..32 bytes.
type Bytes struct {
	Width uint8
}

// Ptr is the address of a value in the generic address space.
type Ptr struct {
	To Type
}

// StoragePtr is the address of a value in persistent storage. Immutable
// marks write-once locations.
type StoragePtr struct {
	Immutable bool
	To        Type
}

// Function is a first-class function signature.
type Function struct {
	Params  []Type
	Returns []Type
}

// Mapping is an associative storage type. It exists solely in persistent
// storage and has no in-memory representation.
type Mapping struct {
	Key   Type
	Value Type
}

// Array is a possibly multi-dimensional array, outer dimension first.
type Array struct {
	Elem Type
	Dims []ArrayLength
}

// Struct references a structure layout by tag.
type Struct struct {
	Tag StructTag
}

// Slice is a fat reference: the address of data plus an accompanying
// length, unlike Ptr which carries no length.
type Slice struct {
	Elem Type
}

func (Bool) lirType()       {}
func (Int) lirType()        {}
func (Uint) lirType()       {}
func (Bytes) lirType()      {}
func (Ptr) lirType()        {}
func (StoragePtr) lirType() {}
func (Function) lirType()   {}
func (Mapping) lirType()    {}
func (Array) lirType()      {}
func (Struct) lirType()     {}
func (Slice) lirType()      {}

// ArrayLength is one array dimension: fixed, dynamic, or fixed with
// unspecified length.
type ArrayLength interface {
	arrayLength()
}

// FixedDim is a known compile-time dimension length.
type FixedDim struct {
	N *big.Int
}

// DynamicDim marks a dimension whose length is stored alongside the data.
type DynamicDim struct{}

// AnyFixedDim marks a fixed dimension of unspecified length, used in
// generic contexts.
type AnyFixedDim struct{}

func (FixedDim) arrayLength()    {}
func (DynamicDim) arrayLength()  {}
func (AnyFixedDim) arrayLength() {}

// StructTag identifies a structure layout: a user definition, one of the
// platform-reserved system structures, an external function value, or a
// vector.
type StructTag interface {
	structTag()
	fmt.Stringer
}

// UserStruct references a user struct by declaration number.
type UserStruct struct {
	No int
}

// SolAccountInfo is the reserved Solana account-info structure.
type SolAccountInfo struct{}

// SolAccountMeta is the reserved Solana account-meta structure.
type SolAccountMeta struct{}

// SolParameters is the reserved Solana program-parameters structure.
type SolParameters struct{}

// ExternalFunctionStruct is the layout of an external function value.
type ExternalFunctionStruct struct{}

// Vector is a dynamically-sized, length-prefixed buffer. Source strings
// and dynamic byte arrays both lower to a Vector of bytes1: their storage
// layout and permitted operations are identical, so the IR need not
// distinguish them.
type Vector struct {
	Elem Type
}

func (UserStruct) structTag()             {}
func (SolAccountInfo) structTag()         {}
func (SolAccountMeta) structTag()         {}
func (SolParameters) structTag()          {}
func (ExternalFunctionStruct) structTag() {}
func (Vector) structTag()                 {}

func (t UserStruct) String() string            { return fmt.Sprintf("%d", t.No) }
func (SolAccountInfo) String() string          { return "SolAccountInfo" }
func (SolAccountMeta) String() string          { return "SolAccountMeta" }
func (SolParameters) String() string           { return "SolParameters" }
func (ExternalFunctionStruct) String() string  { return "ExternalFunction" }
func (t Vector) String() string                { return fmt.Sprintf("vector<%s>", t.Elem) }

func (Bool) String() string    { return "bool" }
func (t Int) String() string   { return fmt.Sprintf("int%d", t.Width) }
func (t Uint) String() string  { return fmt.Sprintf("uint%d", t.Width) }
func (t Bytes) String() string { return fmt.Sprintf("bytes%d", t.Width) }
func (t Ptr) String() string   { return fmt.Sprintf("ptr<%s>", t.To) }

func (t StoragePtr) String() string {
	if t.Immutable {
		return fmt.Sprintf("const_storage_ptr<%s>", t.To)
	}
	return fmt.Sprintf("storage_ptr<%s>", t.To)
}

func (t Array) String() string {
	var sb strings.Builder
	sb.WriteString(t.Elem.String())
	for _, dim := range t.Dims {
		switch d := dim.(type) {
		case FixedDim:
			fmt.Fprintf(&sb, "[%s]", d.N)
		case DynamicDim:
			sb.WriteString("[]")
		case AnyFixedDim:
			sb.WriteString("[?]")
		}
	}
	return sb.String()
}

func (t Struct) String() string { return fmt.Sprintf("struct.%s", t.Tag) }
func (t Slice) String() string  { return fmt.Sprintf("slice<%s>", t.Elem) }

func (t Function) String() string {
	var sb strings.Builder
	sb.WriteString("fn(")
	for i, p := range t.Params {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	if len(t.Returns) == 0 {
		sb.WriteString(" -> ()")
		return sb.String()
	}
	sb.WriteString(" -> (")
	for i, r := range t.Returns {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (t Mapping) String() string {
	return fmt.Sprintf("mapping<%s -> %s>", t.Key, t.Value)
}
