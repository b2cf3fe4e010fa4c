// Package sema models the high-level source types this layer consumes.
//
// This is the input contract only: the semantic pass that produced these
// types has already checked the source rules, so nothing here validates
// source-level well-typedness. The lowering pass (internal/lower) maps each
// of these types onto exactly one low-level IR type.
package sema

import (
	"fmt"
	"math/big"
	"strings"
)

// Type is a high-level source type.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern enables exhaustive type switches in the
// lowering pass.
type Type interface {
	semaType()
	fmt.Stringer
}

// ArrayLength is one dimension of a source array type: a fixed length, a
// dynamic length, or a fixed-but-unspecified length used in generic
// contexts.
type ArrayLength interface {
	semaArrayLength()
}

// Fixed is a known compile-time array length.
type Fixed struct {
	N *big.Int
}

// Dynamic marks a dimension whose length is stored alongside the data.
type Dynamic struct{}

// AnyFixed marks a fixed dimension of unspecified length.
type AnyFixed struct{}

func (Fixed) semaArrayLength()    {}
func (Dynamic) semaArrayLength()  {}
func (AnyFixed) semaArrayLength() {}

// StructTag identifies a source struct layout: a user definition or one of
// the platform-reserved system structures.
type StructTag interface {
	semaStructTag()
	fmt.Stringer
}

// UserDefined references a user struct by its declaration number.
type UserDefined struct {
	No int
}

// AccountInfo is the reserved Solana account-info structure.
type AccountInfo struct{}

// AccountMeta is the reserved Solana account-meta structure.
type AccountMeta struct{}

// Parameters is the reserved Solana program-parameters structure.
type Parameters struct{}

// ExternalFunctionTag is the layout of an external function value
// (address plus selector).
type ExternalFunctionTag struct{}

func (UserDefined) semaStructTag()         {}
func (AccountInfo) semaStructTag()         {}
func (AccountMeta) semaStructTag()         {}
func (Parameters) semaStructTag()          {}
func (ExternalFunctionTag) semaStructTag() {}

func (t UserDefined) String() string       { return fmt.Sprintf("struct#%d", t.No) }
func (AccountInfo) String() string         { return "AccountInfo" }
func (AccountMeta) String() string         { return "AccountMeta" }
func (Parameters) String() string          { return "Parameters" }
func (ExternalFunctionTag) String() string { return "ExternalFunction" }

// Bool is the source boolean type.
type Bool struct{}

// Int is a signed integer of explicit bit width.
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

// Address is an account address; Payable is a source-level property with no
// representational consequence.
type Address struct {
	Payable bool
}

// Contract is a reference to a contract instance, represented as an address.
type Contract struct {
	No int
}

// Value is the native balance type; its width is a platform parameter.
type Value struct{}

// FunctionSelector is the dispatch selector type; its width is a platform
// parameter.
type FunctionSelector struct{}

// String is the source string type.
type String struct{}

// DynamicBytes is the source dynamic byte-array type.
type DynamicBytes struct{}

// Enum references an enum declaration; enums are represented by their
// small unsigned discriminant.
type Enum struct {
	No int
}

// Array is a possibly multi-dimensional array, outer dimension first.
type Array struct {
	Elem Type
	Dims []ArrayLength
}

// Struct references a struct layout by tag.
type Struct struct {
	Tag StructTag
}

// Mapping is an associative storage type; it has no in-memory form.
type Mapping struct {
	Key   Type
	Value Type
}

// Ref is a reference to a value in memory.
type Ref struct {
	To Type
}

// StorageRef is a reference to a value in persistent storage; Immutable
// marks write-once locations.
type StorageRef struct {
	Immutable bool
	To        Type
}

// InternalFunction is a function in the same compilation unit, usable as a
// first-class value.
type InternalFunction struct {
	Params  []Type
	Returns []Type
}

// ExternalFunction is a function on another contract: an address plus a
// selector.
type ExternalFunction struct {
	Params  []Type
	Returns []Type
}

// Slice is a fat reference: data pointer plus length.
type Slice struct {
	Elem Type
}

// BufferPointer is a raw pointer into an encoding buffer.
type BufferPointer struct{}

// Rational is a compile-time-only rational literal type. It is not
// machine-representable; reaching the lowering pass with one is an
// internal compiler error.
type Rational struct{}

func (Bool) semaType()             {}
func (Int) semaType()              {}
func (Uint) semaType()             {}
func (Bytes) semaType()            {}
func (Address) semaType()          {}
func (Contract) semaType()         {}
func (Value) semaType()            {}
func (FunctionSelector) semaType() {}
func (String) semaType()           {}
func (DynamicBytes) semaType()     {}
func (Enum) semaType()             {}
func (Array) semaType()            {}
func (Struct) semaType()           {}
func (Mapping) semaType()          {}
func (Ref) semaType()              {}
func (StorageRef) semaType()       {}
func (InternalFunction) semaType() {}
func (ExternalFunction) semaType() {}
func (Slice) semaType()            {}
func (BufferPointer) semaType()    {}
func (Rational) semaType()         {}

func (Bool) String() string               { return "bool" }
func (t Int) String() string              { return fmt.Sprintf("int%d", t.Width) }
func (t Uint) String() string             { return fmt.Sprintf("uint%d", t.Width) }
func (t Bytes) String() string            { return fmt.Sprintf("bytes%d", t.Width) }
func (t Contract) String() string         { return fmt.Sprintf("contract#%d", t.No) }
func (Value) String() string              { return "value" }
func (FunctionSelector) String() string   { return "function_selector" }
func (String) String() string             { return "string" }
func (DynamicBytes) String() string       { return "bytes" }
func (t Enum) String() string             { return fmt.Sprintf("enum#%d", t.No) }
func (t Struct) String() string           { return t.Tag.String() }
func (t Ref) String() string              { return fmt.Sprintf("ref<%s>", t.To) }
func (BufferPointer) String() string      { return "buffer_pointer" }
func (Rational) String() string           { return "rational" }
func (t Slice) String() string            { return fmt.Sprintf("slice<%s>", t.Elem) }

func (t Address) String() string {
	if t.Payable {
		return "address payable"
	}
	return "address"
}

func (t Array) String() string {
	var sb strings.Builder
	sb.WriteString(t.Elem.String())
	for _, dim := range t.Dims {
		switch d := dim.(type) {
		case Fixed:
			fmt.Fprintf(&sb, "[%s]", d.N)
		case Dynamic:
			sb.WriteString("[]")
		case AnyFixed:
			sb.WriteString("[?]")
		}
	}
	return sb.String()
}

func (t Mapping) String() string {
	return fmt.Sprintf("mapping(%s => %s)", t.Key, t.Value)
}

func (t StorageRef) String() string {
	if t.Immutable {
		return fmt.Sprintf("immutable<%s>", t.To)
	}
	return fmt.Sprintf("storage<%s>", t.To)
}

func (t InternalFunction) String() string {
	return signature("function", t.Params, t.Returns)
}

func (t ExternalFunction) String() string {
	return signature("function external", t.Params, t.Returns)
}

func signature(kind string, params, returns []Type) string {
	var sb strings.Builder
	sb.WriteString(kind)
	sb.WriteByte('(')
	for i, p := range params {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	if len(returns) > 0 {
		sb.WriteString(" returns (")
		for i, r := range returns {
			if i != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(r.String())
		}
		sb.WriteByte(')')
	}
	return sb.String()
}
