package lir

import (
	"fmt"
	"math/big"
)

// Operand references a value usable inside an expression: a variable
// identity or a literal constant. Operands are immutable once constructed;
// an Id is a back-reference into the Vartable, never an owner.
//
// This is a sealed interface - only types in this package implement it.
type Operand interface {
	operand()
	fmt.Stringer
}

// Id reads a variable's current (sole, SSA) value.
type Id struct {
	ID int
}

// NumberLiteral is an integer constant carrying its IR type.
type NumberLiteral struct {
	Ty    Type
	Value *big.Int
}

// BoolLiteral is a boolean constant.
type BoolLiteral struct {
	Value bool
}

func (*Id) operand()            {}
func (*NumberLiteral) operand() {}
func (*BoolLiteral) operand()   {}
func (*FunctionArg) operand()   {}

func (o *Id) String() string { return fmt.Sprintf("%%%d", o.ID) }

// Literal rendering mirrors the literal's type: a uint8 with value 1
// prints as uint8(1).
func (o *NumberLiteral) String() string { return fmt.Sprintf("%s(%s)", o.Ty, o.Value) }

func (o *FunctionArg) String() string { return fmt.Sprintf("arg#%d", o.ArgNo) }

func (o *BoolLiteral) String() string {
	if o.Value {
		return "true"
	}
	return "false"
}

// BinOp enumerates binary operator kinds.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinPow
	BinDiv
	BinUDiv
	BinMod
	BinUMod
	BinEq
	BinNeq
	BinLt
	BinULt
	BinLte
	BinULte
	BinGt
	BinUGt
	BinGte
	BinUGte
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinUShr
)

var binOpSymbols = map[BinOp]string{
	BinAdd:    "+",
	BinSub:    "-",
	BinMul:    "*",
	BinPow:    "**",
	BinDiv:    "/",
	BinUDiv:   "(u)/",
	BinMod:    "%",
	BinUMod:   "(u)%",
	BinEq:     "==",
	BinNeq:    "!=",
	BinLt:     "<",
	BinULt:    "(u)<",
	BinLte:    "<=",
	BinULte:   "(u)<=",
	BinGt:     ">",
	BinUGt:    "(u)>",
	BinGte:    ">=",
	BinUGte:   "(u)>=",
	BinBitAnd: "&",
	BinBitOr:  "|",
	BinBitXor: "^",
	BinShl:    "<<",
	BinShr:    ">>",
	BinUShr:   "(u)>>",
}

// BinaryOperator is a binary operator kind plus its overflow behavior.
// Overflowing applies to the arithmetic kinds (add, sub, mul, pow) and
// selects wrapping semantics over checked; the printer surfaces the
// distinction with an (of) prefix.
type BinaryOperator struct {
	Op          BinOp
	Overflowing bool
}

func (op BinaryOperator) String() string {
	sym := binOpSymbols[op.Op]
	if op.Overflowing {
		return "(of)" + sym
	}
	return sym
}

// UnaryOp enumerates unary operator kinds.
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
	UnaryBitNot
)

// UnaryOperator is a unary operator kind plus its overflow behavior
// (negation only).
type UnaryOperator struct {
	Op          UnaryOp
	Overflowing bool
}

func (op UnaryOperator) String() string {
	var sym string
	switch op.Op {
	case UnaryNot:
		sym = "!"
	case UnaryNeg:
		sym = "-"
	case UnaryBitNot:
		sym = "~"
	}
	if op.Overflowing {
		return "(of)" + sym
	}
	return sym
}

// StringLocation is a two-variant choice for string operands: either a
// compile-time byte constant or a runtime operand. Keeping the distinction
// in the type makes constant-folding opportunities visible directly.
type StringLocation interface {
	stringLocation()
}

// CompileTimeString is a byte constant known at compile time.
type CompileTimeString struct {
	Value []byte
}

// RunTimeString is a string held in a runtime operand.
type RunTimeString struct {
	Operand Operand
}

func (*CompileTimeString) stringLocation() {}
func (*RunTimeString) stringLocation()     {}

// FormatSpec selects the display format of one FormatString argument.
type FormatSpec int

const (
	FormatDefault FormatSpec = iota
	FormatBinary
	FormatHex
)

func (s FormatSpec) String() string {
	switch s {
	case FormatBinary:
		return ":b"
	case FormatHex:
		return ":x"
	default:
		return ""
	}
}

// FormatArg pairs a FormatString argument with its display format.
type FormatArg struct {
	Spec FormatSpec
	Arg  Operand
}

// Expr is a pure, side-effect-free computation producing a value:
// evaluating it reads its operands and yields a typed value with no store
// and no control transfer.
//
// This is a sealed interface - only types in this package implement it.
// Id, NumberLiteral and BoolLiteral are both Operands and Exprs.
type Expr interface {
	expr()
}

func (*Id) expr()            {}
func (*NumberLiteral) expr() {}
func (*BoolLiteral) expr()   {}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	Op    BinaryOperator
	Left  Operand
	Right Operand
}

// UnaryExpr applies a unary operator to one operand.
type UnaryExpr struct {
	Op      UnaryOperator
	Operand Operand
}

// BytesLiteral is a fixed-width byte constant.
type BytesLiteral struct {
	Ty    Type
	Value []byte
}

// ArrayLiteral is an array constructed at runtime from the given element
// operands. Ty is the full array type including dimensions.
type ArrayLiteral struct {
	Ty     Type
	Values []Operand
}

// ConstArrayLiteral is a fully compile-time-constant array. It is kept
// distinct from ArrayLiteral because later stages may place it in
// read-only static storage.
type ConstArrayLiteral struct {
	Ty     Type
	Values []Operand
}

// StructLiteral constructs a struct value from field operands.
type StructLiteral struct {
	Ty     Type
	Values []Operand
}

// Cast reinterprets an operand as another type without changing its
// representation.
type Cast struct {
	Operand Operand
	To      Type
}

// BytesCast converts between fixed-width bytes and dynamic bytes. Unlike
// Cast it changes representation (inline bytes versus pointer-to-vector),
// not just the bit pattern.
type BytesCast struct {
	Operand Operand
	To      Type
}

// SignExt widens a signed integer.
type SignExt struct {
	Operand Operand
	To      Type
}

// ZeroExt widens an unsigned integer.
type ZeroExt struct {
	Operand Operand
	To      Type
}

// Trunc narrows an integer. Truncation of an out-of-range value is
// undefined at this layer; the lowering pass that emitted it is
// responsible for any runtime guard.
type Trunc struct {
	Operand Operand
	To      Type
}

// AllocDynamicBytes allocates a dynamic buffer of runtime Size elements.
// A non-nil Initializer is a compile-time byte sequence copied into the
// new buffer; consistency between its length and a constant Size is the
// emitting pass's responsibility, not checked here.
type AllocDynamicBytes struct {
	Ty          Type
	Size        Operand
	Initializer []byte
}

// GetRef takes the address of a value.
type GetRef struct {
	Operand Operand
}

// Load dereferences an address.
type Load struct {
	Operand Operand
}

// StructMember reads a struct field by index.
type StructMember struct {
	Operand Operand
	Member  int
}

// Subscript indexes an array.
type Subscript struct {
	Arr   Operand
	Index Operand
}

// AdvancePointer offsets a pointer by a byte count, used for manual
// buffer walking.
type AdvancePointer struct {
	Pointer     Operand
	BytesOffset Operand
}

// FunctionArg references the current function's nth parameter.
type FunctionArg struct {
	ArgNo int
	Ty    Type
}

// FormatString builds diagnostic output from formatted arguments.
type FormatString struct {
	Args []FormatArg
}

// InternalFunctionCfg references another function of the compilation unit
// by number, usable as a first-class value for indirect calls.
type InternalFunctionCfg struct {
	CfgNo int
}

// Keccak256 hashes its arguments.
type Keccak256 struct {
	Args []Operand
}

// StringCompare compares two strings, each compile-time or runtime.
type StringCompare struct {
	Left  StringLocation
	Right StringLocation
}

// StringConcat concatenates two strings, each compile-time or runtime.
type StringConcat struct {
	Left  StringLocation
	Right StringLocation
}

// StorageArrayLength reads a storage array's length without loading its
// elements.
type StorageArrayLength struct {
	Array Operand
}

// ExternCallReturnData references the data returned by the most recent
// external call in the current context.
type ExternCallReturnData struct{}

func (*BinaryExpr) expr()           {}
func (*UnaryExpr) expr()            {}
func (*BytesLiteral) expr()         {}
func (*ArrayLiteral) expr()         {}
func (*ConstArrayLiteral) expr()    {}
func (*StructLiteral) expr()        {}
func (*Cast) expr()                 {}
func (*BytesCast) expr()            {}
func (*SignExt) expr()              {}
func (*ZeroExt) expr()              {}
func (*Trunc) expr()                {}
func (*AllocDynamicBytes) expr()    {}
func (*GetRef) expr()               {}
func (*Load) expr()                 {}
func (*StructMember) expr()         {}
func (*Subscript) expr()            {}
func (*AdvancePointer) expr()       {}
func (*FunctionArg) expr()          {}
func (*FormatString) expr()         {}
func (*InternalFunctionCfg) expr()  {}
func (*Keccak256) expr()            {}
func (*StringCompare) expr()        {}
func (*StringConcat) expr()         {}
func (*StorageArrayLength) expr()   {}
func (*ExternCallReturnData) expr() {}
