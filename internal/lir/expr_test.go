package lir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fanyi-zhao/solang/internal/ice"
)

func identifier(n int) *Id {
	return &Id{ID: n}
}

func uintLit(width uint16, v int64) *NumberLiteral {
	return &NumberLiteral{Ty: Uint{Width: width}, Value: big.NewInt(v)}
}

func intLit(width uint16, v int64) *NumberLiteral {
	return &NumberLiteral{Ty: Int{Width: width}, Value: big.NewInt(v)}
}

func byteVector() Type {
	return Ptr{To: Struct{Tag: Vector{Elem: Bytes{Width: 1}}}}
}

func TestExprToString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			"binary",
			&BinaryExpr{Op: BinaryOperator{Op: BinAdd}, Left: identifier(1), Right: uintLit(8, 2)},
			"%1 + uint8(2)",
		},
		{
			"binary_overflowing",
			&BinaryExpr{Op: BinaryOperator{Op: BinMul, Overflowing: true}, Left: uintLit(8, 1), Right: identifier(121)},
			"uint8(1) (of)* %121",
		},
		{
			"binary_unsigned",
			&BinaryExpr{Op: BinaryOperator{Op: BinUDiv}, Left: identifier(1), Right: identifier(2)},
			"%1 (u)/ %2",
		},
		{
			"unary_not",
			&UnaryExpr{Op: UnaryOperator{Op: UnaryNot}, Operand: identifier(1)},
			"!%1",
		},
		{
			"unary_neg_overflowing",
			&UnaryExpr{Op: UnaryOperator{Op: UnaryNeg, Overflowing: true}, Operand: identifier(1)},
			"(of)-%1",
		},
		{
			"unary_bitnot",
			&UnaryExpr{Op: UnaryOperator{Op: UnaryBitNot}, Operand: identifier(1)},
			"~%1",
		},
		{"id", identifier(7), "%7"},
		{"number_literal", uintLit(8, 1), "uint8(1)"},
		{"negative_literal", intLit(16, -3), "int16(-3)"},
		{"bool_literal", &BoolLiteral{Value: true}, "true"},
		{
			"array_literal",
			&ArrayLiteral{
				Ty:     Array{Elem: Uint{Width: 8}, Dims: []ArrayLength{FixedDim{N: big.NewInt(2)}}},
				Values: []Operand{uintLit(8, 1), identifier(3)},
			},
			"uint8[2] [uint8(1), %3]",
		},
		{
			"const_array_literal",
			&ConstArrayLiteral{
				Ty:     Array{Elem: Uint{Width: 8}, Dims: []ArrayLength{FixedDim{N: big.NewInt(2)}}},
				Values: []Operand{uintLit(8, 1), uintLit(8, 2)},
			},
			"const uint8[2] [uint8(1), uint8(2)]",
		},
		{
			"bytes_literal",
			&BytesLiteral{Ty: Bytes{Width: 4}, Value: []byte{0x41, 0x42, 0x43, 0x44}},
			"bytes4 hex\"41_42_43_44\"",
		},
		{
			"struct_literal",
			&StructLiteral{Ty: Struct{Tag: UserStruct{No: 1}}, Values: []Operand{uintLit(8, 1), identifier(2)}},
			"struct { uint8(1), %2 }",
		},
		{
			"cast",
			&Cast{Operand: identifier(1), To: Uint{Width: 32}},
			"(cast %1 as uint32)",
		},
		{
			"bytes_cast",
			&BytesCast{Operand: identifier(1), To: byteVector()},
			"(cast %1 as ptr<struct.vector<bytes1>>)",
		},
		{
			"sign_ext",
			&SignExt{Operand: identifier(1), To: Int{Width: 64}},
			"(sext %1 to int64)",
		},
		{
			"zero_ext",
			&ZeroExt{Operand: identifier(1), To: Uint{Width: 64}},
			"(zext %1 to uint64)",
		},
		{
			"trunc",
			&Trunc{Operand: identifier(1), To: Uint{Width: 8}},
			"(trunc %1 to uint8)",
		},
		{
			"alloc",
			&AllocDynamicBytes{Ty: byteVector(), Size: uintLit(32, 3)},
			"alloc struct.vector<bytes1>[uint32(3)]",
		},
		{
			"alloc_with_initializer",
			&AllocDynamicBytes{Ty: byteVector(), Size: uintLit(32, 3), Initializer: []byte{1, 2, 3}},
			"alloc struct.vector<bytes1>[uint32(3)] {01, 02, 03}",
		},
		{"get_ref", &GetRef{Operand: identifier(1)}, "&%1"},
		{"load", &Load{Operand: identifier(1)}, "*%1"},
		{"struct_member", &StructMember{Operand: identifier(1), Member: 3}, "%1->3"},
		{"subscript", &Subscript{Arr: identifier(1), Index: identifier(2)}, "%1[%2]"},
		{
			"advance_pointer",
			&AdvancePointer{Pointer: identifier(1), BytesOffset: uintLit(32, 8)},
			"ptr_add(%1, uint32(8))",
		},
		{"function_arg", &FunctionArg{ArgNo: 2, Ty: Uint{Width: 8}}, "arg#2"},
		{
			"format_string",
			&FormatString{Args: []FormatArg{
				{Spec: FormatHex, Arg: identifier(1)},
				{Spec: FormatDefault, Arg: identifier(2)},
			}},
			"fmt_str(:x %1, %2)",
		},
		{
			"format_string_binary",
			&FormatString{Args: []FormatArg{{Spec: FormatBinary, Arg: identifier(1)}}},
			"fmt_str(:b %1)",
		},
		{"internal_function", &InternalFunctionCfg{CfgNo: 123}, "function#123"},
		{
			"keccak256",
			&Keccak256{Args: []Operand{identifier(1), identifier(2)}},
			"keccak256(%1, %2)",
		},
		{
			"string_compare",
			&StringCompare{
				Left:  &RunTimeString{Operand: identifier(1)},
				Right: &CompileTimeString{Value: []byte("abc")},
			},
			"strcmp(%1, \"[97, 98, 99]\")",
		},
		{
			"string_concat",
			&StringConcat{
				Left:  &CompileTimeString{Value: []byte("ab")},
				Right: &RunTimeString{Operand: identifier(2)},
			},
			"strcat(\"[97, 98]\", %2)",
		},
		{
			"storage_array_length",
			&StorageArrayLength{Array: identifier(1)},
			"storage_arr_len(%1)",
		},
		{"return_data", &ExternCallReturnData{}, "(extern_call_ret_data)"},
	}

	p := NewPrinter(NewVartable())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ExprString(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllocNonPointerIsInternalError(t *testing.T) {
	p := NewPrinter(NewVartable())
	_, err := p.ExprString(&AllocDynamicBytes{Ty: Uint{Width: 8}, Size: uintLit(32, 1)})
	require.Error(t, err)
	assert.True(t, ice.Is(err))
}
