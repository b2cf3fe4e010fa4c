package lir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intptr(n int) *int {
	return &n
}

func TestInsnToString(t *testing.T) {
	tests := []struct {
		name string
		insn Insn
		want string
	}{
		{"nop", &Nop{}, "nop;"},
		{
			"set",
			&Set{
				Res: 122,
				Expr: &BinaryExpr{
					Op:    BinaryOperator{Op: BinMul, Overflowing: true},
					Left:  uintLit(8, 1),
					Right: identifier(121),
				},
			},
			"%122 = uint8(1) (of)* %121;",
		},
		{
			"store",
			&Store{Dest: identifier(0), Data: identifier(1)},
			"store %1 to %0;",
		},
		{
			"load_storage",
			&LoadStorage{Res: 101, Storage: identifier(3)},
			"%101 = load_storage %3;",
		},
		{
			"clear_storage",
			&ClearStorage{Storage: identifier(1)},
			"clear_storage %1;",
		},
		{
			"set_storage",
			&SetStorage{Storage: identifier(1), Value: uintLit(256, 13445566)},
			"set_storage %1 uint256(13445566);",
		},
		{
			"set_storage_bytes",
			&SetStorageBytes{Storage: identifier(2), Value: identifier(1), Offset: uintLit(8, 3)},
			"set_storage_bytes %2 offset:uint8(3) value:%1;",
		},
		{
			"push_storage",
			&PushStorage{Res: 101, Storage: identifier(3), Value: uintLit(32, 1)},
			"%101 = push_storage %3 uint32(1);",
		},
		{
			"push_storage_zero_value",
			&PushStorage{Res: 101, Storage: identifier(3)},
			"%101 = push_storage %3;",
		},
		{
			"pop_storage",
			&PopStorage{Res: intptr(123), Storage: identifier(3)},
			"%123 = pop_storage %3;",
		},
		{
			"pop_storage_discard",
			&PopStorage{Storage: identifier(3)},
			"pop_storage %3;",
		},
		{
			"push_mem",
			&PushMemory{Res: 101, Array: 3, Value: uintLit(32, 1)},
			"%101 = push_mem %3 uint32(1);",
		},
		{
			"pop_mem",
			&PopMemory{Res: 101, Array: 3},
			"%101 = pop_mem %3;",
		},
		{
			"memcopy",
			&MemCopy{Src: identifier(3), Dest: identifier(4), Bytes: uintLit(8, 11)},
			"memcopy %3 to %4 for uint8(11) bytes;",
		},
		{
			"write_buf",
			&WriteBuffer{Buf: identifier(1), Offset: uintLit(8, 11), Value: identifier(2)},
			"write_buf %1 offset:uint8(11) value:%2;",
		},
		{
			"print",
			&Print{Operand: identifier(3)},
			"print %3;",
		},
		{
			"emit",
			&EmitEvent{EventNo: 13, Topics: []Operand{identifier(1), identifier(2)}, Data: identifier(3)},
			"emit event#13 to topics[%1, %2], data: %3;",
		},
		{
			"call_builtin",
			&Call{
				Res:  []int{1, 2, 3},
				Call: &BuiltinCall{BuiltinNo: 123},
				Args: []Operand{identifier(3), identifier(5), identifier(7)},
			},
			"%1, %2, %3 = call builtin#123(%3, %5, %7);",
		},
		{
			"call_static",
			&Call{
				Res:  []int{1},
				Call: &StaticCall{CfgNo: 123},
				Args: []Operand{identifier(3)},
			},
			"%1 = call function#123(%3);",
		},
		{
			"call_dynamic",
			&Call{
				Res:  []int{1},
				Call: &DynamicCall{Operand: identifier(123)},
				Args: []Operand{identifier(3)},
			},
			"%1 = call %123(%3);",
		},
		{
			"call_no_results",
			&Call{
				Call: &StaticCall{CfgNo: 1},
				Args: []Operand{identifier(2)},
			},
			"call function#1(%2);",
		},
		{
			"call_ext",
			&ExternalCall{
				Success:  intptr(1),
				Address:  identifier(2),
				Accounts: identifier(3),
				Seeds:    identifier(4),
				Payload:  identifier(5),
				Value:    identifier(6),
				Gas:      uintLit(8, 120),
				CallTy:   CallRegular,
				Flags:    identifier(7),
			},
			"%1 = call_ext [regular] address:%2 payload:%5 value:%6 gas:uint8(120) accounts:%3 seeds:%4 _ flags:%7;",
		},
		{
			"call_ext_minimal",
			&ExternalCall{
				Payload: identifier(5),
				Value:   identifier(6),
				Gas:     uintLit(8, 120),
				CallTy:  CallStatic,
			},
			"call_ext [static] _ payload:%5 value:%6 gas:uint8(120) _ _ _ _;",
		},
		{
			"call_ext_delegate",
			&ExternalCall{
				Address:            identifier(2),
				Payload:            identifier(5),
				Value:              identifier(6),
				Gas:                uintLit(8, 120),
				CallTy:             CallDelegate,
				ContractFunctionNo: intptr(4),
			},
			"call_ext [delegate] address:%2 payload:%5 value:%6 gas:uint8(120) _ _ contract_no:4 _;",
		},
		{
			"constructor",
			&Constructor{
				Success:       intptr(1),
				Res:           13,
				ContractNo:    0,
				ConstructorNo: intptr(2),
				EncodedArgs:   identifier(4),
				Value:         uintLit(8, 5),
				Gas:           uintLit(8, 300),
				Salt:          uintLit(8, 22),
				Address:       identifier(6),
				Seeds:         identifier(7),
				Accounts:      identifier(8),
			},
			"%13, %1 = constructor(no: 2, contract_no:0) salt:uint8(22) value:uint8(5) gas:uint8(300) address:%6 seeds:%7 encoded-buffer:%4 accounts:%8;",
		},
		{
			"constructor_minimal",
			&Constructor{
				Res:         13,
				ContractNo:  0,
				EncodedArgs: identifier(4),
				Gas:         uintLit(8, 300),
			},
			"%13 = constructor(contract_no:0) _ _ gas:uint8(300) _ _ encoded-buffer:%4 _;",
		},
		{
			"transfer",
			&ValueTransfer{Success: intptr(1), Address: identifier(2), Value: identifier(3)},
			"%1 = transfer %3 to %2;",
		},
		{
			"transfer_no_success",
			&ValueTransfer{Address: identifier(2), Value: identifier(3)},
			"transfer %3 to %2;",
		},
		{
			"self_destruct",
			&SelfDestruct{Recipient: identifier(3)},
			"self_destruct %3;",
		},
		{
			"branch",
			&Branch{Block: 3},
			"br block#3;",
		},
		{
			"branch_cond",
			&BranchCond{Cond: identifier(3), TrueBlock: 5, FalseBlock: 6},
			"cbr %3 block#5 else block#6;",
		},
		{
			"switch",
			&Switch{
				Cond: identifier(1),
				Cases: []SwitchCase{
					{Value: identifier(4), Block: 11},
					{Value: identifier(5), Block: 12},
					{Value: identifier(6), Block: 13},
				},
				Default: 14,
			},
			"switch %1 cases: [%4 => block#11, %5 => block#12, %6 => block#13] default: block#14;",
		},
		{
			"return",
			&Return{Value: []Operand{identifier(1), identifier(2), identifier(3)}},
			"return %1, %2, %3;",
		},
		{
			"return_empty",
			&Return{},
			"return;",
		},
		{
			"return_data",
			&ReturnData{Data: identifier(0), DataLen: uintLit(8, 1)},
			"return_data %0 of length uint8(1);",
		},
		{
			"return_code",
			&ReturnCodeInsn{Code: ReturnAbiEncodingInvalid},
			"return_code \"abi encoding invalid\";",
		},
		{
			"assert_failure",
			&AssertFailure{EncodedArgs: identifier(3)},
			"assert_failure %3;",
		},
		{
			"assert_failure_no_data",
			&AssertFailure{},
			"assert_failure;",
		},
		{
			"unimplemented_reachable",
			&Unimplemented{Reachable: true},
			"unimplemented: reachable;",
		},
		{
			"unimplemented_unreachable",
			&Unimplemented{Reachable: false},
			"unimplemented: unreachable;",
		},
		{
			"phi",
			&Phi{Res: 12, Vars: []PhiInput{
				NewPhiInput(identifier(1), 13),
				NewPhiInput(identifier(2), 14),
			}},
			"%12 = phi [%1, block#13], [%2, block#14];",
		},
	}

	p := NewPrinter(NewVartable())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.InsnString(tt.insn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReturnCodeStrings(t *testing.T) {
	tests := []struct {
		code ReturnCode
		want string
	}{
		{ReturnSuccess, "success"},
		{ReturnFunctionSelectorInvalid, "function selector invalid"},
		{ReturnAbiEncodingInvalid, "abi encoding invalid"},
		{ReturnInvalidDataError, "invalid data error"},
		{ReturnAccountDataTooSmall, "account data too small"},
		{ReturnInvalidParameter, "invalid parameter"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestPhiInputOrderIsSignificant(t *testing.T) {
	p := NewPrinter(NewVartable())

	a := &Phi{Res: 12, Vars: []PhiInput{
		NewPhiInput(identifier(1), 13),
		NewPhiInput(identifier(2), 14),
	}}
	b := &Phi{Res: 12, Vars: []PhiInput{
		NewPhiInput(identifier(2), 14),
		NewPhiInput(identifier(1), 13),
	}}

	sa, err := p.InsnString(a)
	require.NoError(t, err)
	sb, err := p.InsnString(b)
	require.NoError(t, err)
	assert.NotEqual(t, sa, sb)
}
