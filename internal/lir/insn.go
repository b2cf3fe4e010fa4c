package lir

// InternalCallTy discriminates how a call instruction resolves its callee.
//
// This is a sealed interface - only types in this package implement it.
type InternalCallTy interface {
	internalCallTy()
}

// StaticCall is a direct call resolved at compile time.
type StaticCall struct {
	CfgNo int
}

// DynamicCall computes its callee at runtime.
type DynamicCall struct {
	Operand Operand
}

// BuiltinCall targets a compiler intrinsic.
type BuiltinCall struct {
	BuiltinNo int
}

func (*StaticCall) internalCallTy()  {}
func (*DynamicCall) internalCallTy() {}
func (*BuiltinCall) internalCallTy() {}

// CallTy selects external call semantics. Delegate and static calls
// restrict what the callee may do; a static call disallows state mutation.
type CallTy int

const (
	CallRegular CallTy = iota
	CallDelegate
	CallStatic
)

func (c CallTy) String() string {
	switch c {
	case CallDelegate:
		return "delegate"
	case CallStatic:
		return "static"
	default:
		return "regular"
	}
}

// ReturnCode is a platform-defined status code returned by the
// return_code terminator.
type ReturnCode int

const (
	ReturnSuccess ReturnCode = iota
	ReturnFunctionSelectorInvalid
	ReturnAbiEncodingInvalid
	ReturnInvalidDataError
	ReturnAccountDataTooSmall
	ReturnInvalidParameter
)

func (c ReturnCode) String() string {
	switch c {
	case ReturnSuccess:
		return "success"
	case ReturnFunctionSelectorInvalid:
		return "function selector invalid"
	case ReturnAbiEncodingInvalid:
		return "abi encoding invalid"
	case ReturnInvalidDataError:
		return "invalid data error"
	case ReturnAccountDataTooSmall:
		return "account data too small"
	default:
		return "invalid parameter"
	}
}

// PhiInput records that if control reaches the current block via BlockNo,
// the merged value equals Operand. BlockNo is a lookup into the function's
// block collection, not an owning link.
type PhiInput struct {
	Operand Operand
	BlockNo int
}

// NewPhiInput pairs an operand with its predecessor block.
func NewPhiInput(operand Operand, blockNo int) PhiInput {
	return PhiInput{Operand: operand, BlockNo: blockNo}
}

// Insn is an effectful statement: it stores, transfers control, or calls.
// Instructions exclusively own their expression subtrees and operands.
//
// This is a sealed interface - only types in this package implement it.
// Terminator instructions additionally implement the terminator marker and
// must appear exactly once, last in their block.
type Insn interface {
	insn()
}

// Terminator marks the instructions that end a basic block and determine
// its successors.
type Terminator interface {
	Insn
	terminator()
}

// Nop does nothing.
type Nop struct{}

// Set binds a fresh SSA identity to an expression's value. It is the sole
// way a new identity acquires a value outside call results and phis.
type Set struct {
	Res  int
	Expr Expr
}

// Store writes Data to the memory address Dest.
type Store struct {
	Dest Operand
	Data Operand
}

// LoadStorage reads a value from a storage slot.
type LoadStorage struct {
	Res     int
	Storage Operand
}

// ClearStorage zeroes a storage slot.
type ClearStorage struct {
	Storage Operand
}

// SetStorage writes a value to a storage slot.
type SetStorage struct {
	Storage Operand
	Value   Operand
}

// SetStorageBytes writes a single byte at an offset within a storage
// byte array.
type SetStorageBytes struct {
	Storage Operand
	Value   Operand
	Offset  Operand
}

// PushStorage appends to a storage array; a nil Value pushes a zero
// element. Res receives the new element's storage pointer.
type PushStorage struct {
	Res     int
	Storage Operand
	Value   Operand
}

// PopStorage removes the last element of a storage array; a nil Res
// discards the popped value.
type PopStorage struct {
	Res     *int
	Storage Operand
}

// PushMemory appends Value to the memory array held in variable Array.
type PushMemory struct {
	Res   int
	Array int
	Value Operand
}

// PopMemory removes the last element of the memory array in variable
// Array.
type PopMemory struct {
	Res   int
	Array int
}

// MemCopy copies Bytes bytes from Src to Dest.
type MemCopy struct {
	Src   Operand
	Dest  Operand
	Bytes Operand
}

// WriteBuffer writes Value into Buf at byte Offset.
type WriteBuffer struct {
	Buf    Operand
	Offset Operand
	Value  Operand
}

// Print emits a diagnostic value.
type Print struct {
	Operand Operand
}

// EmitEvent emits event EventNo with indexed topics and data payload.
type EmitEvent struct {
	EventNo int
	Topics  []Operand
	Data    Operand
}

// Call invokes a function of the same compilation unit, a runtime callee,
// or a builtin, binding its results to fresh identities.
type Call struct {
	Res  []int
	Call InternalCallTy
	Args []Operand
}

// ExternalCall performs a cross-contract call. Success, Address, Accounts,
// Seeds, ContractFunctionNo and Flags are optional; absent fields keep
// their slot in the printed form.
type ExternalCall struct {
	Success            *int
	Address            Operand
	Accounts           Operand
	Seeds              Operand
	Payload            Operand
	Value              Operand
	Gas                Operand
	CallTy             CallTy
	ContractFunctionNo *int
	Flags              Operand
}

// Constructor deploys a new contract instance.
type Constructor struct {
	Success       *int
	Res           int
	ContractNo    int
	ConstructorNo *int
	EncodedArgs   Operand
	Value         Operand
	Gas           Operand
	Salt          Operand
	Address       Operand
	Seeds         Operand
	Accounts      Operand
}

// ValueTransfer transfers native value to an address.
type ValueTransfer struct {
	Success *int
	Address Operand
	Value   Operand
}

// SelfDestruct destroys the current contract, sending its balance to
// Recipient.
type SelfDestruct struct {
	Recipient Operand
}

// Branch transfers control unconditionally.
type Branch struct {
	Block int
}

// BranchCond transfers control on a boolean condition.
type BranchCond struct {
	Cond       Operand
	TrueBlock  int
	FalseBlock int
}

// SwitchCase pairs a case value with its target block.
type SwitchCase struct {
	Value Operand
	Block int
}

// Switch transfers control by comparing Cond against case values.
type Switch struct {
	Cond    Operand
	Cases   []SwitchCase
	Default int
}

// Return leaves the current function with the given values.
type Return struct {
	Value []Operand
}

// ReturnData leaves the current entry point returning raw bytes.
type ReturnData struct {
	Data    Operand
	DataLen Operand
}

// ReturnCodeInsn leaves the current entry point with a platform status
// code.
type ReturnCodeInsn struct {
	Code ReturnCode
}

// AssertFailure aborts with optionally ABI-encoded revert data.
type AssertFailure struct {
	EncodedArgs Operand
}

// Unimplemented is a placeholder for a construct not yet lowered.
// Reachable records whether static analysis determined this point is live,
// distinguishing a real lowering gap from dead code.
type Unimplemented struct {
	Reachable bool
}

// Phi merges a value across predecessor control-flow paths. Phis must
// appear only at the head of a block; all phis of a block are evaluated
// simultaneously using predecessor-block-entry values. Input order is
// significant only for deterministic printing.
type Phi struct {
	Res  int
	Vars []PhiInput
}

func (*Nop) insn()             {}
func (*Set) insn()             {}
func (*Store) insn()           {}
func (*LoadStorage) insn()     {}
func (*ClearStorage) insn()    {}
func (*SetStorage) insn()      {}
func (*SetStorageBytes) insn() {}
func (*PushStorage) insn()     {}
func (*PopStorage) insn()      {}
func (*PushMemory) insn()      {}
func (*PopMemory) insn()       {}
func (*MemCopy) insn()         {}
func (*WriteBuffer) insn()     {}
func (*Print) insn()           {}
func (*EmitEvent) insn()       {}
func (*Call) insn()            {}
func (*ExternalCall) insn()    {}
func (*Constructor) insn()     {}
func (*ValueTransfer) insn()   {}
func (*SelfDestruct) insn()    {}
func (*Branch) insn()          {}
func (*BranchCond) insn()      {}
func (*Switch) insn()          {}
func (*Return) insn()          {}
func (*ReturnData) insn()      {}
func (*ReturnCodeInsn) insn()  {}
func (*AssertFailure) insn()   {}
func (*Unimplemented) insn()   {}
func (*Phi) insn()             {}

func (*Branch) terminator()         {}
func (*BranchCond) terminator()     {}
func (*Switch) terminator()         {}
func (*Return) terminator()         {}
func (*ReturnData) terminator()     {}
func (*ReturnCodeInsn) terminator() {}
func (*AssertFailure) terminator()  {}
func (*Unimplemented) terminator()  {}
