package lir

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/fanyi-zhao/solang/internal/ice"
)

// Printer renders IR values to their canonical text form. The grammar is
// an external contract: downstream tests diff the output byte-for-byte,
// so rendering must be deterministic and depend on nothing but the value
// itself and the Vartable.
//
// Printing is total except for variants explicitly unsupported, which is
// an internal compiler error: the printer is a debugging and testing
// facility, so failing loudly is correct.
type Printer struct {
	Vars *Vartable
}

// NewPrinter creates a printer over the given vartable.
func NewPrinter(vars *Vartable) *Printer {
	return &Printer{Vars: vars}
}

// errWriter latches the first write or rendering error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, args...)
	}
}

func (ew *errWriter) fail(e error) {
	if ew.err == nil {
		ew.err = e
	}
}

// PrintInsn writes one instruction in canonical form, without trailing
// newline.
func (p *Printer) PrintInsn(w io.Writer, insn Insn) error {
	ew := &errWriter{w: w}
	p.insn(ew, insn)
	return ew.err
}

// PrintExpr writes one expression in canonical form.
func (p *Printer) PrintExpr(w io.Writer, e Expr) error {
	ew := &errWriter{w: w}
	p.expr(ew, e)
	return ew.err
}

// PrintBlock writes a block header and its instructions, one per line,
// indented four spaces.
func (p *Printer) PrintBlock(w io.Writer, no int, block *Block) error {
	ew := &errWriter{w: w}
	if block.Name != "" {
		ew.printf("block#%d %s:\n", no, block.Name)
	} else {
		ew.printf("block#%d:\n", no)
	}
	for _, insn := range block.Insns {
		ew.printf("    ")
		p.insn(ew, insn)
		ew.printf("\n")
	}
	return ew.err
}

// PrintCfg writes a whole function: signature header, then blocks in
// numeric order.
func (p *Printer) PrintCfg(w io.Writer, cfg *Cfg) error {
	ew := &errWriter{w: w}
	ew.printf("function#%d %s(%s) -> (%s):\n",
		cfg.No, norm.NFC.String(cfg.Name), typeList(cfg.Params), typeList(cfg.Returns))
	for no, block := range cfg.Blocks {
		if err := p.PrintBlock(w, no, block); err != nil {
			ew.fail(err)
			break
		}
	}
	return ew.err
}

// InsnString renders one instruction to a string.
func (p *Printer) InsnString(insn Insn) (string, error) {
	var sb strings.Builder
	if err := p.PrintInsn(&sb, insn); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExprString renders one expression to a string.
func (p *Printer) ExprString(e Expr) (string, error) {
	var sb strings.Builder
	if err := p.PrintExpr(&sb, e); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// CfgString renders a whole function to a string.
func (p *Printer) CfgString(cfg *Cfg) (string, error) {
	var sb strings.Builder
	if err := p.PrintCfg(&sb, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustInsnString is like InsnString but panics on error. Use only in
// tests or when the instruction is known to be printable.
func (p *Printer) MustInsnString(insn Insn) string {
	s, err := p.InsnString(insn)
	if err != nil {
		panic(err)
	}
	return s
}

// MustExprString is like ExprString but panics on error.
func (p *Printer) MustExprString(e Expr) string {
	s, err := p.ExprString(e)
	if err != nil {
		panic(err)
	}
	return s
}

func (p *Printer) insn(ew *errWriter, insn Insn) {
	switch t := insn.(type) {
	case *Nop:
		ew.printf("nop;")

	case *Set:
		ew.printf("%%%d = ", t.Res)
		p.expr(ew, t.Expr)
		ew.printf(";")

	case *Store:
		ew.printf("store %s to %s;", t.Data, t.Dest)

	case *LoadStorage:
		ew.printf("%%%d = load_storage %s;", t.Res, t.Storage)

	case *ClearStorage:
		ew.printf("clear_storage %s;", t.Storage)

	case *SetStorage:
		ew.printf("set_storage %s %s;", t.Storage, t.Value)

	case *SetStorageBytes:
		ew.printf("set_storage_bytes %s offset:%s value:%s;", t.Storage, t.Offset, t.Value)

	case *PushStorage:
		if t.Value != nil {
			ew.printf("%%%d = push_storage %s %s;", t.Res, t.Storage, t.Value)
		} else {
			ew.printf("%%%d = push_storage %s;", t.Res, t.Storage)
		}

	case *PopStorage:
		if t.Res != nil {
			ew.printf("%%%d = pop_storage %s;", *t.Res, t.Storage)
		} else {
			ew.printf("pop_storage %s;", t.Storage)
		}

	case *PushMemory:
		ew.printf("%%%d = push_mem %%%d %s;", t.Res, t.Array, t.Value)

	case *PopMemory:
		ew.printf("%%%d = pop_mem %%%d;", t.Res, t.Array)

	case *MemCopy:
		ew.printf("memcopy %s to %s for %s bytes;", t.Src, t.Dest, t.Bytes)

	case *WriteBuffer:
		ew.printf("write_buf %s offset:%s value:%s;", t.Buf, t.Offset, t.Value)

	case *Print:
		ew.printf("print %s;", t.Operand)

	case *EmitEvent:
		ew.printf("emit event#%d to topics[%s], data: %s;", t.EventNo, operandList(t.Topics), t.Data)

	case *Call:
		if len(t.Res) > 0 {
			ew.printf("%s = ", resultList(t.Res))
		}
		switch callee := t.Call.(type) {
		case *StaticCall:
			ew.printf("call function#%d", callee.CfgNo)
		case *BuiltinCall:
			ew.printf("call builtin#%d", callee.BuiltinNo)
		case *DynamicCall:
			ew.printf("call %s", callee.Operand)
		default:
			ew.fail(ice.Errorf("unsupported call type for printing: %T", t.Call))
			return
		}
		ew.printf("(%s);", operandList(t.Args))

	case *ExternalCall:
		if t.Success != nil {
			ew.printf("%%%d = ", *t.Success)
		}
		ew.printf("call_ext [%s] %s payload:%s value:%s gas:%s %s %s %s %s;",
			t.CallTy,
			slot("address", t.Address),
			t.Payload, t.Value, t.Gas,
			slot("accounts", t.Accounts),
			slot("seeds", t.Seeds),
			contractFunctionSlot(t.ContractFunctionNo),
			slot("flags", t.Flags))

	case *Constructor:
		ew.printf("%%%d", t.Res)
		if t.Success != nil {
			ew.printf(", %%%d", *t.Success)
		}
		ew.printf(" = constructor(")
		if t.ConstructorNo != nil {
			ew.printf("no: %d, ", *t.ConstructorNo)
		}
		ew.printf("contract_no:%d) %s %s gas:%s %s %s encoded-buffer:%s %s;",
			t.ContractNo,
			slot("salt", t.Salt),
			slot("value", t.Value),
			t.Gas,
			slot("address", t.Address),
			slot("seeds", t.Seeds),
			t.EncodedArgs,
			slot("accounts", t.Accounts))

	case *ValueTransfer:
		if t.Success != nil {
			ew.printf("%%%d = ", *t.Success)
		}
		ew.printf("transfer %s to %s;", t.Value, t.Address)

	case *SelfDestruct:
		ew.printf("self_destruct %s;", t.Recipient)

	case *Branch:
		ew.printf("br block#%d;", t.Block)

	case *BranchCond:
		ew.printf("cbr %s block#%d else block#%d;", t.Cond, t.TrueBlock, t.FalseBlock)

	case *Switch:
		ew.printf("switch %s cases: [", t.Cond)
		for i, c := range t.Cases {
			if i != 0 {
				ew.printf(", ")
			}
			ew.printf("%s => block#%d", c.Value, c.Block)
		}
		ew.printf("] default: block#%d;", t.Default)

	case *Return:
		if len(t.Value) == 0 {
			ew.printf("return;")
		} else {
			ew.printf("return %s;", operandList(t.Value))
		}

	case *ReturnData:
		ew.printf("return_data %s of length %s;", t.Data, t.DataLen)

	case *ReturnCodeInsn:
		ew.printf("return_code \"%s\";", t.Code)

	case *AssertFailure:
		if t.EncodedArgs != nil {
			ew.printf("assert_failure %s;", t.EncodedArgs)
		} else {
			ew.printf("assert_failure;")
		}

	case *Unimplemented:
		if t.Reachable {
			ew.printf("unimplemented: reachable;")
		} else {
			ew.printf("unimplemented: unreachable;")
		}

	case *Phi:
		ew.printf("%%%d = phi ", t.Res)
		for i, in := range t.Vars {
			if i != 0 {
				ew.printf(", ")
			}
			ew.printf("[%s, block#%d]", in.Operand, in.BlockNo)
		}
		ew.printf(";")

	default:
		ew.fail(ice.Errorf("unsupported instruction for printing: %T", insn))
	}
}

// slot renders an optional labeled operand slot: "label:value" when
// present, "_" when absent. Field positions stay fixed either way.
func slot(label string, op Operand) string {
	if op == nil {
		return "_"
	}
	return label + ":" + op.String()
}

func contractFunctionSlot(no *int) string {
	if no == nil {
		return "_"
	}
	return fmt.Sprintf("contract_no:%d", *no)
}

func operandList(ops []Operand) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, ", ")
}

func resultList(res []int) string {
	parts := make([]string, len(res))
	for i, r := range res {
		parts[i] = fmt.Sprintf("%%%d", r)
	}
	return strings.Join(parts, ", ")
}

func typeList(tys []Type) string {
	parts := make([]string, len(tys))
	for i, ty := range tys {
		parts[i] = ty.String()
	}
	return strings.Join(parts, ", ")
}
