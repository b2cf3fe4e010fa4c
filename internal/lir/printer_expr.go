package lir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fanyi-zhao/solang/internal/ice"
)

func (p *Printer) expr(ew *errWriter, e Expr) {
	switch t := e.(type) {
	case *BinaryExpr:
		ew.printf("%s %s %s", t.Left, t.Op, t.Right)

	case *UnaryExpr:
		ew.printf("%s%s", t.Op, t.Operand)

	case *Id:
		ew.printf("%s", t)

	case *NumberLiteral:
		ew.printf("%s", t)

	case *BoolLiteral:
		ew.printf("%s", t)

	case *ArrayLiteral:
		// example: uint8[2][2] [uint8(1), uint8(2), %3]
		ew.printf("%s [%s]", t.Ty, operandList(t.Values))

	case *ConstArrayLiteral:
		ew.printf("const %s [%s]", t.Ty, operandList(t.Values))

	case *BytesLiteral:
		// example: bytes4 hex"41_42_43_44"
		ew.printf("%s hex\"%s\"", t.Ty, hexBytes(t.Value, "_"))

	case *StructLiteral:
		ew.printf("struct { %s }", operandList(t.Values))

	case *Cast:
		ew.printf("(cast %s as %s)", t.Operand, t.To)

	case *BytesCast:
		ew.printf("(cast %s as %s)", t.Operand, t.To)

	case *SignExt:
		ew.printf("(sext %s to %s)", t.Operand, t.To)

	case *ZeroExt:
		ew.printf("(zext %s to %s)", t.Operand, t.To)

	case *Trunc:
		ew.printf("(trunc %s to %s)", t.Operand, t.To)

	case *AllocDynamicBytes:
		ptr, ok := t.Ty.(Ptr)
		if !ok {
			ew.fail(ice.Errorf("alloc of non-pointer type %s", t.Ty))
			return
		}
		ew.printf("alloc %s[%s]", ptr.To, t.Size)
		if t.Initializer != nil {
			ew.printf(" {%s}", hexBytes(t.Initializer, ", "))
		}

	case *GetRef:
		ew.printf("&%s", t.Operand)

	case *Load:
		ew.printf("*%s", t.Operand)

	case *StructMember:
		ew.printf("%s->%d", t.Operand, t.Member)

	case *Subscript:
		ew.printf("%s[%s]", t.Arr, t.Index)

	case *AdvancePointer:
		ew.printf("ptr_add(%s, %s)", t.Pointer, t.BytesOffset)

	case *FunctionArg:
		ew.printf("arg#%d", t.ArgNo)

	case *FormatString:
		ew.printf("fmt_str(")
		for i, arg := range t.Args {
			if i != 0 {
				ew.printf(", ")
			}
			if spec := arg.Spec.String(); spec != "" {
				ew.printf("%s %s", spec, arg.Arg)
			} else {
				ew.printf("%s", arg.Arg)
			}
		}
		ew.printf(")")

	case *InternalFunctionCfg:
		ew.printf("function#%d", t.CfgNo)

	case *Keccak256:
		ew.printf("keccak256(%s)", operandList(t.Args))

	case *StringCompare:
		ew.printf("strcmp(%s, %s)", stringLocation(ew, t.Left), stringLocation(ew, t.Right))

	case *StringConcat:
		ew.printf("strcat(%s, %s)", stringLocation(ew, t.Left), stringLocation(ew, t.Right))

	case *StorageArrayLength:
		ew.printf("storage_arr_len(%s)", t.Array)

	case *ExternCallReturnData:
		ew.printf("(extern_call_ret_data)")

	default:
		ew.fail(ice.Errorf("unsupported expression for printing: %T", e))
	}
}

// stringLocation renders a strcmp/strcat operand: a compile-time byte
// constant as a quoted decimal byte list, a runtime operand as itself.
func stringLocation(ew *errWriter, loc StringLocation) string {
	switch t := loc.(type) {
	case *CompileTimeString:
		parts := make([]string, len(t.Value))
		for i, b := range t.Value {
			parts[i] = strconv.Itoa(int(b))
		}
		return "\"[" + strings.Join(parts, ", ") + "]\""
	case *RunTimeString:
		return t.Operand.String()
	default:
		ew.fail(ice.Errorf("unsupported string location for printing: %T", loc))
		return ""
	}
}

// hexBytes renders bytes as two-digit lowercase hex joined by sep.
func hexBytes(value []byte, sep string) string {
	parts := make([]string, len(value))
	for i, b := range value {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, sep)
}
