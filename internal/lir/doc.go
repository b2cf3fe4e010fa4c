// Package lir defines the low-level SSA intermediate representation that
// sits between the typed AST/CFG and target code emission.
//
// This package contains the data model and its canonical rendering only.
// All other internal packages import lir; lir imports nothing internal
// except ice. This keeps the IR the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Closed variant sets: Type, Operand, Expr and Insn are sealed
//     interfaces; every consumer can switch exhaustively.
//   - One identity, one definition, one type: variable identities are
//     integers assigned monotonically by the Vartable and never reused or
//     retyped.
//   - Phi inputs and branch targets reference blocks by number, never by
//     structural link; block graphs are cyclic and must not own each other.
//   - The canonical printer's text grammar is an external contract:
//     downstream tests diff it byte-for-byte.
package lir
