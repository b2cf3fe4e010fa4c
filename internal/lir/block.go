package lir

// Block is a basic block: zero or more phis, then zero or more
// non-terminator instructions, then exactly one terminator. Blocks are
// referenced by their index in the owning Cfg; branches and phi inputs
// hold those indices, never structural links.
type Block struct {
	Name  string
	Insns []Insn
}

// Terminator returns the block's final instruction if it is a terminator,
// or nil for a malformed block.
func (b *Block) Terminator() Terminator {
	if len(b.Insns) == 0 {
		return nil
	}
	term, ok := b.Insns[len(b.Insns)-1].(Terminator)
	if !ok {
		return nil
	}
	return term
}

// Successors returns the block numbers the terminator may transfer
// control to, in printed order. Abnormal exits have none.
func (b *Block) Successors() []int {
	switch term := b.Terminator().(type) {
	case *Branch:
		return []int{term.Block}
	case *BranchCond:
		return []int{term.TrueBlock, term.FalseBlock}
	case *Switch:
		succ := make([]int, 0, len(term.Cases)+1)
		for _, c := range term.Cases {
			succ = append(succ, c.Block)
		}
		return append(succ, term.Default)
	default:
		return nil
	}
}

// Cfg is one function's IR: its blocks plus the entry block number, the
// signature in lowered types, and the owning Vartable. A Cfg and its
// Vartable are owned exclusively by the compilation of that function and
// must not be aliased across threads.
type Cfg struct {
	Name    string
	No      int
	Params  []Type
	Returns []Type
	Blocks  []*Block
	Entry   int
	Vars    *Vartable
}

// NewCfg creates an empty function IR with a fresh Vartable.
func NewCfg(no int, name string) *Cfg {
	return &Cfg{Name: name, No: no, Vars: NewVartable()}
}

// AddBlock appends a block and returns its number.
func (c *Cfg) AddBlock(name string) int {
	c.Blocks = append(c.Blocks, &Block{Name: name})
	return len(c.Blocks) - 1
}

// Block returns the block with the given number, or nil.
func (c *Cfg) Block(no int) *Block {
	if no < 0 || no >= len(c.Blocks) {
		return nil
	}
	return c.Blocks[no]
}
