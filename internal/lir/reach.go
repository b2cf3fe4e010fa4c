package lir

// Reachable computes the set of block numbers reachable from the entry
// block by following terminator successors. Depth-first, iterative; block
// graphs are cyclic, so visited blocks are never re-entered.
//
// Used by lowering passes to classify Unimplemented placeholders as live
// or dead and to prune dead blocks before emission.
func (c *Cfg) Reachable() map[int]bool {
	reached := map[int]bool{}
	if c.Block(c.Entry) == nil {
		return reached
	}

	stack := []int{c.Entry}
	for len(stack) > 0 {
		no := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reached[no] {
			continue
		}
		reached[no] = true

		block := c.Block(no)
		if block == nil {
			continue
		}
		for _, succ := range block.Successors() {
			if !reached[succ] {
				stack = append(stack, succ)
			}
		}
	}
	return reached
}

// Predecessors returns, for every block number, the set of blocks whose
// terminator may transfer control to it.
func (c *Cfg) Predecessors() map[int]map[int]bool {
	preds := map[int]map[int]bool{}
	for no, block := range c.Blocks {
		for _, succ := range block.Successors() {
			if preds[succ] == nil {
				preds[succ] = map[int]bool{}
			}
			preds[succ][no] = true
		}
	}
	return preds
}
