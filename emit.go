package ntsf

import "io"

// Emit performs the depth-first traversal and per-node block encoding of
// C6. It uses an explicit stack rather than host-language recursion, per
// spec.md §9, so tree depth is not limited by the host call stack. The
// stack holds the not-yet-emitted siblings of every node on the current
// path, so its size grows with both depth and fan-out.
//
// Children are pushed in reverse order so that the first child popped -
// and therefore the first one emitted - is the tree's first child,
// matching the attachment order Reconstruct rebuilds (spec.md §4.6).
func Emit[N any](w io.Writer, tree Tree[N], root N, addrMap map[string]int, maxLabelLen int) error {
	stack := []N{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		label := tree.Label(n)
		if len(label) > maxLabelLen {
			return ErrLabelTooLong
		}
		nChildren := tree.NumChildren(n)
		if addr, ok := addrMap[label]; ok {
			if err := EncodeNodeBlock(w, label, nChildren, addr, true); err != nil {
				return err
			}
		} else {
			if err := EncodeNodeBlock(w, label, nChildren, 0, false); err != nil {
				return err
			}
		}

		children := tree.Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}
