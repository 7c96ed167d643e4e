package ntsf

import (
	"bufio"
	"io"
)

// frame is the reconstruction stack's element: a pending node and how many
// more children it is still owed (spec.md §3, "Reconstruction frame").
type frame[N any] struct {
	node      N
	remaining int
}

// Reconstruct implements C7, the single-pass stream reconstructor. It
// reads one byte at a time from r, classifying each byte as an ASCII
// label byte, an end-of-label marker, or a reference marker, and attaches
// each completed node to its pending parent via the deflate-stack rule
// (deflate, below) as soon as the node's block is fully read. bank is the
// word bank already read from the same stream by DecodeBank.
func Reconstruct[N any](r io.Reader, b Builder[N], bank []string) (N, error) {
	var zero N
	var stack []frame[N]
	var root N
	haveRoot := false
	var label []byte

	br := bufio.NewReader(r)
	for {
		x, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return zero, err
		}

		switch {
		case x < 0x80:
			label = append(label, x)

		case x&tagMask == endOfLabelTag:
			widthNC := int(x & widthMask)
			nChildren, err := readWidthField(br, widthNC)
			if err != nil {
				return zero, err
			}
			node := b.NewNode(string(label))
			label = label[:0]
			haveRoot, root, err = attach(b, &stack, node, int(nChildren), haveRoot, root)
			if err != nil {
				return zero, err
			}

		default: // x&tagMask == referenceTag
			if len(label) != 0 {
				return zero, ErrMalformed
			}
			widthAddr := int(x & widthMask)
			addr, err := readWidthField(br, widthAddr)
			if err != nil {
				return zero, err
			}
			if addr >= uint64(len(bank)) {
				return zero, ErrBadAddress
			}
			refLabel := bank[addr]

			y, err := readByte(br)
			if err != nil {
				return zero, err
			}
			if y&tagMask != endOfLabelTag {
				return zero, ErrMalformed
			}
			widthNC := int(y & widthMask)
			nChildren, err := readWidthField(br, widthNC)
			if err != nil {
				return zero, err
			}
			node := b.NewNode(refLabel)
			haveRoot, root, err = attach(b, &stack, node, int(nChildren), haveRoot, root)
			if err != nil {
				return zero, err
			}
		}
	}

	if len(label) != 0 {
		return zero, ErrTruncated
	}
	if !haveRoot {
		return zero, ErrEmpty
	}
	if len(stack) != 0 {
		return zero, ErrTruncated
	}
	return root, nil
}

// readByte reads exactly one byte from r, turning both EOF variants into
// ErrTruncated - used where the format requires a specific following byte
// to exist (the end-of-label marker after a reference marker).
func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrTruncated
		}
		return 0, err
	}
	return buf[0], nil
}

// attach implements the deflate-stack rule (spec.md §4.7). The very first
// node read has no pending parent: it becomes the root and is pushed
// unconditionally, then collapsed like any other frame so that a
// single-node tree (a leaf root) leaves the stack empty. Every subsequent
// node is attached to the current top-of-stack parent via deflate.
func attach[N any](b Builder[N], stack *[]frame[N], node N, remaining int, haveRoot bool, root N) (bool, N, error) {
	if !haveRoot {
		pushAndCollapse(stack, node, remaining)
		return true, node, nil
	}
	if err := deflate(b, stack, node, remaining); err != nil {
		return haveRoot, root, err
	}
	return haveRoot, root, nil
}

// deflate attaches newNode as a child of the current top-of-stack frame,
// decrementing and (if exhausted) popping it, then pushes newNode's own
// frame if it expects children, then collapses any now-exhausted frames
// off the top. This is steps 1-4 of spec.md §4.7 verbatim.
func deflate[N any](b Builder[N], stack *[]frame[N], newNode N, remaining int) error {
	if len(*stack) == 0 {
		// A node arrived with no pending parent and the root is already
		// complete: the stream describes more than one tree.
		return ErrMalformed
	}
	top := len(*stack) - 1
	b.AttachChild((*stack)[top].node, newNode)
	(*stack)[top].remaining--
	if (*stack)[top].remaining == 0 {
		*stack = (*stack)[:top]
	}
	if remaining > 0 {
		*stack = append(*stack, frame[N]{node: newNode, remaining: remaining})
	}
	collapse(stack)
	return nil
}

// pushAndCollapse pushes a new frame then immediately collapses it away if
// it already has zero remaining children, keeping the invariant that a
// remaining==0 frame never lingers on the stack.
func pushAndCollapse[N any](stack *[]frame[N], node N, remaining int) {
	*stack = append(*stack, frame[N]{node: node, remaining: remaining})
	collapse(stack)
}

// collapse pops frames off the top of the stack while they have no more
// children pending, per the "while" step of the deflate-stack rule.
func collapse[N any](stack *[]frame[N]) {
	for len(*stack) > 0 && (*stack)[len(*stack)-1].remaining == 0 {
		*stack = (*stack)[:len(*stack)-1]
	}
}
