package ntsf

import "io"

// encodeOptions holds Encode's functional-option state.
type encodeOptions struct {
	disableBank bool
	maxLabelLen int
}

// EncodeOption configures a single Encode call.
type EncodeOption func(*encodeOptions)

// WithoutBank disables word-bank construction entirely: every node is
// written as a standard (inline) block regardless of how often its label
// repeats. It exists to let callers (and this package's own benchmarks)
// measure the bank's effect on output size, and is otherwise
// spec-compliant output - just a different, usually worse, point on the
// size trade-off the cost model in spec.md §4.3 navigates.
func WithoutBank() EncodeOption {
	return func(o *encodeOptions) { o.disableBank = true }
}

// WithMaxLabelLen lowers the per-label length cap below the wire format's
// hard 255-byte ceiling (maxLabelLen). Values outside [1, 255] are clamped
// to 255, since the wire format cannot express a looser cap. Callers use
// this to enforce a project-specific policy (e.g. a config file's
// strictLabelLength flag) without the codec itself depending on a config
// format.
func WithMaxLabelLen(n int) EncodeOption {
	return func(o *encodeOptions) { o.maxLabelLen = n }
}

// Encode writes tree, rooted at root, to w in NTSF wire form: a word-bank
// preamble (C3, C4) followed by a pre-order stream of node blocks (C5, C6).
func Encode[N any](w io.Writer, tree Tree[N], root N, opts ...EncodeOption) error {
	cfg := encodeOptions{maxLabelLen: maxLabelLen}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxLabelLen <= 0 || cfg.maxLabelLen > maxLabelLen {
		cfg.maxLabelLen = maxLabelLen
	}

	var bank []string
	addrMap := map[string]int{}
	if !cfg.disableBank {
		counts := AnalyzeRepeats(tree, root)
		built, err := BuildBank(counts)
		if err != nil {
			return err
		}
		bank = built
		for i, label := range bank {
			addrMap[label] = i
		}
	}

	if err := EncodeBank(w, bank); err != nil {
		return err
	}
	return Emit(w, tree, root, addrMap, cfg.maxLabelLen)
}

// Decode reads an NTSF stream from r and reconstructs its tree using b,
// returning the root node. Decode makes a single pass over r: the bank
// preamble is consumed first, then the tree body is reconstructed by C7.
func Decode[N any](r io.Reader, b Builder[N]) (N, error) {
	var zero N
	bank, err := DecodeBank(r)
	if err != nil {
		return zero, err
	}
	root, err := Reconstruct(r, b, bank)
	if err != nil {
		return zero, err
	}
	return root, nil
}
