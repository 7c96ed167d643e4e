package ntsf

import (
	"io"
	"sort"
)

// BuildBank turns the repeat analyzer's output into the final ordered word
// bank (spec.md §4.3): labels sorted ascending by length, then filtered by
// the cost model, keeping only entries whose per-use saving is strictly
// positive.
//
// The filter is applied with a single forward pass rather than the
// iterative remove-and-reevaluate process spec.md describes: because
// bytewidth(i) is non-decreasing in i, a label's prospective address is
// exactly the number of labels already accepted ahead of it, and rejecting
// a label never changes any already-accepted label's address. A single
// greedy pass therefore produces the same retained set and addresses as
// the iterative description, and is the form spec.md §9 recommends
// documenting explicitly.
func BuildBank(counts []LabelCount) ([]string, error) {
	sorted := make([]LabelCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Label) < len(sorted[j].Label)
	})

	bank := make([]string, 0, len(sorted))
	for _, lc := range sorted {
		if len(lc.Label) > maxLabelLen {
			return nil, ErrLabelTooLong
		}
		i := len(bank)
		// cost model: a reference block costs 1+bytewidth(addr)+1+bytewidth(n);
		// inline costs len(label)+1+bytewidth(n), so each use of a reference
		// saves len(label)-bytewidth(addr)-1 bytes. The filter
		// bytewidth(addr)+2 < len(label) keeps a label only when that saving
		// is at least 2 bytes per use (spec.md §4.3).
		if byteWidth(uint64(i))+2 < len(lc.Label) {
			bank = append(bank, lc.Label)
		}
	}
	return bank, nil
}

// EncodeBank writes the word bank's wire form (spec.md §4.4): a sequence
// of [len:u8][ascii bytes] entries terminated by a single 0x00 byte.
func EncodeBank(w io.Writer, bank []string) error {
	for _, entry := range bank {
		if len(entry) == 0 || len(entry) > 255 {
			return ErrLabelTooLong
		}
		for i := 0; i < len(entry); i++ {
			if entry[i] >= 0x80 {
				return ErrNonAscii
			}
		}
		if _, err := w.Write([]byte{byte(len(entry))}); err != nil {
			return err
		}
		if _, err := io.WriteString(w, entry); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{0x00})
	return err
}

// DecodeBank reads the word bank segment from r, stopping at and
// consuming the 0x00 terminator. It reads with plain byte-count reads
// rather than a buffered reader so that r is left positioned exactly at
// the first byte of the tree body for a subsequent streaming pass.
func DecodeBank(r io.Reader) ([]string, error) {
	var bank []string
	var lenBuf [1]byte
	for {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrTruncated
			}
			return nil, err
		}
		l := lenBuf[0]
		if l == 0 {
			return bank, nil
		}
		entry := make([]byte, l)
		if _, err := io.ReadFull(r, entry); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrTruncated
			}
			return nil, err
		}
		for _, c := range entry {
			if c >= 0x80 {
				return nil, ErrNonAscii
			}
		}
		bank = append(bank, string(entry))
	}
}
