package ntsf

import "errors"

// Sentinel errors forming the codec's closed failure taxonomy. Every
// failure raised by the bank and node-block codecs (C4-C7) is one of these,
// optionally wrapped with fmt.Errorf("...: %w", ...) for context. I/O
// failures from the underlying stream are propagated as-is and are not
// given a distinct sentinel here; callers can still distinguish them from
// these with errors.Is against io.EOF/io.ErrUnexpectedEOF or their own
// stream errors.
var (
	// ErrTruncated means the stream ended mid-block, mid-bank-entry, or
	// left a non-empty reconstruction frame stack at EOF.
	ErrTruncated = errors.New("ntsf: truncated stream")

	// ErrMalformed means a reference marker was not followed by an
	// end-of-label marker, label bytes appeared where a marker was
	// required, or a node block arrived with no pending parent to attach
	// to.
	ErrMalformed = errors.New("ntsf: malformed block")

	// ErrBadAddress means a bank address fell outside 0..len(bank).
	ErrBadAddress = errors.New("ntsf: bank address out of range")

	// ErrNonAscii means a label byte had its high bit set where an ASCII
	// label byte was required.
	ErrNonAscii = errors.New("ntsf: non-ascii label byte")

	// ErrOverflowChildren means a child count needs a width field wider
	// than 6 bits (63 bytes) can express.
	ErrOverflowChildren = errors.New("ntsf: child count overflows width field")

	// ErrLabelTooLong means a label exceeds the 255-byte maximum fixed by
	// the data model (spec.md §3, §9).
	ErrLabelTooLong = errors.New("ntsf: label exceeds 255 bytes")

	// ErrEmpty means the stream contained no node blocks after the bank.
	ErrEmpty = errors.New("ntsf: stream has no node blocks")
)
