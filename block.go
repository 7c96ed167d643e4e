package ntsf

import "io"

// maxLabelLen is the hard cap on a label's ASCII byte length, fixed by the
// data model (spec.md §3) and by the u8 length field used for bank
// entries. spec.md §9 notes the filter text says ">256" while the wire
// format's u8 length field truly caps at 255; this implementation enforces
// 255 everywhere, as §9 directs.
const maxLabelLen = 255

// Tag bits for the first byte of a node block (spec.md §4.5):
//
//	00 or 01  ascii label byte continues
//	10        end-of-label marker, low 6 bits = width of nChildren
//	11        bank-reference marker, low 6 bits = width of address
const (
	endOfLabelTag byte = 0x80
	referenceTag  byte = 0xC0
	tagMask       byte = 0xC0
	widthMask     byte = 0x3F
	maxWidth            = 63
)

// writeEndOfLabel writes the end-of-label marker and nChildren field that
// terminate every node block, standard or reference.
func writeEndOfLabel(w io.Writer, nChildren int) error {
	width := byteWidth(uint64(nChildren))
	if width > maxWidth {
		return ErrOverflowChildren
	}
	if _, err := w.Write([]byte{endOfLabelTag | byte(width)}); err != nil {
		return err
	}
	if width == 0 {
		return nil
	}
	buf := make([]byte, width)
	putUintBE(buf, width, uint64(nChildren))
	_, err := w.Write(buf)
	return err
}

// writeReferenceMarker writes the reference marker and address field that
// open a reference block.
func writeReferenceMarker(w io.Writer, addr int) error {
	width := byteWidth(uint64(addr))
	if _, err := w.Write([]byte{referenceTag | byte(width)}); err != nil {
		return err
	}
	if width == 0 {
		return nil
	}
	buf := make([]byte, width)
	putUintBE(buf, width, uint64(addr))
	_, err := w.Write(buf)
	return err
}

// writeASCIILabel writes a label's raw bytes with no framing, validating
// that every byte is 7-bit ASCII per spec.md §6.2.
func writeASCIILabel(w io.Writer, label string) error {
	for i := 0; i < len(label); i++ {
		if label[i] >= 0x80 {
			return ErrNonAscii
		}
	}
	_, err := io.WriteString(w, label)
	return err
}

// EncodeNodeBlock writes one node block to w: a reference block if ref is
// true, otherwise a standard (inline) block. nChildren is the node's
// child count. addr is the bank address to use when ref is true.
func EncodeNodeBlock(w io.Writer, label string, nChildren int, addr int, ref bool) error {
	if len(label) > maxLabelLen {
		return ErrLabelTooLong
	}
	if ref {
		if err := writeReferenceMarker(w, addr); err != nil {
			return err
		}
	} else {
		if err := writeASCIILabel(w, label); err != nil {
			return err
		}
	}
	return writeEndOfLabel(w, nChildren)
}

// readWidthField reads a width-byte-wide big-endian unsigned integer used
// by both the end-of-label and reference markers. width==0 means the
// value is 0 and occupies no bytes.
func readWidthField(r io.Reader, width int) (uint64, error) {
	if width == 0 {
		return 0, nil
	}
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrTruncated
		}
		return 0, err
	}
	return getUintBE(buf), nil
}
