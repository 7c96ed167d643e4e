package ntsf

import (
	"bytes"
	"testing"
)

// TestNodeBlockScenarios checks the concrete block encodings from spec.md
// §8 byte-for-byte.
func TestNodeBlockScenarios(t *testing.T) {
	cases := []struct {
		name      string
		label     string
		nChildren int
		addr      int
		ref       bool
		want      []byte
	}{
		{
			name:      "standard block",
			label:     "root",
			nChildren: 2,
			want:      []byte{0x72, 0x6F, 0x6F, 0x74, 0x81, 0x02},
		},
		{
			name:      "reference block small address",
			nChildren: 2,
			addr:      8,
			ref:       true,
			want:      []byte{0xC1, 0x08, 0x81, 0x02},
		},
		{
			name:      "reference block big address",
			nChildren: 2,
			addr:      13000,
			ref:       true,
			want:      []byte{0xC2, 0x32, 0xC8, 0x81, 0x02},
		},
		{
			name:      "reference block address zero",
			nChildren: 2,
			addr:      0,
			ref:       true,
			want:      []byte{0xC0, 0x81, 0x02},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeNodeBlock(&buf, c.label, c.nChildren, c.addr, c.ref); err != nil {
				t.Fatalf("EncodeNodeBlock: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), c.want) {
				t.Errorf("got % X, want % X", buf.Bytes(), c.want)
			}
		})
	}
}

func TestEncodeNodeBlockRejectsNonAscii(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeNodeBlock(&buf, "héllo", 0, 0, false)
	if err != ErrNonAscii {
		t.Fatalf("got %v, want ErrNonAscii", err)
	}
}

func TestEncodeNodeBlockRejectsTooLongLabel(t *testing.T) {
	var buf bytes.Buffer
	label := make([]byte, 256)
	for i := range label {
		label[i] = 'a'
	}
	err := EncodeNodeBlock(&buf, string(label), 0, 0, false)
	if err != ErrLabelTooLong {
		t.Fatalf("got %v, want ErrLabelTooLong", err)
	}
}

func TestWriteEndOfLabelWidths(t *testing.T) {
	cases := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x80}},
		{2, []byte{0x81, 0x02}},
		{256, []byte{0x82, 0x01, 0x00}},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := writeEndOfLabel(&buf, c.n); err != nil {
			t.Fatalf("writeEndOfLabel(%d): %v", c.n, err)
		}
		if !bytes.Equal(buf.Bytes(), c.want) {
			t.Errorf("writeEndOfLabel(%d) = % X, want % X", c.n, buf.Bytes(), c.want)
		}
	}
}
