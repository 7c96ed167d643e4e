package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ntsf-dev/ntsf"
	"github.com/ntsf-dev/ntsf/internal/nlog"
)

func TestTreeShape(t *testing.T) {
	root := &ntsf.SimpleNode{
		Label: "a",
		Kids: []*ntsf.SimpleNode{
			{Label: "b", Kids: []*ntsf.SimpleNode{{Label: "c"}}},
			{Label: "d"},
		},
	}
	nodes, depth := treeShape(root, 0)
	if nodes != 4 {
		t.Errorf("nodes = %d, want 4", nodes)
	}
	if depth != 2 {
		t.Errorf("depth = %d, want 2", depth)
	}
}

func TestEncodeThenDecodeRoundTripThroughFiles(t *testing.T) {
	dir := t.TempDir()
	wordlist := filepath.Join(dir, "grams.txt")
	out := filepath.Join(dir, "out.ntsf")

	content := "the quick fox\nthe quick brown fox\nthe lazy dog\n"
	if err := os.WriteFile(wordlist, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	log := nlog.New(os.Stderr, false)
	cfg := defaultConfig()
	if err := runEncode([]string{wordlist, out}, cfg, log); err != nil {
		t.Fatalf("runEncode: %v", err)
	}

	cache, err := newDecodeCache(4)
	if err != nil {
		t.Fatalf("newDecodeCache: %v", err)
	}
	root, _, err := readAndDecode(out, cache, log)
	if err != nil {
		t.Fatalf("readAndDecode: %v", err)
	}
	if root.Label != "" {
		t.Errorf("root label = %q, want empty trie root", root.Label)
	}
	if len(root.Kids) != 1 || root.Kids[0].Label != "the" {
		t.Errorf("unexpected root children: %+v", root.Kids)
	}

	// A second decode of the same bytes should hit the cache rather than
	// error, and must reproduce the same tree shape.
	root2, _, err := readAndDecode(out, cache, log)
	if err != nil {
		t.Fatalf("readAndDecode (cached): %v", err)
	}
	if len(root2.Kids) != len(root.Kids) {
		t.Errorf("cached decode shape mismatch")
	}
}
