package main

import (
	"testing"

	"github.com/ntsf-dev/ntsf"
)

func TestDecodeCacheMissThenHit(t *testing.T) {
	c, err := newDecodeCache(4)
	if err != nil {
		t.Fatalf("newDecodeCache: %v", err)
	}
	key := contentKey([]byte("some file bytes"))

	if _, ok := c.get(key); ok {
		t.Fatalf("expected a miss on an empty cache")
	}

	root := &ntsf.SimpleNode{Label: "root"}
	c.put(key, root)

	got, ok := c.get(key)
	if !ok {
		t.Fatalf("expected a hit after put")
	}
	if got != root {
		t.Fatalf("got a different node back than was put in")
	}
}

func TestContentKeyIsStableAndDistinguishes(t *testing.T) {
	a := contentKey([]byte("hello"))
	b := contentKey([]byte("hello"))
	c := contentKey([]byte("world"))
	if a != b {
		t.Errorf("same bytes produced different keys: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different bytes produced the same key")
	}
}

func TestDecodeCacheEvictsAtCapacity(t *testing.T) {
	c, err := newDecodeCache(1)
	if err != nil {
		t.Fatalf("newDecodeCache: %v", err)
	}
	k1, k2 := contentKey([]byte("one")), contentKey([]byte("two"))
	c.put(k1, &ntsf.SimpleNode{Label: "one"})
	c.put(k2, &ntsf.SimpleNode{Label: "two"})

	if _, ok := c.get(k1); ok {
		t.Fatalf("expected the size-1 cache to have evicted the first entry")
	}
	if _, ok := c.get(k2); !ok {
		t.Fatalf("expected the most recently added entry to still be present")
	}
}
