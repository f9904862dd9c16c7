package hash

import (
	"fmt"
	"testing"
)

func TestStringHashOrder(t *testing.T) {
	h := NewStringHash(3)
	h.Put(`c`, 1)
	h.Put(`a`, 2)
	h.Put(`b`, 3)
	keys := make([]string, 0, h.Len())
	h.EachPair(func(k string, v interface{}) {
		keys = append(keys, k)
	})
	if fmt.Sprintf(`%v`, keys) != `[c a b]` {
		t.Errorf(`insertion order not preserved, got %v`, keys)
	}
}

func TestStringHashPut(t *testing.T) {
	h := NewStringHash(0)
	if old := h.Put(`a`, 1); old != nil {
		t.Errorf(`expected nil for a new key, got %v`, old)
	}
	if old := h.Put(`a`, 2); old != 1 {
		t.Errorf(`expected the replaced value, got %v`, old)
	}
	if h.Len() != 1 {
		t.Errorf(`replacement must not grow the hash, len is %d`, h.Len())
	}
	v, ok := h.Get(`a`)
	if !ok || v != 2 {
		t.Errorf(`expected 2, got %v`, v)
	}
	if _, ok := h.Get(`b`); ok {
		t.Error(`missing key reported as present`)
	}
}

func TestStringHashAllPair(t *testing.T) {
	h := NewStringHash(2)
	h.Put(`a`, 1)
	h.Put(`b`, 2)
	if !h.AllPair(func(k string, v interface{}) bool { return v.(int) > 0 }) {
		t.Error(`AllPair is false for an all true predicate`)
	}
	if h.AllPair(func(k string, v interface{}) bool { return v.(int) > 1 }) {
		t.Error(`AllPair is true although the predicate fails for one pair`)
	}
	if !NewStringHash(0).AllPair(func(k string, v interface{}) bool { return false }) {
		t.Error(`AllPair is false for an empty hash`)
	}
}
