package hash

// Order preserving hash with string keys and arbitrary values. Used by the
// Struct type to store its named elements.

type (
	stringEntry struct {
		key   string
		value interface{}
	}

	StringHash struct {
		entries []*stringEntry
		index   map[string]int
	}
)

// NewStringHash returns an empty *StringHash initialized with given capacity
func NewStringHash(capacity int) *StringHash {
	return &StringHash{make([]*stringEntry, 0, capacity), make(map[string]int, capacity)}
}

// AllPair calls the given function once for each key/value pair in this
// hash. Returns true if all invocations returned true. The method returns
// true when the hash is empty.
func (h *StringHash) AllPair(f func(key string, value interface{}) bool) bool {
	for _, e := range h.entries {
		if !f(e.key, e.value) {
			return false
		}
	}
	return true
}

// EachPair calls the given consumer function once for each key/value pair
// in insertion order
func (h *StringHash) EachPair(consumer func(key string, value interface{})) {
	for _, e := range h.entries {
		consumer(e.key, e.value)
	}
}

// Get returns the value for the given key together with a boolean
// indicating if the key was present
func (h *StringHash) Get(key string) (interface{}, bool) {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value, true
	}
	return nil, false
}

// Includes returns true if the given key is present
func (h *StringHash) Includes(key string) bool {
	_, ok := h.index[key]
	return ok
}

func (h *StringHash) Len() int {
	return len(h.entries)
}

// Put adds or replaces the entry for the given key and returns the old
// value, or nil when no entry was present
func (h *StringHash) Put(key string, value interface{}) interface{} {
	if p, ok := h.index[key]; ok {
		old := h.entries[p].value
		h.entries[p].value = value
		return old
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, &stringEntry{key, value})
	return nil
}
