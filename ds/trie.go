package ds

type trieNode[T any] struct {
	children map[byte]*trieNode[T]
	value    T
	terminal bool
}

// Trie maps byte keys to values along shared prefixes. The empty key is a
// valid key (it lives at the root).
type Trie[T any] struct {
	root *trieNode[T]
	size int
}

func NewTrie[T any]() *Trie[T] {
	return &Trie[T]{root: &trieNode[T]{}}
}

func (t *Trie[T]) Len() int {
	return t.size
}

// Insert stores val under key and reports whether the key was absent. An
// existing key has its value overwritten.
func (t *Trie[T]) Insert(key []byte, val T) bool {
	n := t.root
	for _, c := range key {
		if n.children == nil {
			n.children = make(map[byte]*trieNode[T])
		}
		child, ok := n.children[c]
		if !ok {
			child = &trieNode[T]{}
			n.children[c] = child
		}
		n = child
	}

	if n.terminal {
		n.value = val
		return false
	}
	n.value = val
	n.terminal = true
	t.size++
	return true
}

func (t *Trie[T]) Find(key []byte) (T, bool) {
	n := t.root
	for _, c := range key {
		child, ok := n.children[c]
		if !ok {
			var zero T
			return zero, false
		}
		n = child
	}

	if !n.terminal {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Delete removes key, pruning nodes left with no terminal beneath them.
func (t *Trie[T]) Delete(key []byte) bool {
	path := make([]*trieNode[T], 0, len(key)+1)
	n := t.root
	path = append(path, n)
	for _, c := range key {
		child, ok := n.children[c]
		if !ok {
			return false
		}
		n = child
		path = append(path, n)
	}
	if !n.terminal {
		return false
	}

	var zero T
	n.terminal = false
	n.value = zero
	t.size--

	for i := len(path) - 1; i > 0; i-- {
		node := path[i]
		if node.terminal || len(node.children) > 0 {
			break
		}
		delete(path[i-1].children, key[i-1])
	}
	return true
}
