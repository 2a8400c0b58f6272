package meta

// Trie over key-stroke paths. A motion resolves as soon as its full path is
// entered, so inner nodes never carry values of their own unless a shorter
// motion was inserted first.
type Trie[T any] struct {
	key string

	isLeaf bool
	value  T

	children []*Trie[T]
}

func (t *Trie[T]) getChild(key string) (child *Trie[T], found bool) {
	for _, child := range t.children {
		if child.key == key {
			return child, true
		}
	}

	return nil, false
}

func (t *Trie[T]) get(path []string) (T, bool) {
	var null T

	if len(path) == 0 {
		return null, false
	}

	for _, value := range path {
		if child, ok := t.getChild(value); !ok {
			return null, false
		} else {
			t = child
		}
	}

	if t.isLeaf {
		return t.value, true
	}

	return null, false
}

// Whether path is the prefix of at least one inserted motion.
func (t *Trie[T]) containsPath(path []string) bool {
	for _, value := range path {
		if child, ok := t.getChild(value); !ok {
			return false
		} else {
			t = child
		}
	}

	return true
}

func (t *Trie[T]) Insert(path []string, value T) (changed bool) {
	changed = false

	for i, key := range path {
		isFinalValue := i == len(path)-1
		if child, ok := t.getChild(key); ok {
			t = child

			if isFinalValue && !t.isLeaf {
				// NOTE: an existing leaf value is not overwritten,
				// the first binding for a path wins
				t.isLeaf = true
				t.value = value
			}

			continue
		}

		newChild := &Trie[T]{
			key:      key,
			isLeaf:   isFinalValue,
			children: []*Trie[T]{},
		}
		if isFinalValue {
			newChild.value = value
		}

		t.children = append(t.children, newChild)
		changed = true
		t = newChild
	}

	return changed
}
