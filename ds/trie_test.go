package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrieInsertAndFind(t *testing.T) {
	assert := assert.New(t)
	trie := NewTrie[string]()

	assert.True(trie.Insert([]byte("apple"), "fruit"))
	val, found := trie.Find([]byte("apple"))
	assert.True(found)
	assert.Equal("fruit", val)

	_, found = trie.Find([]byte("orange"))
	assert.False(found)

	// A prefix of an inserted key is not itself a key.
	_, found = trie.Find([]byte("app"))
	assert.False(found)

	assert.True(trie.Insert([]byte("appetizer"), "food"))
	val, found = trie.Find([]byte("appetizer"))
	assert.True(found)
	assert.Equal("food", val)

	val, found = trie.Find([]byte("apple"))
	assert.True(found)
	assert.Equal("fruit", val)

	assert.Equal(2, trie.Len())
}

func TestTrieOverwrite(t *testing.T) {
	trie := NewTrie[int]()
	assert.True(t, trie.Insert([]byte("key"), 1))
	assert.False(t, trie.Insert([]byte("key"), 2), "Overwriting an existing key should report false")
	assert.Equal(t, 1, trie.Len())

	val, found := trie.Find([]byte("key"))
	assert.True(t, found)
	assert.Equal(t, 2, val)
}

func TestTrieDelete(t *testing.T) {
	assert := assert.New(t)
	trie := NewTrie[string]()

	trie.Insert([]byte("apple"), "fruit")
	trie.Insert([]byte("appetizer"), "food")

	assert.True(trie.Delete([]byte("apple")))
	_, found := trie.Find([]byte("apple"))
	assert.False(found)

	assert.False(trie.Delete([]byte("orange")))

	val, found := trie.Find([]byte("appetizer"))
	assert.True(found, "Deleting 'apple' must not disturb 'appetizer'")
	assert.Equal("food", val)

	assert.True(trie.Delete([]byte("appetizer")))
	assert.False(trie.Delete([]byte("appetizer")))
	assert.Equal(0, trie.Len())
}

func TestTrieEmptyKey(t *testing.T) {
	trie := NewTrie[int]()
	assert.True(t, trie.Insert([]byte{}, 7))
	val, found := trie.Find([]byte{})
	assert.True(t, found)
	assert.Equal(t, 7, val)

	assert.True(t, trie.Delete([]byte{}))
	_, found = trie.Find([]byte{})
	assert.False(t, found)
}
