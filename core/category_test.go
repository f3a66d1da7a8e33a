package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllCategories(t *testing.T) {
	cats := AllCategories()
	assert.Equal(t, []Category{Noun, Verb, Adjective, Adverb}, cats)
	assert.Equal(t, 4, NumCategories())

	// Mutating the result must not affect the package table.
	cats[0] = Adverb
	assert.Equal(t, Noun, AllCategories()[0])
}

func TestCategory_Strings(t *testing.T) {
	tests := []struct {
		cat   Category
		key   string
		label string
	}{
		{Noun, "n", "noun"},
		{Verb, "v", "verb"},
		{Adjective, "a", "adjective"},
		{Adverb, "r", "adverb"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.cat.Key())
			assert.Equal(t, tt.label, tt.cat.String())
			got, ok := CategoryForKey(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.cat, got)
		})
	}

	assert.Equal(t, "Category(7)", Category(7).String())
	assert.Equal(t, "", Category(7).Key())
}

func TestCategoryForKey_Satellite(t *testing.T) {
	got, ok := CategoryForKey("s")
	assert.True(t, ok)
	assert.Equal(t, Adjective, got)

	_, ok = CategoryForKey("x")
	assert.False(t, ok)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		cat  Category
		role FileRole
		want string
	}{
		{Noun, IndexFile, "index.noun"},
		{Verb, DataFile, "data.verb"},
		{Adjective, IndexFile, "index.adj"},
		{Adjective, ExceptionsFile, "adj.exc"},
		{Adverb, DataFile, "data.adv"},
		{Noun, ExceptionsFile, "noun.exc"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.cat, tt.role))
		})
	}
}

func TestFileRole_String(t *testing.T) {
	assert.Equal(t, []FileRole{IndexFile, DataFile, ExceptionsFile}, AllFileRoles())
	assert.Equal(t, "index", IndexFile.String())
	assert.Equal(t, "data", DataFile.String())
	assert.Equal(t, "exceptions", ExceptionsFile.String())
	assert.Equal(t, "FileRole(5)", FileRole(5).String())
}
