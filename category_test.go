package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryForDefaults(t *testing.T) {
	t.Parallel()

	table := newCategoryTable()

	tests := map[string]Category{
		"swift": CategoryCode,
		"go":    CategoryCode,
		"png":   CategoryImage,
		"heic":  CategoryImage,
		"mov":   CategoryVideo,
		"pdf":   CategoryDocument,
		"md":    CategoryText,
		"html":  CategoryWeb,
		"":      CategoryOther,
		"xyz":   CategoryOther,
	}
	for ext, want := range tests {
		assert.Equal(t, want, table.CategoryFor(ext), ext)
	}
}

func TestCategoryForNilTable(t *testing.T) {
	t.Parallel()

	var table *CategoryTable
	assert.Equal(t, CategoryOther, table.CategoryFor("go"))
}

func TestMergeCategoryYAML(t *testing.T) {
	t.Parallel()

	table := newCategoryTable()
	err := table.mergeCategoryYAML([]byte("code: [nim, .V]\ntext: [org, md]\nweb: [js]\n"))
	require.NoError(t, err)

	assert.Equal(t, CategoryCode, table.CategoryFor("nim"))
	assert.Equal(t, CategoryCode, table.CategoryFor("v"))
	assert.Equal(t, CategoryText, table.CategoryFor("org"))
	assert.Equal(t, CategoryWeb, table.CategoryFor("js"))
}

func TestMergeCategoryYAMLRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	table := newCategoryTable()
	err := table.mergeCategoryYAML([]byte("code: [nim]\nmusic: [mp3]\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "music"`)
	assert.Equal(t, CategoryOther, table.CategoryFor("nim"), "nothing is merged on error")
}

func TestMergeCategoryYAMLInvalid(t *testing.T) {
	t.Parallel()

	err := newCategoryTable().mergeCategoryYAML([]byte("code: [unterminated"))
	assert.Error(t, err)
}

func TestCategoryIcons(t *testing.T) {
	t.Parallel()

	seen := map[string]Category{}
	for cat := range knownCategories {
		icon := cat.Icon()
		assert.NotEmpty(t, icon)
		if other, dup := seen[icon]; dup {
			t.Errorf("categories %s and %s share icon %q", cat, other, icon)
		}
		seen[icon] = cat
	}
}

func TestMergeCategoryYAMLRejectsExtensionInTwoCategories(t *testing.T) {
	t.Parallel()

	table := newCategoryTable()
	err := table.mergeCategoryYAML([]byte("code: [nim, tpl]\nweb: [.TPL]\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `extension "tpl" listed under both "code" and "web"`)
	assert.Equal(t, CategoryOther, table.CategoryFor("nim"))
}

func TestLoadCategoryTableFirstFileWins(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	second := t.TempDir()
	broken := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(broken, "categories.yml"), []byte("music: [mp3]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(first, "categories.yml"), []byte("code: [nim]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "categories.yml"), []byte("text: [nim, org]"), 0o644))

	table := loadCategoryTableFrom([]string{t.TempDir(), broken, first, second}, discardLogger())

	assert.Equal(t, CategoryCode, table.CategoryFor("nim"))
	assert.Equal(t, CategoryOther, table.CategoryFor("org"))
	assert.Equal(t, CategoryOther, table.CategoryFor("mp3"))
}
