package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Category groups extensions for display.
type Category string

const (
	CategoryCode     Category = "code"
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryDocument Category = "document"
	CategoryText     Category = "text"
	CategoryWeb      Category = "web"
	CategoryOther    Category = "other"
)

// knownCategories is the closed set a category file may name.
var knownCategories = map[Category]bool{
	CategoryCode:     true,
	CategoryImage:    true,
	CategoryVideo:    true,
	CategoryDocument: true,
	CategoryText:     true,
	CategoryWeb:      true,
	CategoryOther:    true,
}

// Icon returns the glyph drawn next to a file of this category.
func (c Category) Icon() string {
	switch c {
	case CategoryCode:
		return "λ"
	case CategoryImage:
		return "▣"
	case CategoryVideo:
		return "▶"
	case CategoryDocument:
		return "▤"
	case CategoryText:
		return "≡"
	case CategoryWeb:
		return "◍"
	default:
		return "·"
	}
}

var defaultCategories = map[Category][]string{
	CategoryCode: {
		"swift", "go", "rs", "py", "rb", "java", "kt", "c", "h", "cc", "cpp", "hpp",
		"cs", "m", "mm", "ts", "tsx", "jsx", "sh", "bash", "zsh", "lua", "php", "scala",
		"sql", "zig", "ex", "exs", "hs", "clj", "dart",
	},
	CategoryImage:    {"jpg", "jpeg", "png", "gif", "heic", "webp", "svg", "bmp", "tiff", "ico"},
	CategoryVideo:    {"mp4", "mov", "avi", "mkv", "webm"},
	CategoryDocument: {"pdf", "doc", "docx", "rtf", "odt"},
	CategoryText:     {"md", "txt", "rst", "log", "csv"},
	CategoryWeb:      {"html", "htm", "css", "js", "scss", "vue", "svelte"},
}

// CategoryTable maps lowercased extensions to categories.
type CategoryTable struct {
	byExt map[string]Category
}

// newCategoryTable builds the built-in table.
func newCategoryTable() *CategoryTable {
	t := &CategoryTable{byExt: make(map[string]Category)}
	for cat, exts := range defaultCategories {
		t.add(cat, exts)
	}
	return t
}

func (t *CategoryTable) add(cat Category, exts []string) {
	for _, ext := range exts {
		t.byExt[normalizeExtension(ext)] = cat
	}
}

// CategoryFor returns the category of ext, or CategoryOther.
func (t *CategoryTable) CategoryFor(ext string) Category {
	if t == nil {
		return CategoryOther
	}
	if cat, ok := t.byExt[ext]; ok {
		return cat
	}
	return CategoryOther
}

// categoryFile is the shape of categories.yml:
//
//	code: [nim, v]
//	text: [org]
type categoryFile map[Category][]string

// mergeCategoryYAML adds the extensions listed in data to the table. Later
// entries override built-in ones. An extension may be listed under one
// category only.
func (t *CategoryTable) mergeCategoryYAML(data []byte) error {
	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("error parsing category file: %w", err)
	}
	owner := make(map[string]Category)
	for cat, exts := range file {
		if !knownCategories[cat] {
			return fmt.Errorf("unknown category %q", cat)
		}
		for _, ext := range exts {
			ext = normalizeExtension(ext)
			if prev, dup := owner[ext]; dup && prev != cat {
				return fmt.Errorf("extension %q listed under both %q and %q", extensionLabel(ext), min(prev, cat), max(prev, cat))
			}
			owner[ext] = cat
		}
	}
	for ext, cat := range owner {
		t.byExt[ext] = cat
	}
	return nil
}

// loadCategoryTable returns the built-in table extended with the first
// categories.yml found in the config locations.
func loadCategoryTable(logger *log.Logger) *CategoryTable {
	return loadCategoryTableFrom(configDirs(), logger)
}

// loadCategoryTableFrom searches dirs in order and merges the first valid
// categories.yml.
func loadCategoryTableFrom(dirs []string, logger *log.Logger) *CategoryTable {
	table := newCategoryTable()
	for _, dir := range dirs {
		path := filepath.Join(dir, "categories.yml")
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := table.mergeCategoryYAML(data); err != nil {
			logger.Warn("ignoring category file", "path", path, "err", err)
			continue
		}
		logger.Debug("loaded category file", "path", path)
		break
	}
	return table
}
