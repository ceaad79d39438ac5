package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// combinedSeparator goes between the contents of two files: one blank line.
const combinedSeparator = "\n\n"

var errNotText = errors.New("content is not valid UTF-8 text")

// ReadOptions controls how selected files are turned into text.
type ReadOptions struct {
	HTMLToMarkdown bool // Convert .html/.htm files to Markdown before joining.
}

// TextReader reads selected files as text. Failures become skipped
// outcomes, never errors.
type TextReader struct {
	opts   ReadOptions
	logger *log.Logger
}

// NewTextReader returns a TextReader using opts.
func NewTextReader(opts ReadOptions, logger *log.Logger) *TextReader {
	return &TextReader{opts: opts, logger: logger}
}

// Read loads the full contents of entry.
func (r *TextReader) Read(entry FileEntry) ReadOutcome {
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return r.skip(entry, err)
	}
	if !utf8.Valid(data) {
		return r.skip(entry, errNotText)
	}

	content := string(data)
	if r.opts.HTMLToMarkdown && isHTMLExtension(entry.Ext) {
		md, err := htmlToMarkdown(content)
		if err != nil {
			// Raw HTML is still text; keep it.
			r.logger.Warn("could not convert HTML to Markdown", "path", entry.Path, "err", err)
		} else {
			content = md
		}
	}
	return ReadOutcome{Entry: entry, Content: content, Size: int64(len(data))}
}

func (r *TextReader) skip(entry FileEntry, reason error) ReadOutcome {
	r.logger.Debug("skipping file", "path", entry.Path, "reason", reason)
	return ReadOutcome{Entry: entry, Skipped: true, Reason: reason}
}

// ReadAll reads every entry in order.
func (r *TextReader) ReadAll(entries []FileEntry) []ReadOutcome {
	outcomes := make([]ReadOutcome, 0, len(entries))
	for _, entry := range entries {
		outcomes = append(outcomes, r.Read(entry))
	}
	return outcomes
}

// Combine reads entries and joins the readable contents.
func (r *TextReader) Combine(entries []FileEntry) string {
	return joinOutcomes(r.ReadAll(entries))
}

// joinOutcomes joins the contents of the successful outcomes with a blank
// line. Skipped outcomes leave no trace.
func joinOutcomes(outcomes []ReadOutcome) string {
	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Skipped {
			continue
		}
		parts = append(parts, o.Content)
	}
	return strings.Join(parts, combinedSeparator)
}

// orderedSelection returns the entries of files that are selected, keeping
// the order of files.
func orderedSelection(files []FileEntry, sel Selection) []FileEntry {
	if len(sel) == 0 {
		return nil
	}
	out := make([]FileEntry, 0, len(sel))
	for _, entry := range files {
		if sel.Has(entry.Path) {
			out = append(out, entry)
		}
	}
	return out
}

// summarize computes the figures shown next to the combined text.
func summarize(outcomes []ReadOutcome, combined string, tk Tokenizer) Summary {
	var s Summary
	for _, o := range outcomes {
		if o.Skipped {
			s.Skipped++
			continue
		}
		s.TotalFiles++
		s.TotalSize += o.Size
	}
	s.TotalChars = utf8.RuneCountInString(combined)
	if tk != nil && combined != "" {
		s.TotalTokens = tk.CountTokens(combined)
	}
	return s
}

// String renders the summary the way the command line prints it.
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("--- Summary ---\n")
	fmt.Fprintf(&b, "Files combined: %d\n", s.TotalFiles)
	if s.Skipped > 0 {
		fmt.Fprintf(&b, "Files skipped: %d\n", s.Skipped)
	}
	fmt.Fprintf(&b, "Total size: %d bytes\n", s.TotalSize)
	fmt.Fprintf(&b, "Characters: %d\n", s.TotalChars)
	if s.TotalTokens > 0 {
		fmt.Fprintf(&b, "Tokens: %d\n", s.TotalTokens)
	}
	return b.String()
}
