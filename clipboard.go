package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	errNothingToCopy        = errors.New("nothing to copy")
	errClipboardUnsupported = errors.New("no clipboard utility available on this system")
)

// clipboardWriter is swapped in tests.
var clipboardWriter = func(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// copyToClipboard places text on the system clipboard as plain text.
func copyToClipboard(text string) error {
	if text == "" {
		return errNothingToCopy
	}
	if err := clipboardWriter(text); err != nil {
		return fmt.Errorf("error writing to clipboard: %w", err)
	}
	return nil
}
