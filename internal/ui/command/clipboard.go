package command

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var writeClipboard = func(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}

// SetClipboardWriter swaps the clipboard backend and returns a restore func.
func SetClipboardWriter(fn func(string) error) func() {
	prev := writeClipboard
	writeClipboard = fn
	return func() { writeClipboard = prev }
}

// Copy builds a request that places text on the system clipboard.
func Copy(id, what, text string) Request {
	return Request{
		ID:    id,
		Label: "copy " + what,
		Action: func() Result {
			if text == "" {
				return Result{Err: errors.New("nothing selected to copy")}
			}
			if err := writeClipboard(text); err != nil {
				return Result{Err: fmt.Errorf("copy to clipboard: %w", err)}
			}
			return Result{Info: fmt.Sprintf("Copied %s", what)}
		},
	}
}
