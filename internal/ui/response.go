package ui

import (
	"strings"

	"github.com/atotto/clipboard"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	return clipboardWrite(text)
}

// ClipboardAvailable reports whether a clipboard backend was found.
func ClipboardAvailable() bool { return !clipboard.Unsupported }

// ResponseBlock frames rendered JSON for the terminal. Error-shaped
// responses get the error color.
func ResponseBlock(title, rendered string) string {
	style := StyleAddress
	if isErrorShaped(rendered) {
		style = StyleError
	}
	body := StyleTitle.Render(title) + "\n" + style.Render(rendered)
	return StyleBorder.Render(body)
}

func isErrorShaped(rendered string) bool {
	return strings.HasPrefix(rendered, "{\n  \"error\":")
}
