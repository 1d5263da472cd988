package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessContainsPrefixAndMessage(t *testing.T) {
	result := Success("done")
	assert.Contains(t, result, "✓")
	assert.Contains(t, result, "done")
}

func TestWarnContainsPrefixAndMessage(t *testing.T) {
	result := Warn("careful")
	assert.Contains(t, result, "⚠")
	assert.Contains(t, result, "careful")
}

func TestInfoDifferentFromHint(t *testing.T) {
	assert.NotEqual(t, Info("message"), Hint("message"))
}

func TestMethodKeepsText(t *testing.T) {
	assert.Contains(t, Method("GET"), "GET")
	assert.Contains(t, Method("POST"), "POST")
}

func TestBannerContainsVersion(t *testing.T) {
	result := Banner("1.2.3")
	assert.Contains(t, result, "w3play")
	assert.Contains(t, result, "v1.2.3")
}

func TestAllFormattersReturnNonEmpty(t *testing.T) {
	formatters := map[string]func(string) string{
		"Success": Success,
		"Warn":    Warn,
		"Info":    Info,
		"Hint":    Hint,
		"Meta":    Meta,
		"Path":    Path,
	}
	for name, fn := range formatters {
		t.Run(name, func(t *testing.T) {
			result := fn("test")
			assert.NotEmpty(t, result, "%s should return non-empty string", name)
			assert.Contains(t, result, "test", "%s should contain the input message", name)
		})
	}
}
