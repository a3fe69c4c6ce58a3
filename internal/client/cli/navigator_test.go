package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalNavigator_FragmentFromRedirectURL(t *testing.T) {
	n := NewTerminalNavigator("http://localhost:8081", "https://app.example.com/#session_id=abc123&x=1", &bytes.Buffer{})

	assert.Equal(t, "session_id=abc123&x=1", n.Fragment())
	assert.Equal(t, "http://localhost:8081", n.Origin())
}

func TestTerminalNavigator_NoRedirectURL(t *testing.T) {
	n := NewTerminalNavigator("http://localhost:8081", "", &bytes.Buffer{})
	assert.Empty(t, n.Fragment())
}

func TestTerminalNavigator_ReplaceFragment(t *testing.T) {
	n := NewTerminalNavigator("o", "https://x/#session_id=abc", &bytes.Buffer{})

	n.ReplaceFragment("")
	assert.Empty(t, n.Fragment())
}

func TestTerminalNavigator_RedirectPrintsURL(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNavigator("o", "", &buf)

	n.Redirect("https://auth.example.com/login?redirect=o")

	assert.Contains(t, buf.String(), "https://auth.example.com/login?redirect=o")
}
