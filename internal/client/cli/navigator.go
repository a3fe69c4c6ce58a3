package cli

import (
	"fmt"
	"io"
	"net/url"
)

// TerminalNavigator adapts the session.Navigator contract to a terminal.
// The "current URL" is the post-login redirect URL the user pasted back via
// the -r flag; "redirecting" prints the target so the user can open it in a
// browser.
type TerminalNavigator struct {
	origin   string
	fragment string
	out      io.Writer
}

func NewTerminalNavigator(origin, redirectURL string, out io.Writer) *TerminalNavigator {
	n := &TerminalNavigator{origin: origin, out: out}
	if redirectURL != "" {
		if u, err := url.Parse(redirectURL); err == nil {
			n.fragment = u.Fragment
		}
	}
	return n
}

func (n *TerminalNavigator) Origin() string   { return n.origin }
func (n *TerminalNavigator) Fragment() string { return n.fragment }

func (n *TerminalNavigator) ReplaceFragment(fragment string) {
	n.fragment = fragment
}

func (n *TerminalNavigator) Redirect(target string) {
	fmt.Fprintf(n.out, "Open this URL in your browser to sign in:\n\n  %s\n\nthen run the client again with -r '<redirected URL>'\n", target)
}
