package session

// Screen is the render state derived from the session. There is no stored
// screen state; DeriveScreen recomputes it from the Session every time.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenSignedOut
	ScreenLocked
	ScreenActive
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenSignedOut:
		return "signed_out"
	case ScreenLocked:
		return "locked"
	case ScreenActive:
		return "active"
	}
	return "unknown"
}

// DeriveScreen maps a session snapshot to the screen that should be shown.
// Order matters: loading wins over everything, absence of a user wins over
// the lock flag.
func DeriveScreen(s State) Screen {
	switch {
	case s.Loading:
		return ScreenLoading
	case s.User == nil:
		return ScreenSignedOut
	case s.IsAppLocked:
		return ScreenLocked
	default:
		return ScreenActive
	}
}
