package common

// SessionCookieName is the cookie that carries the session token between the
// client and the backend. The same value is accepted as a Bearer token in the
// Authorization header for non-browser clients.
const SessionCookieName = "session_token"
