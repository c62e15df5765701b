package kagi

// TokenSource supplies the kagi_session token. The token is opaque; it is
// passed through to the transport and never inspected.
type TokenSource interface {
	// Token returns the session token, or EUNAUTHORIZED if none is configured.
	Token() (string, error)
}

// TokenRequiredMessage is the message returned when no session token is available.
const TokenRequiredMessage = "Authentication required: provide --token flag or create ~/.kagi_session_token file"
