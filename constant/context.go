package constant

type contextKey string

// UsernameKey holds the identity-provider username of the authenticated caller.
const UsernameKey contextKey = "username"
