package authz

import "crypto/subtle"

type sharedSecretGate struct {
	secret string
}

// NewSharedSecretGate gates on a single shared secret. An empty secret
// authorizes nobody, so a misconfigured deploy fails closed.
func NewSharedSecretGate(secret string) Gate {
	return &sharedSecretGate{secret: secret}
}

func (g *sharedSecretGate) Authorize(token string) bool {
	if g.secret == "" || token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(token)) == 1
}
