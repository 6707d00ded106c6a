package auth

import "errors"

var ErrInvalidCredentials = errors.New("invalid client credentials")

// CredentialValidator checks a client credential pair before a token is
// issued. Token issuance only depends on this interface, so a real
// credential-store lookup can replace the stub without touching it.
type CredentialValidator interface {
	Validate(clientID, secret string) error
}

// StaticValidator accepts any pair where both parts are non-empty. This is
// a placeholder policy; deployments must swap in a validator backed by a
// credential store.
type StaticValidator struct{}

func (StaticValidator) Validate(clientID, secret string) error {
	if clientID == "" || secret == "" {
		return ErrInvalidCredentials
	}
	return nil
}
