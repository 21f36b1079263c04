package domain

import "time"

// LoginRequest identifies the account being operated, the app it is operated through,
// and the wallet that owns it.
type LoginRequest struct {
	Account EvmAddress
	App     EvmAddress
	Owner   EvmAddress
}

type Session struct {
	AccessToken     string
	RefreshToken    string
	IDToken         string
	Account         Account
	AuthenticatedAt time.Time
}

func (s Session) Valid() bool {
	return s.AccessToken != ""
}
