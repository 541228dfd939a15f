package models

import "time"

// Identity is a registered account. Created on sign-up, never mutated or
// deleted. The password is stored and compared in plaintext: security is
// explicitly out of scope for this storefront.
type Identity struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Session is the identity currently signed in, or nil for guest browsing.
// At most one session is active at a time.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthEvent is one entry of the bounded sign-in/sign-up/sign-out audit log.
type AuthEvent struct {
	Type  string    `json:"type"`
	Email string    `json:"email"`
	Time  time.Time `json:"time"`
}
