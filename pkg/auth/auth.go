// Package auth loads the browser session token pair used to authenticate
// against the Slack Web API.
package auth

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables carrying the session tokens.
const (
	EnvXOXC = "SLACK_XOXC_TOKEN"
	EnvXOXD = "SLACK_XOXD_TOKEN"
)

// ErrMissingCredentials means neither the environment nor a .env file
// provided both tokens. It is fatal before any network activity.
var ErrMissingCredentials = errors.New("slack tokens not found: set " + EnvXOXC + " and " + EnvXOXD + " in the environment or a .env file")

// Credentials is the xoxc bearer token plus the xoxd session cookie.
// Both come from an authenticated browser session.
type Credentials struct {
	XOXC string
	XOXD string
}

// Load reads the tokens from the environment first, then fills any gap
// from a .env file (the given paths, or ./.env when none are given).
// Values already set in the environment win.
func Load(envFiles ...string) (*Credentials, error) {
	xoxc := os.Getenv(EnvXOXC)
	xoxd := os.Getenv(EnvXOXD)

	if xoxc == "" || xoxd == "" {
		if vals, err := godotenv.Read(envFiles...); err == nil {
			if xoxc == "" {
				xoxc = vals[EnvXOXC]
			}
			if xoxd == "" {
				xoxd = vals[EnvXOXD]
			}
		}
	}

	if xoxc == "" || xoxd == "" {
		return nil, ErrMissingCredentials
	}
	return &Credentials{XOXC: xoxc, XOXD: xoxd}, nil
}
