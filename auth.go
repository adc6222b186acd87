package kuadro

import (
	"errors"
	"fmt"
	"time"

	"github.com/hako/branca"
)

// KeyAuthUserID to use in context.
const KeyAuthUserID = ctxkey("auth_user_id")

const authTokenTTL = time.Hour * 24 * 7

var (
	// ErrInvalidToken denotes an invalid token.
	ErrInvalidToken = UnauthenticatedError("invalid token")
	// ErrExpiredToken denotes that the token already expired.
	ErrExpiredToken = UnauthenticatedError("expired token")
	// ErrInvalidUserID denotes a token payload that is not a user ID.
	ErrInvalidUserID = UnauthenticatedError("invalid user ID")
)

type ctxkey string

// TokenOutput response.
type TokenOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthOutput response.
type AuthOutput struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthUserIDFromToken decodes the token into a user ID.
// The caller still must resolve the user row: a token remains
// syntactically valid after its user is gone.
func (s *Service) AuthUserIDFromToken(token string) (string, error) {
	uid, err := s.codec().DecodeToString(token)
	if err != nil {
		if errors.Is(err, branca.ErrInvalidToken) || errors.Is(err, branca.ErrInvalidTokenVersion) {
			return "", ErrInvalidToken
		}
		if _, ok := err.(*branca.ErrExpiredToken); ok {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("could not decode token: %w", err)
	}

	if !reUUID.MatchString(uid) {
		return "", ErrInvalidUserID
	}

	return uid, nil
}

func (s *Service) issueAuth(usr User) (AuthOutput, error) {
	var out AuthOutput

	token, err := s.codec().EncodeToString(usr.ID)
	if err != nil {
		return out, fmt.Errorf("could not create auth token: %w", err)
	}

	out.User = usr
	out.Token = token
	out.ExpiresAt = time.Now().Add(authTokenTTL)

	return out, nil
}

func (s *Service) codec() *branca.Branca {
	cdc := branca.NewBranca(s.TokenKey)
	cdc.SetTTL(uint32(authTokenTTL.Seconds()))
	return cdc
}
