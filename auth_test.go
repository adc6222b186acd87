package kuadro

import (
	"testing"
	"time"

	"github.com/hako/branca"

	"github.com/kuadroapp/kuadro/testutil"
)

func TestService_AuthUserIDFromToken(t *testing.T) {
	svc := &Service{TokenKey: testTokenKey}
	uid := "ce94eee8-4914-4cf0-8f3e-79a92b8d77a1"

	t.Run("round_trip", func(t *testing.T) {
		token, err := svc.codec().EncodeToString(uid)
		testutil.AssertEqual(t, nil, err, "encode")

		got, err := svc.AuthUserIDFromToken(token)
		testutil.AssertEqual(t, nil, err, "decode")
		testutil.AssertEqual(t, uid, got, "user ID")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.AuthUserIDFromToken("not-a-token")
		testutil.AssertEqual(t, ErrInvalidToken, err, "error")
	})

	t.Run("tampered", func(t *testing.T) {
		token, err := svc.codec().EncodeToString(uid)
		testutil.AssertEqual(t, nil, err, "encode")

		b := []byte(token)
		i := len(b) / 2
		if b[i] == 'a' {
			b[i] = 'b'
		} else {
			b[i] = 'a'
		}
		_, err = svc.AuthUserIDFromToken(string(b))
		testutil.AssertEqual(t, ErrInvalidToken, err, "error")
	})

	t.Run("wrong_key", func(t *testing.T) {
		other := branca.NewBranca("differentsecretkeyof32characters")
		token, err := other.EncodeToString(uid)
		testutil.AssertEqual(t, nil, err, "encode")

		_, err = svc.AuthUserIDFromToken(token)
		testutil.AssertEqual(t, ErrInvalidToken, err, "error")
	})

	t.Run("expired", func(t *testing.T) {
		codec := branca.NewBranca(testTokenKey)
		codec.SetTTL(uint32(authTokenTTL.Seconds()))
		codec.SetTimeStamp(uint32(time.Now().Add(-authTokenTTL - time.Hour).Unix()))
		token, err := codec.EncodeToString(uid)
		testutil.AssertEqual(t, nil, err, "encode")

		_, err = svc.AuthUserIDFromToken(token)
		testutil.AssertEqual(t, ErrExpiredToken, err, "error")
	})

	t.Run("not_a_user_id", func(t *testing.T) {
		token, err := svc.codec().EncodeToString("gopher")
		testutil.AssertEqual(t, nil, err, "encode")

		_, err = svc.AuthUserIDFromToken(token)
		testutil.AssertEqual(t, ErrInvalidUserID, err, "error")
	})
}
