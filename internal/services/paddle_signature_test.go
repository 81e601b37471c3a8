package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaddleSignature(t *testing.T) {
	secret := "whsec-test"
	body := []byte(`{"event_id":"evt_1"}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		assert.True(t, VerifyPaddleSignature(signBody(body, secret), body, secret))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		sig := signBody(body, secret)
		assert.False(t, VerifyPaddleSignature(sig, []byte(`{"event_id":"evt_2"}`), secret))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		assert.False(t, VerifyPaddleSignature(signBody(body, "other"), body, secret))
	})

	t.Run("missing header rejected", func(t *testing.T) {
		assert.False(t, VerifyPaddleSignature("", body, secret))
	})

	t.Run("unconfigured secret rejected", func(t *testing.T) {
		assert.False(t, VerifyPaddleSignature(signBody(body, ""), body, ""))
	})

	t.Run("surrounding whitespace in header tolerated", func(t *testing.T) {
		assert.True(t, VerifyPaddleSignature("  "+signBody(body, secret)+"\n", body, secret))
	})
}
