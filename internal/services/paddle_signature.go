package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifyPaddleSignature checks the paddle-signature header against a hex
// HMAC-SHA256 of the raw request body. A missing header or an unconfigured
// secret always fails closed.
func VerifyPaddleSignature(header string, body []byte, secret string) bool {
	header = strings.TrimSpace(header)
	if header == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}
