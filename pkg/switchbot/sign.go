package switchbot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"
)

// Signature carries the per-request authentication headers
type Signature struct {
	Timestamp string `json:"t"`
	Nonce     string `json:"nonce"`
	Sign      string `json:"sign"`
}

// Sign computes base64(HMAC-SHA256(secret, token + t + nonce)), t being the
// request time in milliseconds since the epoch.
func Sign(token, secret string, t time.Time, nonce string) Signature {
	ts := strconv.FormatInt(t.UnixMilli(), 10)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token + ts + nonce))

	return Signature{
		Timestamp: ts,
		Nonce:     nonce,
		Sign:      base64.StdEncoding.EncodeToString(mac.Sum(nil)),
	}
}
