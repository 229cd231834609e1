package httpadapter

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

type contextKey string

const senderKey contextKey = "sender"

// SenderAuth authenticates the transaction sender from a signed token in
// the Authorization header. The token is the account address followed by
// an HMAC-SHA256 signature over it, hex encoded and dot separated. This
// stands in for the chain host's sender attestation: the service trusts
// whoever holds the signing secret to mint tokens.
type SenderAuth struct {
	secretKey []byte
}

// NewSenderAuth creates a SenderAuth with the given secret.
func NewSenderAuth(secret string) *SenderAuth {
	return &SenderAuth{secretKey: []byte(secret)}
}

// Middleware verifies the Authorization header and adds the sender
// account to the request context. Requests without a valid token get
// HTTP 401.
func (a *SenderAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		sender, ok := a.parseToken(token)
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), senderKey, sender)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFor mints a token for the given account address. Exposed for
// clients and tests.
func (a *SenderAuth) TokenFor(account string) string {
	return account + "." + hex.EncodeToString(a.sign(account))
}

func (a *SenderAuth) parseToken(token string) (string, bool) {
	i := strings.LastIndex(token, ".")
	if i <= 0 {
		return "", false
	}
	account, signature := token[:i], token[i+1:]
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}
	if !hmac.Equal(sig, a.sign(account)) {
		return "", false
	}
	return account, true
}

func (a *SenderAuth) sign(account string) []byte {
	mac := hmac.New(sha256.New, a.secretKey)
	mac.Write([]byte(account))
	return mac.Sum(nil)
}

// senderFromContext extracts the authenticated sender account from the
// request context.
func senderFromContext(ctx context.Context) (string, bool) {
	sender, ok := ctx.Value(senderKey).(string)
	return sender, ok
}
