package httpadapter

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	auth := NewSenderAuth("test-secret")

	sender, ok := auth.parseToken(auth.TokenFor("acc-owner"))
	if !ok {
		t.Fatal("valid token rejected")
	}
	if sender != "acc-owner" {
		t.Fatalf("sender: got %q, want %q", sender, "acc-owner")
	}
}

func TestTokenRejections(t *testing.T) {
	auth := NewSenderAuth("test-secret")
	other := NewSenderAuth("other-secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "no signature", token: "acc-owner"},
		{name: "bad hex", token: "acc-owner.zzzz"},
		{name: "tampered account", token: "acc-other." + auth.TokenFor("acc-owner")[len("acc-owner."):]},
		{name: "wrong secret", token: other.TokenFor("acc-owner")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := auth.parseToken(tt.token); ok {
				t.Fatalf("token %q accepted", tt.token)
			}
		})
	}
}
