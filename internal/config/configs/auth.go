package configs

// Auth holds configuration for sender token verification. The Secret is
// the HMAC key used to sign and verify sender tokens. It must be shared
// with whatever mints tokens for clients.
type Auth struct {
	Secret string `env:"SECRET" envDefault:"donation-ledger-secret"`
}
