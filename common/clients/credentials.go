package clients

import "context"

// Credentials identifies an account against the hosted image service
type Credentials struct {
	AccountID string
	APIKey    string
}

// CredentialsProvider resolves credentials at call time. Implementations
// may read them from configuration or from the cache store; a provider
// that cannot produce both values returns a config-kind error.
type CredentialsProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticCredentials is a CredentialsProvider with fixed values
type StaticCredentials struct {
	AccountID string
	APIKey    string
}

// Credentials returns the fixed values
func (s StaticCredentials) Credentials(ctx context.Context) (Credentials, error) {
	return Credentials{AccountID: s.AccountID, APIKey: s.APIKey}, nil
}
