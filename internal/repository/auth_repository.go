package repository

import "context"

// Authenticator exchanges admin credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Pinger reports whether the DataSource is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
