package config

import "time"

type OAuthConfig interface {
	GetGrantTTL() time.Duration
	GetAccessTokenTTL() time.Duration
	GetTokenRequestsPerSecond() float64
	GetTokenRequestBurst() int
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetGrantTTL() time.Duration {
	return 10 * time.Minute
}

func (OAuth) GetAccessTokenTTL() time.Duration {
	return 1 * time.Hour
}

func (OAuth) GetTokenRequestsPerSecond() float64 {
	return 10
}

func (OAuth) GetTokenRequestBurst() int {
	return 20
}
