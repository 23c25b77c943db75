package config

import "time"

// Default values applied by [StructuredConfig.applyDefaults] to fields left
// empty by every configuration source.
const (
	DefaultTokenIssuer         = "go-cred-auth"
	DefaultTokenDuration       = 30 * 24 * time.Hour
	DefaultEnvironment         = EnvProduction
	DefaultPasswordHashCost    = 10
	DefaultVersion             = "dev"
	DefaultCookieName          = "session_token"
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultSignInRatePerMinute = 10
	DefaultSignInBurst         = 5
	DefaultAdapterAddress      = "http://localhost:8080"
	DefaultAdapterTimeout      = 10 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = DefaultCookieName
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.SignInRatePerMinute == 0 {
		cfg.Server.SignInRatePerMinute = DefaultSignInRatePerMinute
	}
	if cfg.Server.SignInBurst == 0 {
		cfg.Server.SignInBurst = DefaultSignInBurst
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
}
