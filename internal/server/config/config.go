// Package config handles configuration for the server component,
// including defaults, environment overlay (.env aware), and command-line flags.
package config

import "time"

// Token scheme selectors. PlainScheme keeps the original reversible
// email-as-token behavior; SignedScheme upgrades to HS256 JWTs.
const (
	PlainScheme  = "plain"
	SignedScheme = "signed"
)

// Config holds runtime settings for the PixGate server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory user directory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Unused by the plain scheme,
//     where it stays reserved for the signed-token upgrade.
//   - TokenScheme: "plain" or "signed".
//   - AccessTokenValidityDuration: token lifetime, signed scheme only.
//   - PixKey / PixValue: the static PIX key identifier and monetary value string.
//   - CORSAllowedOrigins: comma-separated origin allow-list for credentialed
//     cross-origin calls.
//   - GinMode: gin run mode (debug, release, test).
type Config struct {
	EndpointAddr                string
	DatabaseDSN                 string
	SecretKey                   string
	TokenScheme                 string
	AccessTokenValidityDuration time.Duration
	PixKey                      string
	PixValue                    string
	CORSAllowedOrigins          string
	GinMode                     string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenScheme = PlainScheme
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.PixKey = "pix@example.com"
	c.PixValue = "10.00"
	c.CORSAllowedOrigins = "http://localhost:3000"
	c.GinMode = "debug"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
