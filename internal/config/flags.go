package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-env environment name (development, production)
//	-hash-cost bcrypt cost
//	-cookie-name session cookie name
//	-cookie-secure mark the session cookie Secure
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sign-in-rate sign-in attempts per minute per client IP
//	-sign-in-burst sign-in limiter burst
//	-server client: server base address
//	-client-timeout client: outbound request timeout
//
// Unknown flags cause an error; -h prints usage and returns flag.ErrHelp.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-cred-auth", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var environment string
	var hashCost int
	var cookieName string
	var cookieSecure bool
	var requestTimeout time.Duration
	var signInRate, signInBurst int
	var adapterAddress string
	var adapterTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.StringVar(&environment, "env", "", "Environment (development, production)")
	fs.IntVar(&hashCost, "hash-cost", 0, "Password hash cost")
	fs.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	fs.BoolVar(&cookieSecure, "cookie-secure", false, "Mark the session cookie Secure")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&signInRate, "sign-in-rate", 0, "Sign-in attempts per minute per client IP")
	fs.IntVar(&signInBurst, "sign-in-burst", 0, "Sign-in limiter burst")
	fs.StringVar(&adapterAddress, "server", "", "Server base address used by the client")
	fs.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			Environment:      environment,
			PasswordHashCost: hashCost,
		},
		Session: Session{
			CookieName:   cookieName,
			CookieSecure: cookieSecure,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:         serverAddress.String(),
			GRPCAddress:         grpcServerAddress.String(),
			RequestTimeout:      requestTimeout,
			SignInRatePerMinute: signInRate,
			SignInBurst:         signInBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means "all interfaces". It validates the port range, checks
// IP correctness unless host is "localhost", and returns an error if the
// format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
