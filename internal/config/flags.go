package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN (server) or SQLite path (client)
//	-c/-config json file path with configs
//	-master-secret master secret for field encryption
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-hash-key sign-in link hash key
//	-public-url externally visible base URL
//	-rp-id relying-party id
//	-rp-name relying-party display name
//	-rp-origin relying-party origin
//	-challenge-ttl challenge lifetime (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-relay-url mail relay endpoint
//	-server-url server base URL used by the client
//	-trust-ttl client elevation lifetime (e.g., "5m")
//	-sweep-interval expired record sweep interval (e.g., "1m")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var masterSecret string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var hashKey string
	var publicURL string
	var rpID, rpName, rpOrigin string
	var challengeTTL time.Duration
	var requestTimeout time.Duration
	var mailRelayURL string
	var serverURL string
	var trustTTL time.Duration
	var sweepInterval time.Duration

	fs := flag.NewFlagSet("go-trust-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterSecret, "master-secret", "", "Master secret for field encryption")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&hashKey, "hash-key", "", "Sign-in link hash key")
	fs.StringVar(&publicURL, "public-url", "", "Externally visible base URL")
	fs.StringVar(&rpID, "rp-id", "", "Relying-party id")
	fs.StringVar(&rpName, "rp-name", "", "Relying-party display name")
	fs.StringVar(&rpOrigin, "rp-origin", "", "Relying-party origin")
	fs.DurationVar(&challengeTTL, "challenge-ttl", 0, "Challenge lifetime (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&mailRelayURL, "mail-relay-url", "", "Mail relay endpoint")
	fs.StringVar(&serverURL, "server-url", "", "Server base URL used by the client")
	fs.DurationVar(&trustTTL, "trust-ttl", 0, "Client elevation lifetime (e.g., 5m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired record sweep interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterSecret:  masterSecret,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			PublicURL:     publicURL,
		},
		RelyingParty: RelyingParty{
			ID:     rpID,
			Name:   rpName,
			Origin: rpOrigin,
		},
		Ceremony: Ceremony{
			ChallengeTTL: challengeTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			RelayURL: mailRelayURL,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Trust: Trust{
			TTL: trustTTL,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
