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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f local file storage directory
//	-file-backend file storage backend: local or s3
//	-c/-config json file path with configs
//	-encryption-key active field-encryption key (base64, 32 bytes)
//	-previous-encryption-key retiring key for the rotation job
//	-default-issuer default credential issuer name
//	-verifier-url external verifier endpoint
//	-registry-url external benefit registry base URL
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-rotation-batch-size rows re-encrypted per transaction
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var fileStorageDir string
	var fileBackend string
	var jsonConfigPath string
	var encryptionKey string
	var previousEncryptionKey string
	var defaultIssuer string
	var verifierURL string
	var registryURL string
	var requestTimeout time.Duration
	var rotationBatchSize int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&fileStorageDir, "f", "", "Local file storage directory")
	flag.StringVar(&fileBackend, "file-backend", "", "File storage backend (local or s3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&encryptionKey, "encryption-key", "", "Active encryption key (base64)")
	flag.StringVar(&previousEncryptionKey, "previous-encryption-key", "", "Retiring encryption key (base64)")
	flag.StringVar(&defaultIssuer, "default-issuer", "", "Default credential issuer name")
	flag.StringVar(&verifierURL, "verifier-url", "", "External verifier endpoint URL")
	flag.StringVar(&registryURL, "registry-url", "", "Benefit registry base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&rotationBatchSize, "rotation-batch-size", 0, "Rotation batch size")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EncryptionKey:         encryptionKey,
			PreviousEncryptionKey: previousEncryptionKey,
			DefaultIssuerName:     defaultIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Backend:       fileBackend,
				BinaryDataDir: fileStorageDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Verifier: Verifier{
			URL: verifierURL,
		},
		Registry: Registry{
			BaseURL: registryURL,
		},
		Rotation: Rotation{
			BatchSize: rotationBatchSize,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
