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
//	-c/-config json file path with configs
//	-nas-backend remote file store backend ("webdav" or "ftp")
//	-nas-address WebDAV base URL or FTP host:port
//	-nas-user NAS account name
//	-nas-password NAS account password
//	-nas-webdav-base-path base directory for the WebDAV backend
//	-nas-ftp-base-path base directory for the FTP backend
//	-nas-timeout per-operation remote timeout (e.g., "10s")
//	-crm-base-url outbound CRM API base URL
//	-crm-api-key outbound CRM API key
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var nasBackend string
	var nasAddress string
	var nasUser string
	var nasPassword string
	var nasWebDAVBasePath string
	var nasFTPBasePath string
	var nasTimeout time.Duration
	var crmBaseURL string
	var crmAPIKey string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&nasBackend, "nas-backend", "", "Remote file store backend (webdav or ftp)")
	flag.StringVar(&nasAddress, "nas-address", "", "WebDAV base URL or FTP host:port")
	flag.StringVar(&nasUser, "nas-user", "", "NAS account name")
	flag.StringVar(&nasPassword, "nas-password", "", "NAS account password")
	flag.StringVar(&nasWebDAVBasePath, "nas-webdav-base-path", "", "Remote base directory (WebDAV)")
	flag.StringVar(&nasFTPBasePath, "nas-ftp-base-path", "", "Remote base directory (FTP)")
	flag.DurationVar(&nasTimeout, "nas-timeout", 0, "Remote operation timeout (e.g., 10s)")
	flag.StringVar(&crmBaseURL, "crm-base-url", "", "Outbound CRM API base URL")
	flag.StringVar(&crmAPIKey, "crm-api-key", "", "Outbound CRM API key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			NAS: NAS{
				Backend:          nasBackend,
				Address:          nasAddress,
				User:             nasUser,
				Password:         nasPassword,
				WebDAVBasePath:   nasWebDAVBasePath,
				FTPBasePath:      nasFTPBasePath,
				OperationTimeout: nasTimeout,
			},
		},
		Adapter: Adapter{
			CRMBaseURL: crmBaseURL,
			CRMAPIKey:  crmAPIKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
