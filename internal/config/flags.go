package config

import (
	"errors"
	"flag"
	"io"
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

// parseFlags parses configuration flags from args. Parsing stops at the
// first positional argument; the rest is returned in Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s backend base URL used by the client
//	-d server database DSN
//	-local-db client SQLite DSN
//	-c/-config json file path with configs
//	-t backend API token
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-adapter-timeout client request timeout
//	-cache-size NFT detail cache capacity
//	-profile profile id owning the likes set
//	-cart order id owning the cart set
//	-resync-interval client full resync interval (e.g., "5m")
//	-fetch-concurrency parallel detail fetches per batch, 0 = unbounded
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var clientDatabaseDSN string
	var jsonConfigPath string
	var token string
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var cacheSize int
	var profileID string
	var cartID string
	var resyncInterval time.Duration
	var fetchConcurrency int

	fs := flag.NewFlagSet("nft-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&clientDatabaseDSN, "local-db", "", "Client SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "t", "", "Backend API token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.IntVar(&cacheSize, "cache-size", 0, "NFT detail cache capacity")
	fs.StringVar(&profileID, "profile", "", "Profile id owning the likes set")
	fs.StringVar(&cartID, "cart", "", "Order id owning the cart set")
	fs.DurationVar(&resyncInterval, "resync-interval", 0, "Full resync interval (e.g., 5m)")
	fs.IntVar(&fetchConcurrency, "fetch-concurrency", 0, "Parallel detail fetches per batch")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Token: token,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			ClientDB: DB{DSN: clientDatabaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:     adapterAddress,
			RequestTimeout:  adapterTimeout,
			DetailCacheSize: cacheSize,
		},
		Owner: Owner{
			ProfileID: profileID,
			CartID:    cartID,
		},
		Workers: Workers{
			ResyncInterval:   resyncInterval,
			FetchConcurrency: fetchConcurrency,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
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
// An empty host listens on all interfaces. It validates the port range,
// checks IP correctness unless host is "localhost", and returns an error if
// the format or values are invalid.
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
		return errors.New("port number must be in range 1..65535")
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
