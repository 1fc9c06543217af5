// SPDX-License-Identifier: Apache-2.0

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
//	-db sqlite database path
//	-c/-config json file path with configs
//	-argon-time / -argon-memory / -argon-threads Argon2id work factors
//	-selector-warn-ratio advisory threshold for selector complexity limits
//	-request-timeout server request timeout (e.g. "30s", "1m")
//	-backup-retention how long stored backups are kept (0 disables the sweeper)
//	-server-url client base URL of the companion API
//	-client-timeout client request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var sqlitePath string
	var jsonConfigPath string
	var argonTime uint
	var argonMemory uint
	var argonThreads uint
	var selectorWarnRatio float64
	var requestTimeout time.Duration
	var backupRetention time.Duration
	var serverURL string
	var clientTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&sqlitePath, "db", "", "SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.UintVar(&argonTime, "argon-time", 0, "Argon2id iteration count")
	flag.UintVar(&argonMemory, "argon-memory", 0, "Argon2id memory cost in KiB")
	flag.UintVar(&argonThreads, "argon-threads", 0, "Argon2id parallelism")
	flag.Float64Var(&selectorWarnRatio, "selector-warn-ratio", 0, "Selector advisory threshold (0..1]")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&backupRetention, "backup-retention", 0, "Backup retention period (0 disables the sweeper)")
	flag.StringVar(&serverURL, "server-url", "", "Base URL of the companion API (client)")
	flag.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ArgonTime:         uint32(argonTime),
			ArgonMemory:       uint32(argonMemory),
			ArgonThreads:      uint8(argonThreads),
			SelectorWarnRatio: selectorWarnRatio,
		},
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SQLitePath:      sqlitePath,
			BackupRetention: backupRetention,
		},
		Client: Client{
			ServerURL: serverURL,
			Timeout:   clientTimeout,
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
