package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server base URL (e.g. "http://localhost:5000")
//	-d local SQLite database file path
//	-client-id-file client identity dotfile path
//	-request-timeout save request timeout (e.g., "10s")
//	-probe-timeout connectivity probe timeout (e.g., "5s")
//	-probe-ttl how long a successful probe stays valid (0 = always re-probe)
//	-refresh-interval background refresh period (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverBaseURL string
	var databaseDSN string
	var clientIDFile string
	var requestTimeout time.Duration
	var probeTimeout time.Duration
	var probeTTL time.Duration
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverBaseURL, "s", "", "Stats server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database file")
	flag.StringVar(&clientIDFile, "client-id-file", "", "Client identity file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Save request timeout (e.g., 10s)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Connectivity probe timeout (e.g., 5s)")
	flag.DurationVar(&probeTTL, "probe-ttl", 0, "Probe result TTL (0 = re-probe every read)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh period (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			BaseURL:        serverBaseURL,
			RequestTimeout: requestTimeout,
			ProbeTimeout:   probeTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			ClientIDFile: clientIDFile,
		},
		Sync: Sync{
			ProbeTTL: probeTTL,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
