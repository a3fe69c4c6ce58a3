package config

import (
	"flag"
	"os"
	"time"

	"github.com/ndmitriev/memora/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
//	-a string   server base URL
//	-r string   post-login redirect URL (carries the one-time credential)
//	-t int      request timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "a", config.ServerBaseURL, "server base URL")
	fs.StringVar(&config.RedirectURL, "r", config.RedirectURL, "post-login redirect URL")
	timeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*timeout) * time.Second
}
