package main

import (
	"flag"

	"github.com/MaxRadzey/translate-client/internal/config"
)

func ParseFlag(config *config.Config) {
	flag.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	flag.StringVar(&config.UpstreamURL, "u", config.UpstreamURL, "translation API endpoint")
	flag.DurationVar(&config.UpstreamTimeout, "t", config.UpstreamTimeout, "timeout for a single translation API call")
	flag.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	flag.Parse()
}
