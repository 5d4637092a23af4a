package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/GoFFXI/webcodec/cmd/gateway"
	"github.com/GoFFXI/webcodec/internal/config"
	"github.com/GoFFXI/webcodec/internal/logging"
	gatewayserver "github.com/GoFFXI/webcodec/internal/servers/gateway"
)

// version information - to be set during build time
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "none"
)

func main() {
	// load .env file automatically
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found (continuing with system environment)")
	}

	role := handleFlags()
	cfg := config.ParseConfigFromEnv()

	directions, err := gatewayserver.ParseRole(role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v. must be one of: gateway, inbound, outbound\n", err)
		printUsage()
		os.Exit(1)
	}

	// setup our logger
	logger, closer, err := logging.New(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// set the maxprocs
	if _, err = maxprocs.Set(maxprocs.Logger(func(message string, args ...any) {
		logger.Info(fmt.Sprintf(message, args...))
	})); err != nil {
		logger.Error("could not set GOMAXPROCS", "error", err)
	}

	logger = logger.With("role", role)
	logger.Info("starting webcodec...", "version", Version, "buildDate", BuildDate, "gitCommit", GitCommit)

	err = gateway.Run(&cfg, logger, directions)
	_ = closer.Close()

	if err != nil {
		logger.Error("webcodec stopped with an error", "error", err)
		os.Exit(1)
	}
}

func handleFlags() string {
	// define command line flags
	role := flag.String("role", "gateway", "role to run: gateway, inbound, outbound")
	version := flag.Bool("version", false, "show version information")
	help := flag.Bool("help", false, "show help message")

	// parse all flags
	flag.Parse()

	// handle version flag
	if *version {
		fmt.Printf("webcodec: %s\n", Version)
		fmt.Printf("Build time: %s\n", BuildDate)
		fmt.Printf("Git commit: %s\n", GitCommit)
		os.Exit(0)
	}

	if *help {
		printUsage()
		os.Exit(0)
	}

	return strings.ToLower(*role)
}

func printUsage() {
	fmt.Println("Usage: webcodec --role=<role>")
	fmt.Println()
	fmt.Println("Available roles:")
	fmt.Println("  gateway  - Translate traffic in both directions (default)")
	fmt.Println("  inbound  - Track sessions and translate client packets for the world")
	fmt.Println("  outbound - Translate world packets for web clients")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  webcodec --role=gateway")
	fmt.Println("  webcodec --role=outbound")
}
