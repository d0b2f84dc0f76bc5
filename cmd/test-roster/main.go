package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/adrata/monaco/internal/testroster"
)

// Default configuration constants.
const (
	defaultNumCompanies = 100
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultPollInterval = 5 * time.Second
	defaultTestTimeout  = 10 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numCompanies = flag.Int("companies", defaultNumCompanies, "Number of synthetic companies to generate and submit")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		pollInterval = flag.Duration("poll", defaultPollInterval, "Wait before polling for results")
		outputFile   = flag.String("output", "", "Output file for generated rosters (default: generated_rosters_TIMESTAMP.json)")
		logFile      = flag.String("log", "", "Log file for test output (default: test_log_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testroster.ShowHelp()
		return
	}

	// Setup logging
	if err := testroster.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create test configuration
	config := &testroster.Config{
		BaseURL:      *baseURL,
		NumCompanies: *numCompanies,
		Workers:      *workers,
		Timeout:      *timeout,
		PollInterval: *pollInterval,
		OutputFile:   *outputFile,
		LogFile:      *logFile,
		Verbose:      *verbose,
	}

	// Run the test
	if err := testroster.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Test failed: " + err.Error() + "\n")
		return
	}
}
