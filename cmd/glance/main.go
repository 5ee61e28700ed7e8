// cmd/glance/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/glance/internal/app"
	"github.com/bethropolis/glance/internal/config"
	"github.com/bethropolis/glance/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [file]\n\nFlags:\n", config.AppName)
		fset.PrintDefaults()
	}

	flags := &config.Flags{}
	flags.Define(fset)
	if err := fset.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *flags.Version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, config.Version)
		return 0
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags, fset)

	logOut, closeLog, err := openLogOutput(cfg.Logger.LogFilePath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOut)

	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}

	filePath := fset.Arg(0)
	if fset.NArg() > 1 {
		logger.Warnf("Only the first file is shown, ignoring %d more", fset.NArg()-1)
	}
	logger.Infof("Starting %s %s", config.AppName, config.Version)

	glanceApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	// Run restores the terminal before returning, so the message below lands
	// on a normal screen.
	if err := glanceApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}

// openLogOutput resolves the configured log destination. An empty path
// discards logs; "-" means stderr.
func openLogOutput(path string, stderr io.Writer) (io.Writer, func(), error) {
	switch path {
	case "":
		return io.Discard, func() {}, nil
	case "-":
		return stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
