// Command bt-util exercises the Bluetooth utility helpers and host guards
// from the command line.
//
// Usage:
//
//	bt-util [--log-level level] <command> [flags] [args]
//
// Commands:
//
//	short <hex>                      Decode a little-endian 16-bit value
//	int [--offset n] <hex>           Decode a little-endian 32-bit value
//	hex <hex>                        Format bytes as hex pairs
//	uuids <uuid>...                  Serialize UUIDs to bytes
//	redact [address]                 Redact a device address for logging
//	addr <hex>                       Format 6 bytes as a device address
//	state <code>                     Name an adapter state code
//	units <ms>                       Convert milliseconds to 625us units
//	guard [flags] <check>            Run a host guard against the simulated host
//	location [flags] on|off|status   Toggle or show location for a user
//	audit [flags] [file]             Show recorded guard decisions
//	shell [--policy file]            Run commands interactively
//	version                          Print the version
//
// Examples:
//
//	# Decode 0x0201
//	bt-util short 01 02
//
//	# Turn location off for user 10, then check coarse location for a caller
//	bt-util location --state host.json --user 10 off
//	bt-util guard --policy policy.yaml --state host.json --user 10 \
//	    --package com.example.scanner --uid 10123 coarse-location
//
//	# Show the violations recorded in an audit file
//	bt-util audit --outcome VIOLATION guard.audit
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mash-protocol/bt-go/cmd/bt-util/commands"
	"github.com/mash-protocol/bt-go/pkg/guard"
	"github.com/spf13/pflag"
)

const usage = `bt-util - Bluetooth utility helpers and host guards

Usage:
  bt-util [--log-level level] <command> [flags] [args]

Commands:
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var logLevel string

	fs := pflag.NewFlagSet("bt-util", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.BoolP("help", "h", false, "Show help")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if help, _ := fs.GetBool("help"); help || fs.NArg() == 0 {
		printUsage(stdout, fs)
		return nil
	}

	logger, err := newLogger(stderr, logLevel)
	if err != nil {
		return err
	}

	guard.SetLogger(logger)

	env := &commands.Env{Out: stdout, Logger: logger}
	return commands.Run(env, fs.Arg(0), fs.Args()[1:])
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, usage)
	commands.PrintUsage(w)
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprint(w, fs.FlagUsages())
}
