// Package commands implements the bt-util CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/mash-protocol/bt-go/pkg/audit"
	"github.com/mash-protocol/bt-go/pkg/hostsim"
	"github.com/spf13/pflag"
)

// Version is the bt-util version, set at build time with
// -ldflags "-X github.com/mash-protocol/bt-go/cmd/bt-util/commands.Version=...".
var Version = "dev"

// ErrUnknownCommand is returned by Run for a command name it does not know.
var ErrUnknownCommand = errors.New("unknown command")

// ErrUsage is returned when a command is called with the wrong arguments.
var ErrUsage = errors.New("usage")

// Env is what commands write to and share.
type Env struct {
	// Out receives command output.
	Out io.Writer

	// Logger receives operational logs. If nil, logging is disabled.
	Logger *slog.Logger

	// Session, when set, replaces the file-backed host with a host that
	// lives as long as the interactive shell.
	Session *Session
}

// Session is the host and audit trail shared by the commands of one
// interactive shell.
type Session struct {
	Host     *hostsim.Host
	Recorder *audit.Recorder
}

// NewSession creates a session host from policy, which may be nil.
func NewSession(policy *hostsim.Policy) *Session {
	return &Session{
		Host:     hostsim.New(policy),
		Recorder: audit.NewRecorder(),
	}
}

type command struct {
	usage   string
	summary string
	run     func(env *Env, args []string) error
}

var registry map[string]command

func init() {
	registry = map[string]command{
		"short":    {"short <hex>", "Decode a little-endian 16-bit value", runShort},
		"int":      {"int [--offset n] <hex>", "Decode a little-endian 32-bit value", runInt},
		"hex":      {"hex <hex>", "Format bytes as hex pairs", runHex},
		"uuids":    {"uuids <uuid>...", "Serialize UUIDs to bytes", runUUIDs},
		"redact":   {"redact [address]", "Redact a device address for logging", runRedact},
		"addr":     {"addr <hex>", "Format 6 bytes as a device address", runAddr},
		"state":    {"state <code>", "Name an adapter state code", runState},
		"units":    {"units <ms>", "Convert milliseconds to 625us controller units", runUnits},
		"guard":    {"guard [flags] <check>", "Run a host guard against the simulated host", runGuard},
		"location": {"location [flags] on|off|status", "Toggle or show location for a user", runLocation},
		"audit":    {"audit [flags] [file]", "Show recorded guard decisions", runAudit},
		"shell":    {"shell [--policy file]", "Run commands interactively against one host", runShell},
		"version":  {"version", "Print the version", runVersion},
	}
}

// Run executes the command name with args.
func Run(env *Env, name string, args []string) error {
	cmd, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return cmd.run(env, args)
}

// Names returns the registered command names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrintUsage writes the command summary to w.
func PrintUsage(w io.Writer) {
	for _, name := range Names() {
		cmd := registry[name]
		fmt.Fprintf(w, "  %-34s %s\n", cmd.usage, cmd.summary)
	}
}

func runVersion(env *Env, args []string) error {
	fmt.Fprintf(env.Out, "bt-util %s\n", Version)
	return nil
}

// newFlagSet returns a flag set for a command that reports parse errors
// instead of exiting.
func newFlagSet(env *Env, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(env.Out)
	return fs
}

func usageError(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, registry[name].usage)
}

func (env *Env) logDebug(msg string, args ...any) {
	if env.Logger != nil {
		env.Logger.Debug(msg, args...)
	}
}

func joinArgs(args []string) string {
	return strings.Join(args, "")
}
