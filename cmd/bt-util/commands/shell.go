package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mash-protocol/bt-go/pkg/hostsim"
)

func runShell(env *Env, args []string) error {
	var policyPath string
	fs := newFlagSet(env, "shell")
	fs.StringVarP(&policyPath, "policy", "p", "", "Host policy YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return usageError("shell")
	}

	var policy *hostsim.Policy
	if policyPath != "" {
		p, err := hostsim.LoadPolicy(policyPath)
		if err != nil {
			return err
		}
		policy = p
	}

	sh, err := NewShell(policy, *env)
	if err != nil {
		return err
	}
	sh.Run(context.Background())
	return nil
}

// Shell runs commands interactively against one session host.
type Shell struct {
	env *Env
	rl  *readline.Instance
}

// NewShell creates a shell whose session host is built from policy, which
// may be nil.
func NewShell(policy *hostsim.Policy, env Env) (*Shell, error) {
	completer := readline.NewPrefixCompleter(shellCompleters()...)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bt> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	env.Out = rl.Stdout()
	env.Session = NewSession(policy)
	return &Shell{env: &env, rl: rl}, nil
}

// Stderr returns a writer that coordinates with the readline prompt.
// Use it for log output.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run reads and executes lines until EOF, "exit" or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.env.Out, "Exiting...")
			return
		}

		if quit := s.Exec(line); quit {
			return
		}
	}
}

// Exec runs one shell line and reports whether the shell should exit.
// Command errors are printed, not returned.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	name := strings.ToLower(parts[0])
	switch name {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		s.printHelp()
		return false
	case "reset":
		s.env.Session.Recorder.Reset()
		fmt.Fprintln(s.env.Out, "audit trail cleared")
		return false
	case "shell":
		fmt.Fprintln(s.env.Out, "already in the shell")
		return false
	}

	if err := Run(s.env, name, parts[1:]); err != nil {
		fmt.Fprintf(s.env.Out, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.env.Out, "Commands:")
	PrintUsage(s.env.Out)
	fmt.Fprintf(s.env.Out, "  %-34s %s\n", "reset", "Clear the session audit trail")
	fmt.Fprintf(s.env.Out, "  %-34s %s\n", "help", "Show this help")
	fmt.Fprintf(s.env.Out, "  %-34s %s\n", "exit", "Leave the shell")
	fmt.Fprintln(s.env.Out, "\nguard checks:", strings.Join(CheckNames(), ", "))
}

func shellCompleters() []readline.PrefixCompleterInterface {
	var items []readline.PrefixCompleterInterface
	for _, name := range Names() {
		switch name {
		case "shell":
		case "guard":
			var sub []readline.PrefixCompleterInterface
			for _, check := range CheckNames() {
				sub = append(sub, readline.PcItem(check))
			}
			items = append(items, readline.PcItem(name, sub...))
		case "location":
			items = append(items, readline.PcItem(name,
				readline.PcItem("on"), readline.PcItem("off"), readline.PcItem("status")))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return append(items, readline.PcItem("reset"), readline.PcItem("help"), readline.PcItem("exit"))
}
