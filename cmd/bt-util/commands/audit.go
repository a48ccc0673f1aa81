package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mash-protocol/bt-go/pkg/audit"
)

func runAudit(env *Env, args []string) error {
	var (
		filter  audit.Filter
		outcome string
		user    int
	)
	fs := newFlagSet(env, "audit")
	fs.StringVarP(&filter.Check, "check", "c", "", "Filter by guard name")
	fs.StringVar(&filter.Permission, "permission", "", "Filter by permission")
	fs.StringVarP(&outcome, "outcome", "o", "", "Filter by outcome (ALLOWED, DENIED, VIOLATION, UNAVAILABLE)")
	fs.IntVarP(&user, "user", "u", -1, "Filter by host user ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if outcome != "" {
		o, ok := audit.ParseOutcome(strings.ToUpper(outcome))
		if !ok {
			return fmt.Errorf("invalid outcome %q", outcome)
		}
		filter.Outcome = &o
	}
	if user >= 0 {
		filter.UserID = &user
	}

	switch {
	case fs.NArg() == 1:
		return printAuditFile(env.Out, fs.Arg(0), filter)
	case fs.NArg() == 0 && env.Session != nil:
		for _, ev := range env.Session.Recorder.Events() {
			if filter.Matches(ev) {
				FormatEvent(env.Out, ev)
			}
		}
		return nil
	default:
		return usageError("audit")
	}
}

func printAuditFile(w io.Writer, path string, filter audit.Filter) error {
	r, err := audit.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("open audit file: %w", err)
	}
	defer r.Close()

	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read audit file: %w", err)
		}
		FormatEvent(w, ev)
	}
}

// FormatEvent writes a one-line, human-readable representation of ev to w.
func FormatEvent(w io.Writer, ev audit.Event) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-11s %s",
		ev.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		ev.Outcome, ev.Check)

	if ev.Permission != "" {
		fmt.Fprintf(&b, " permission=%s", ev.Permission)
	}
	if ev.UserID != nil {
		fmt.Fprintf(&b, " user=%d", *ev.UserID)
	}
	if ev.Package != "" {
		fmt.Fprintf(&b, " caller=%d/%s", ev.UID, ev.Package)
	}
	if ev.Tag != "" {
		fmt.Fprintf(&b, " tag=%s", ev.Tag)
	}
	if ev.Device != "" {
		fmt.Fprintf(&b, " device=%s", ev.Device)
	}
	if ev.Message != "" {
		fmt.Fprintf(&b, " message=%q", ev.Message)
	}
	if ev.Reason != "" {
		fmt.Fprintf(&b, " reason=%q", ev.Reason)
	}
	fmt.Fprintln(w, b.String())
}
