package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mash-protocol/bt-go/pkg/audit"
	"github.com/mash-protocol/bt-go/pkg/guard"
	"github.com/mash-protocol/bt-go/pkg/host"
	"github.com/mash-protocol/bt-go/pkg/hostsim"
	"github.com/spf13/pflag"
)

// ErrNoStateFile is returned when a location change has nowhere to be kept.
var ErrNoStateFile = errors.New("location changes need --state outside the shell")

// hostOptions selects the simulated host a command runs against.
type hostOptions struct {
	policy string
	state  string
	user   int
}

func (o *hostOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.policy, "policy", "p", "", "Host policy YAML file")
	fs.StringVarP(&o.state, "state", "s", "", "Host state file")
	fs.IntVarP(&o.user, "user", "u", 0, "Host user ID")
}

// openHost returns the session host in the shell, otherwise a host built
// from the policy file with the saved state applied.
func (env *Env) openHost(o hostOptions) (*hostsim.Host, *hostsim.StateStore, error) {
	if env.Session != nil {
		return env.Session.Host, nil, nil
	}

	var policy *hostsim.Policy
	if o.policy != "" {
		p, err := hostsim.LoadPolicy(o.policy)
		if err != nil {
			return nil, nil, err
		}
		policy = p
	}
	h := hostsim.New(policy)

	if o.state == "" {
		return h, nil, nil
	}
	store := hostsim.NewStateStore(o.state)
	st, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load state: %w", err)
	}
	h.Restore(st)
	return h, store, nil
}

// checkRequest carries the caller side of a guard call.
type checkRequest struct {
	attr    *host.AttributionSource
	user    host.UserHandle
	message string
}

type checkFunc func(c *guard.Checker, req checkRequest) (bool, error)

var checks = map[string]checkFunc{
	"location-off": func(c *guard.Checker, req checkRequest) (bool, error) {
		return c.BlockedByLocationOff(req.user), nil
	},
	"coarse-location": func(c *guard.Checker, req checkRequest) (bool, error) {
		return c.CheckCallerHasCoarseLocation(req.attr, req.user), nil
	},
	"fine-location": func(c *guard.Checker, req checkRequest) (bool, error) {
		return c.CheckCallerHasFineLocation(req.attr, req.user), nil
	},
	"location": func(c *guard.Checker, req checkRequest) (bool, error) {
		return c.CheckCallerHasCoarseOrFineLocation(req.attr, req.user), nil
	},
	"advertise": func(c *guard.Checker, req checkRequest) (bool, error) {
		return c.CheckAdvertisePermissionForDataDelivery(req.attr, req.message)
	},
	"advertise-preflight": func(c *guard.Checker, _ checkRequest) (bool, error) {
		return c.CheckAdvertisePermissionForPreflight()
	},
	"scan": func(c *guard.Checker, req checkRequest) (bool, error) {
		return c.CheckScanPermissionForDataDelivery(req.attr, req.message)
	},
	"scan-preflight": func(c *guard.Checker, _ checkRequest) (bool, error) {
		return c.CheckScanPermissionForPreflight()
	},
	"connect": func(c *guard.Checker, req checkRequest) (bool, error) {
		return c.CheckConnectPermissionForDataDelivery(req.attr, req.message)
	},
	"connect-preflight": func(c *guard.Checker, _ checkRequest) (bool, error) {
		return c.CheckConnectPermissionForPreflight()
	},
	"write-sms": func(c *guard.Checker, _ checkRequest) (bool, error) {
		return c.CheckCallerHasWriteSmsPermission()
	},
	"privileged": func(c *guard.Checker, _ checkRequest) (bool, error) {
		return c.CheckCallerHasPrivilegedPermission(), nil
	},
	"dump": func(c *guard.Checker, _ checkRequest) (bool, error) {
		err := c.EnforceDumpPermission()
		return err == nil, err
	},
	"enforce-privileged": func(c *guard.Checker, _ checkRequest) (bool, error) {
		err := c.EnforceBluetoothPrivilegedPermission()
		return err == nil, err
	},
}

// CheckNames returns the names accepted by the guard command, sorted.
func CheckNames() []string {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runGuard(env *Env, args []string) error {
	var (
		opts      hostOptions
		auditPath string
		pkg       string
		uid       int
		message   string
	)
	fs := newFlagSet(env, "guard")
	opts.register(fs)
	fs.StringVarP(&auditPath, "audit", "a", "", "Append the decision to this audit file")
	fs.StringVar(&pkg, "package", "", "Calling package (omit for no caller attribution)")
	fs.IntVar(&uid, "uid", 0, "Calling UID")
	fs.StringVarP(&message, "message", "m", "bt-util", "Message noted with data-delivery checks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("guard")
	}
	check, ok := checks[fs.Arg(0)]
	if !ok {
		return fmt.Errorf("unknown check %q (one of %v)", fs.Arg(0), CheckNames())
	}

	h, _, err := env.openHost(opts)
	if err != nil {
		return err
	}

	var loggers []audit.Logger
	if env.Logger != nil {
		loggers = append(loggers, audit.NewSlogAdapter(env.Logger))
	}
	if env.Session != nil {
		loggers = append(loggers, env.Session.Recorder)
	}
	if auditPath != "" {
		fl, err := audit.NewFileLogger(auditPath)
		if err != nil {
			return fmt.Errorf("open audit file: %w", err)
		}
		defer fl.Close()
		loggers = append(loggers, fl)
	}

	checker := guard.New(h, guard.Config{
		Logger: env.Logger,
		Audit:  audit.NewMultiLogger(loggers...),
	})

	req := checkRequest{user: host.UserHandle{ID: opts.user}, message: message}
	if pkg != "" {
		req.attr = &host.AttributionSource{UID: uid, PackageName: pkg}
	}

	env.logDebug("running guard", "check", fs.Arg(0), "user", opts.user, "package", pkg)
	result, err := check(checker, req)
	if err != nil {
		if guard.IsSecurityViolation(err) {
			fmt.Fprintf(env.Out, "violation: %v\n", err)
			return nil
		}
		return err
	}
	fmt.Fprintln(env.Out, result)
	return nil
}

func runLocation(env *Env, args []string) error {
	var opts hostOptions
	fs := newFlagSet(env, "location")
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("location")
	}

	h, store, err := env.openHost(opts)
	if err != nil {
		return err
	}
	user := host.UserHandle{ID: opts.user}

	switch fs.Arg(0) {
	case "status":
		fmt.Fprintln(env.Out, onOff(h.IsLocationEnabledForUser(user)))
		return nil
	case "on", "off":
		if store == nil && env.Session == nil {
			return ErrNoStateFile
		}
		enabled := fs.Arg(0) == "on"
		h.SetLocationEnabledForUser(user, enabled)
		if store != nil {
			if err := store.Save(h.Snapshot()); err != nil {
				return fmt.Errorf("save state: %w", err)
			}
		}
		env.logDebug("location changed", "user", opts.user, "enabled", enabled)
		fmt.Fprintln(env.Out, onOff(enabled))
		return nil
	default:
		return usageError("location")
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
