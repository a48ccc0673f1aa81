package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mash-protocol/bt-go/pkg/btutil"
)

var hexSeparators = strings.NewReplacer(" ", "", ":", "", "-", "", "0x", "", "0X", "")

// ParseHex decodes a hex argument. Spaces, colons, dashes and 0x prefixes
// are ignored, so "01 02", "01:02" and "0x0102" are the same two octets.
func ParseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(hexSeparators.Replace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return b, nil
}

func runShort(env *Env, args []string) error {
	if len(args) == 0 {
		return usageError("short")
	}
	b, err := ParseHex(joinArgs(args))
	if err != nil {
		return err
	}
	v, err := btutil.BytesToInt16(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, v)
	return nil
}

func runInt(env *Env, args []string) error {
	fs := newFlagSet(env, "int")
	offset := fs.IntP("offset", "o", 0, "Octet offset of the value")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usageError("int")
	}

	b, err := ParseHex(joinArgs(fs.Args()))
	if err != nil {
		return err
	}
	v, err := btutil.BytesToInt32(b, *offset)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, v)
	return nil
}

func runHex(env *Env, args []string) error {
	b, err := ParseHex(joinArgs(args))
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, btutil.BytesToString(b))
	return nil
}

func runUUIDs(env *Env, args []string) error {
	uuids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		u, err := uuid.Parse(arg)
		if err != nil {
			return fmt.Errorf("invalid UUID %q: %w", arg, err)
		}
		uuids = append(uuids, u)
	}
	fmt.Fprintln(env.Out, btutil.BytesToString(btutil.UUIDsToBytes(uuids)))
	return nil
}

func runRedact(env *Env, args []string) error {
	var device *btutil.Device
	switch len(args) {
	case 0:
	case 1:
		d, err := btutil.NewDevice(args[0])
		if err != nil {
			return err
		}
		device = d
	default:
		return usageError("redact")
	}
	fmt.Fprintln(env.Out, btutil.LoggableAddress(device))
	return nil
}

func runAddr(env *Env, args []string) error {
	if len(args) == 0 {
		return usageError("addr")
	}
	b, err := ParseHex(joinArgs(args))
	if err != nil {
		return err
	}
	addr, err := btutil.AddressFromBytes(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, addr)
	return nil
}

func runState(env *Env, args []string) error {
	if len(args) != 1 {
		return usageError("state")
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid state code %q: %w", args[0], err)
	}
	fmt.Fprintln(env.Out, btutil.AdapterStateString(code))
	return nil
}

func runUnits(env *Env, args []string) error {
	if len(args) != 1 {
		return usageError("units")
	}
	ms, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[0], err)
	}
	fmt.Fprintln(env.Out, btutil.MillisToUnit(ms))
	return nil
}
