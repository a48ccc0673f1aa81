package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mash-protocol/bt-go/pkg/btutil"
)

func runCommand(t *testing.T, env *Env, name string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	if env == nil {
		env = &Env{}
	}
	env.Out = &buf
	err := Run(env, name, args)
	return strings.TrimSuffix(buf.String(), "\n"), err
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"0102", []byte{0x01, 0x02}},
		{"01 02", []byte{0x01, 0x02}},
		{"01:02", []byte{0x01, 0x02}},
		{"0x0102", []byte{0x01, 0x02}},
		{"AA-bb", []byte{0xaa, 0xbb}},
		{"", []byte{}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("ParseHex(%q) = %x, want %x", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"0", "zz", "01 0"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) expected error", in)
		}
	}
}

func TestCodecCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"01", "02"}, "513"},
		{"short", []string{"ffff"}, "-1"},
		{"short", []string{"0x0080ff"}, "-32768"},
		{"int", []string{"--offset", "1", "00 01 00 00 00"}, "1"},
		{"int", []string{"ffffff7f"}, "2147483647"},
		{"hex", []string{"0102"}, "01 02"},
		{"hex", nil, ""},
		{"uuids", []string{"00000000-0000-0000-0000-000000000001"}, strings.Repeat("00 ", 15) + "01"},
		{"uuids", nil, ""},
		{"redact", nil, btutil.MissingAddress},
		{"redact", []string{"aa:bb:cc:dd:ee:ff"}, "xx:xx:xx:xx:EE:FF"},
		{"addr", []string{"aabbccddeeff"}, "AA:BB:CC:DD:EE:FF"},
		{"state", []string{"12"}, "STATE_ON"},
		{"state", []string{"99"}, "UNKNOWN"},
		{"units", []string{"100"}, "160"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := runCommand(t, nil, tt.name, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"short", nil, ErrUsage},
		{"short", []string{"01"}, btutil.ErrInvalidLength},
		{"int", []string{"--offset", "2", "0000"}, btutil.ErrInvalidLength},
		{"addr", []string{"aabb"}, btutil.ErrInvalidLength},
		{"redact", []string{"not-an-address"}, btutil.ErrInvalidAddress},
		{"state", nil, ErrUsage},
		{"nope", nil, ErrUnknownCommand},
	}

	for _, tt := range tests {
		_, err := runCommand(t, nil, tt.name, tt.args...)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s %v: error = %v, want %v", tt.name, tt.args, err, tt.want)
		}
	}

	if _, err := runCommand(t, nil, "uuids", "not-a-uuid"); err == nil {
		t.Error("uuids: expected error for invalid UUID")
	}
}

func TestVersion(t *testing.T) {
	got, err := runCommand(t, nil, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "bt-util "+Version {
		t.Errorf("version = %q", got)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}

	var buf bytes.Buffer
	PrintUsage(&buf)
	for _, name := range names {
		if !strings.Contains(buf.String(), registry[name].usage) {
			t.Errorf("usage missing %q", name)
		}
	}
}
