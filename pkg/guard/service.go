package guard

import (
	"log/slog"
	"reflect"
	"sync/atomic"

	"github.com/mash-protocol/bt-go/pkg/host"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by the package-level helpers.
// Passing nil restores slog.Default().
func SetLogger(logger *slog.Logger) {
	pkgLogger.Store(logger)
}

func defaultLogger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// CheckServiceAvailable reports whether svc is present and available. The
// tag only labels the warning logged when it is not.
func CheckServiceAvailable(svc host.ServiceHandle, tag string) bool {
	ok, _ := serviceAvailable(svc, tag, defaultLogger())
	return ok
}

func serviceAvailable(svc host.ServiceHandle, tag string, logger *slog.Logger) (bool, string) {
	if isNil(svc) {
		if logger != nil {
			logger.Warn("service is nil", "tag", tag)
		}
		return false, "service is nil"
	}
	if !svc.IsAvailable() {
		if logger != nil {
			logger.Warn("service is not available", "tag", tag, "service", reflect.TypeOf(svc).String())
		}
		return false, "service is not available"
	}
	return true, ""
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
