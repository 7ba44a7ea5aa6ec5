package util

import (
	"github.com/bokysan/basexx/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrGeneric = 99

	// ErrEncodingBase is added to the enc.Kind of a failure, so encoding errors (111-114) never share an
	// exit code with the flags.ErrorType values.
	ErrEncodingBase = 100
)

// ExitCode returns the process exit code for the given error. Option parsing errors exit with the
// `flags.ErrorType`, encoding errors with ErrEncodingBase plus the `enc.Kind` of the failure and anything else with
// a generic error code - 99.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	var kind enc.Kind
	if errors.As(err, &kind) {
		return ErrEncodingBase + int(kind)
	}

	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code provided by
// ExitCode. Requests for help exit with 0 and are not logged.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
