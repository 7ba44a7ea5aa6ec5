package commands

import (
	"bytes"
	"fmt"
	"github.com/bokysan/basexx/internal/logging"
	"github.com/bokysan/basexx/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
)

type testVector struct {
	decoded string
	encoded string
}

// rfcVectors are the test vectors from RFC 4648, section 10
var rfcVectors = map[string][]testVector{
	"Base64": {
		{"", ""}, {"f", "Zg=="}, {"fo", "Zm8="}, {"foo", "Zm9v"},
		{"foob", "Zm9vYg=="}, {"fooba", "Zm9vYmE="}, {"foobar", "Zm9vYmFy"},
	},
	"Base64URL": {
		{"", ""}, {"f", "Zg=="}, {"fo", "Zm8="}, {"foo", "Zm9v"},
		{"foob", "Zm9vYg=="}, {"fooba", "Zm9vYmE="}, {"foobar", "Zm9vYmFy"},
	},
	"Base32": {
		{"", ""}, {"f", "MY======"}, {"fo", "MZXQ===="}, {"foo", "MZXW6==="},
		{"foob", "MZXW6YQ="}, {"fooba", "MZXW6YTB"}, {"foobar", "MZXW6YTBOI======"},
	},
	"Base32Hex": {
		{"", ""}, {"f", "CO======"}, {"fo", "CPNG===="}, {"foo", "CPNMU==="},
		{"foob", "CPNMUOG="}, {"fooba", "CPNMUOJ1"}, {"foobar", "CPNMUOJ1E8======"},
	},
	"Base16": {
		{"", ""}, {"f", "66"}, {"fo", "666F"}, {"foo", "666F6F"},
		{"foob", "666F6F62"}, {"fooba", "666F6F6261"}, {"foobar", "666F6F626172"},
	},
}

// CheckCommand verifies the encoders against the RFC test vectors and round-trips their test patterns
type CheckCommand struct {
	Encoding string `short:"e" long:"encoding" yaml:"encoding" description:"Only check the given encoding"`

	stdout io.Writer
}

func NewCheckCommand() *CheckCommand {
	return &CheckCommand{
		stdout: defaultStdout(),
	}
}

func (c *CheckCommand) Execute(args []string) error {
	logging.SetupLogging()

	encoders := enc.All()
	if c.Encoding != "" {
		e, err := enc.FromName(c.Encoding)
		if err != nil {
			return err
		}
		encoders = []enc.Encoder{e}
	}

	var errs error
	for _, e := range encoders {
		checks, err := check(e)
		status := "OK"
		if err != nil {
			status = "FAILED"
			errs = multierror.Append(errs, err)
		}
		if _, err := fmt.Fprintf(c.stdout, "%-10s %-6s %d checks\n", e.Name(), status, checks); err != nil {
			return errors.WithStack(err)
		}
	}
	return errs
}

// check runs all checks for one encoder and returns how many were run
func check(e enc.Encoder) (int, error) {
	var errs error
	checks := 0

	for _, v := range rfcVectors[e.Name()] {
		checks++
		if encoded := e.Encode([]byte(v.decoded)); encoded != v.encoded {
			errs = multierror.Append(errs, errors.Errorf("%v: encoding %q gave %q, expected %q", e.Name(), v.decoded, encoded, v.encoded))
		}
		if decoded, err := e.Decode(v.encoded); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%v: could not decode %q", e.Name(), v.encoded))
		} else if string(decoded) != v.decoded {
			errs = multierror.Append(errs, errors.Errorf("%v: decoding %q gave %q, expected %q", e.Name(), v.encoded, decoded, v.decoded))
		}
	}

	for _, p := range e.TestPatterns() {
		// every prefix of the pattern, so each size of the last group is covered
		for n := 0; n <= len(p) && n <= 2*e.BlocksizeRaw(); n++ {
			checks++
			if err := roundTrip(e, []byte(p[:n])); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		checks++
		if err := roundTrip(e, []byte(p)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	log.Debugf("%v: %d checks", e.Name(), checks)
	return checks, errs
}

func roundTrip(e enc.Encoder, data []byte) error {
	encoded := e.Encode(data)
	if len(encoded) != enc.EncodedLen(e, len(data)) {
		return errors.Errorf("%v: %d bytes encoded to %d characters", e.Name(), len(data), len(encoded))
	}
	if strings.ContainsAny(strings.TrimRight(encoded, string(enc.Padding)), string(enc.Padding)) {
		return errors.Errorf("%v: padding inside of %q", e.Name(), encoded)
	}
	decoded, err := e.Decode(encoded)
	if err != nil {
		return errors.Wrapf(err, "%v: could not decode %q", e.Name(), encoded)
	}
	if !bytes.Equal(data, decoded) {
		return errors.Errorf("%v: round trip of %q gave %q", e.Name(), data, decoded)
	}
	return nil
}
