package commands

import (
	"github.com/bokysan/basexx/internal/logging"
	"github.com/bokysan/basexx/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

const (
	OutputRaw  = "raw"
	OutputHex  = "hex"
	OutputDump = "dump"
)

// DecodeCommand decodes every argument (or the input file). All of the inputs are processed; the errors
// of the ones which could not be decoded are returned together.
type DecodeCommand struct {
	Encoding string `short:"e" long:"encoding" env:"BASEXX_ENCODING" yaml:"encoding" description:"Encoding: base64, base64url, base32, base32hex or base16 (default: base64)"`
	Input    string `short:"i" long:"input"                          yaml:"input"    description:"File to decode when no arguments are given ('-' is standard input)"`
	Output   string `short:"o" long:"output"                         yaml:"output"   description:"Output format (default: raw)" choice:"raw" choice:"hex" choice:"dump"`

	stdin  io.Reader
	stdout io.Writer
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{
		Encoding: "base64",
		Input:    StandardInput,
		Output:   OutputRaw,
		stdin:    defaultStdin(),
		stdout:   defaultStdout(),
	}
}

func (c *DecodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	e, err := enc.FromName(c.Encoding)
	if err != nil {
		return err
	}

	inputs, err := readEncoded(args, c.Input, c.stdin)
	if err != nil {
		return err
	}

	var errs error
	for i, text := range inputs {
		data, err := e.Decode(text)
		if err != nil {
			log.WithError(err).Debugf("Input #%d is not valid %v", i+1, e.Name())
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode input #%d", i+1))
			continue
		}
		log.Debugf("Decoded %d characters into %d bytes using %v", len(text), len(data), e.Name())
		if err := c.write(data); err != nil {
			return err
		}
	}
	return errs
}

func (c *DecodeCommand) write(data []byte) error {
	var err error
	switch c.Output {
	case OutputHex:
		_, err = io.WriteString(c.stdout, enc.Base16Encoding.Encode(data)+"\n")
	case OutputDump:
		_, err = io.WriteString(c.stdout, spew.Sdump(data))
	default:
		_, err = c.stdout.Write(data)
	}
	return errors.WithStack(err)
}
