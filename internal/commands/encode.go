package commands

import (
	"fmt"
	"github.com/bokysan/basexx/internal/logging"
	"github.com/bokysan/basexx/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// EncodeCommand encodes each argument (or the input file) and prints one line per input
type EncodeCommand struct {
	Encoding  string `short:"e" long:"encoding"   env:"BASEXX_ENCODING" yaml:"encoding"   description:"Encoding: base64, base64url, base32, base32hex or base16 (default: base64)"`
	Input     string `short:"i" long:"input"                            yaml:"input"      description:"File to encode when no arguments are given ('-' is standard input)"`
	NoNewline bool   `short:"n" long:"no-newline"                       yaml:"no-newline" description:"Do not print a newline after the encoded text"`

	stdin  io.Reader
	stdout io.Writer
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{
		Encoding: "base64",
		Input:    StandardInput,
		stdin:    defaultStdin(),
		stdout:   defaultStdout(),
	}
}

func (c *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	e, err := enc.FromName(c.Encoding)
	if err != nil {
		return err
	}

	inputs, err := readInput(args, c.Input, c.stdin)
	if err != nil {
		return err
	}

	for _, data := range inputs {
		log.Debugf("Encoding %d bytes using %v", len(data), e.Name())
		encoded := e.Encode(data)
		if !c.NoNewline {
			encoded += "\n"
		}
		if _, err := io.WriteString(c.stdout, encoded); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func (c *EncodeCommand) String() string {
	return fmt.Sprintf("encode(%v)", c.Encoding)
}
