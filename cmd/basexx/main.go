package main

import (
	"fmt"
	"github.com/bokysan/basexx/internal/args"
	"github.com/bokysan/basexx/internal/commands"
	scFlags "github.com/bokysan/basexx/internal/flags"
	"github.com/bokysan/basexx/internal/server"
	"github.com/bokysan/basexx/internal/util"
	"github.com/bokysan/basexx/internal/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseXX is the main executable
type BaseXX struct {
	parser *flags.Parser
}

// NewBaseXX will create a new instance of BaseXX and initialize the parser
func NewBaseXX() *BaseXX {
	executablePath := path.Base(os.Args[0])

	bx := &BaseXX{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bx.setupGeneral()
	bx.addCommand("version", "Print the version", "Print the application version and exit", version.NewCommand())
	bx.addCommand("encode", "Encode data", "Encode the arguments or the input file, one line per input", commands.NewEncodeCommand())
	bx.addCommand("decode", "Decode data", "Decode the arguments or the input file. All inputs are processed, failures are reported together. Invalid input exits with 111 (length), 112 (character), 113 (encoding) or 114 (padding count)", commands.NewDecodeCommand())
	bx.addCommand("check", "Run the self-check", "Verify the encoders against the RFC 4648 test vectors and round-trip their test patterns", commands.NewCheckCommand())
	bx.addCommand("list", "List the encodings", "List the available encodings, their block sizes and alphabets", commands.NewListCommand())
	bx.addCommand("serve", "Run the HTTP API", "Serve POST /encode/{encoding}, POST /decode/{encoding} and GET /encodings. HTTPS is used when a certificate is set", server.NewHttpServer())

	return bx
}

// setupGeneral will configure general options
func (bx *BaseXX) setupGeneral() {
	if _, err := bx.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

func (bx *BaseXX) addCommand(command, shortDescription, longDescription string, data interface{}) {
	_, err := bx.parser.AddCommand(command, shortDescription, longDescription, data)
	util.MustErrorNilOrExit(err)
}

// main parses the command line (and the configuration file) and runs the selected command
func main() {
	bx := NewBaseXX()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := scFlags.NewYamlParser(bx.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := bx.parser.Parse()
	util.MustErrorNilOrExit(err)
}
