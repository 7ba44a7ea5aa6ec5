package commands

import (
	"bufio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// StandardInput is the name of the input file which reads from standard input
const StandardInput = "-"

// readInput returns the command line arguments, if any were given. Otherwise it reads the whole of the
// input file (or standard input) and returns it as the only element.
func readInput(args []string, file string, stdin io.Reader) ([][]byte, error) {
	if len(args) > 0 {
		inputs := make([][]byte, len(args))
		for i, a := range args {
			inputs[i] = []byte(a)
		}
		return inputs, nil
	}

	var data []byte
	var err error
	if file == "" || file == StandardInput {
		log.Debugf("Reading standard input")
		data, err = ioutil.ReadAll(bufio.NewReader(stdin))
	} else {
		log.Debugf("Reading %v", file)
		data, err = ioutil.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read input")
	}
	return [][]byte{data}, nil
}

// readEncoded works like readInput, but returns text. Whitespace (e.g. line breaks of wrapped output)
// is removed from file contents. Arguments are used as given.
func readEncoded(args []string, file string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	inputs, err := readInput(nil, file, stdin)
	if err != nil {
		return nil, err
	}
	return []string{strings.Join(strings.Fields(string(inputs[0])), "")}, nil
}

func defaultStdin() io.Reader {
	return os.Stdin
}

func defaultStdout() io.Writer {
	return os.Stdout
}
