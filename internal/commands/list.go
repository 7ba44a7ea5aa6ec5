package commands

import (
	"fmt"
	"github.com/bokysan/basexx/internal/util/enc"
	"github.com/pkg/errors"
	"io"
	"text/tabwriter"
)

// ListCommand prints the known encoders
type ListCommand struct {
	stdout io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{
		stdout: defaultStdout(),
	}
}

func (c *ListCommand) Execute(args []string) error {
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "CODE\tNAME\tBYTES\tSYMBOLS\tALPHABET"); err != nil {
		return errors.WithStack(err)
	}
	for _, e := range enc.All() {
		if _, err := fmt.Fprintf(w, "%c\t%s\t%d\t%d\t%s\n", e.Code(), e.Name(), e.BlocksizeRaw(), e.BlocksizeEncoded(), e.Alphabet()); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(w.Flush())
}
