package version

import (
	"fmt"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version and build details of the application
type Command struct {
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

func (i *Command) Execute(args []string) error {
	PrintVersion(i.out)
	fmt.Fprintf(i.out, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", orUnknown(GitTag))
	fmt.Fprintf(i.out, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", orUnknown(GitState))
	fmt.Fprintf(i.out, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", orUnknown(GoVersion))
	return nil
}

func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" BASEXX "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+DarkGray+"/"+White+"%+v"+Reset+"\n",
		AppVersion(), orUnknown(BuildDate), orUnknown(GitBranch), orUnknown(GitCommit))
}
