package version

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v string) {
		GitTag, Version = tag, v
	}(GitTag, Version)

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.2.3"
	require.Equal(t, "1.2.3", AppVersion())

	GitTag = "v1.2.4"
	require.Equal(t, "v1.2.4", AppVersion())
}

func Test_VersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &Command{out: out}
	require.NoError(t, cmd.Execute(nil))

	require.Contains(t, out.String(), "BASEXX")
	require.Contains(t, out.String(), "Go version")
	require.Equal(t, "Version details", cmd.String())
}
