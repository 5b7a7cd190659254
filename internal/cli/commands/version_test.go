package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bowlsplit/internal/cli/config"
	clitestutil "github.com/leapstack-labs/bowlsplit/internal/cli/testutil"
)

func TestVersionCommand_PrintsVersion(t *testing.T) {
	for _, version := range []string{"0.1.0", "2.0.0-rc1", "dev"} {
		t.Run(version, func(t *testing.T) {
			cmd := NewVersionCommand(version)
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())
			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			require.Len(t, lines, 2)
			assert.Equal(t, "bowlsplit v"+version, string(lines[0]))
			assert.Equal(t, "Bowling split judge built with Go", string(lines[1]))
		})
	}
}

func TestVersionCommand_ArgumentsAreJudged(t *testing.T) {
	tr := clitestutil.NewTestRendererAuto()
	ctx := context.WithValue(context.Background(), config.RendererKey(), tr.Renderer)

	cmd := NewVersionCommand("0.1.0")
	cmd.SetArgs([]string{"5"})
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Equal(t, "Illegal number\n", tr.Output())
	assert.NotContains(t, tr.Output(), "bowlsplit v")
}
