package invocation

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecSpawner_CapturesStdout(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	s := &ExecSpawner{Stderr: &stderr}

	code, err := s.Spawn(context.Background(), "sh", []string{"-c", `echo '{"statusCode":200}'; echo progress >&2`}, &stdout)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.JSONEq(t, `{"statusCode":200}`, stdout.String())
	assert.Equal(t, "progress\n", stderr.String())
}

func TestExecSpawner_ExitCode(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	code, err := (&ExecSpawner{}).Spawn(context.Background(), "sh", []string{"-c", "exit 3"}, &stdout)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecSpawner_LaunchFailure(t *testing.T) {
	var stdout bytes.Buffer
	code, err := NewExecSpawner().Spawn(context.Background(), "definitely-not-a-real-binary-7f3a", nil, &stdout)
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.Contains(t, err.Error(), "failed to start")
}

func TestCommands(t *testing.T) {
	local := LocalCommand("sam", "Fn", "events/fn.json", "")
	assert.Equal(t, "sam", local.Name)
	assert.True(t, local.CaptureStdout)
	assert.Equal(t, []string{"local", "invoke", "Fn", "--event", "events/fn.json"}, local.Args)

	remote := RemoteCommand("aws", "stack-Fn-XYZ", "events/fn.json", "out/fn.json")
	assert.False(t, remote.CaptureStdout)
	assert.Equal(t, "out/fn.json", remote.Args[len(remote.Args)-1])
	assert.Contains(t, remote.Args, "file://events/fn.json")
}
