package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lambdatest/internal/batch"
	"lambdatest/internal/invocation"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "lambdatest" {
		t.Errorf("Expected Use to be 'lambdatest', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	SetVersion("1.0.0")

	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Error executing version flag: %v", err)
	}

	expected := "lambdatest version 1.0.0\n"
	if out != expected {
		t.Errorf("Expected version output %q, got %q", expected, out)
	}
}

func TestSubcommands(t *testing.T) {
	foundCommands := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range []string{"run", "list", "resolve", "version"} {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

const projectTemplate = `
Resources:
  CreateOrderFunction:
    Type: AWS::Serverless::Function
    Properties:
      CodeUri: src/handlers/create-order
`

// stubSpawner prints a fixed response for every invocation.
type stubSpawner struct {
	exitCode int
	response string
}

func (s *stubSpawner) Spawn(_ context.Context, _ string, _ []string, stdout io.Writer) (int, error) {
	if s.exitCode != 0 {
		return s.exitCode, nil
	}
	_, err := io.WriteString(stdout, s.response)
	return 0, err
}

type project struct {
	eventsDir string
	template  string
	outputDir string
}

func newProject(t *testing.T, fixtures ...string) project {
	t.Helper()
	dir := t.TempDir()

	p := project{
		eventsDir: filepath.Join(dir, "events"),
		template:  filepath.Join(dir, "template.yaml"),
		outputDir: filepath.Join(dir, "out"),
	}
	require.NoError(t, os.MkdirAll(p.eventsDir, 0755))
	for _, f := range fixtures {
		require.NoError(t, os.WriteFile(filepath.Join(p.eventsDir, f+".json"), []byte(`{"httpMethod":"POST"}`), 0644))
	}
	require.NoError(t, os.WriteFile(p.template, []byte(projectTemplate), 0644))
	return p
}

func useSpawner(t *testing.T, s invocation.Spawner) {
	t.Helper()
	previous := spawner
	spawner = s
	t.Cleanup(func() { spawner = previous })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func (p project) flags() []string {
	return []string{"--events-dir", p.eventsDir, "--template", p.template}
}

func TestRunCommand_LocalSuccess(t *testing.T) {
	p := newProject(t, "create-order")
	useSpawner(t, &stubSpawner{response: `{"statusCode":200,"body":"{}"}`})

	args := append([]string{"run", "local", "--output-dir", p.outputDir}, p.flags()...)
	out, err := execute(t, args...)

	require.NoError(t, err)
	assert.Contains(t, out, "✅ create-order\n")
	assert.Contains(t, out, "🎉 All fixtures passed!")

	data, err := os.ReadFile(filepath.Join(p.outputDir, "create-order.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":200,"body":"{}"}`, string(data))
}

func TestRunCommand_FailingFixture(t *testing.T) {
	p := newProject(t, "create-order", "unknown")
	useSpawner(t, &stubSpawner{exitCode: 1})

	args := append([]string{"run", "local", "--output-dir", p.outputDir}, p.flags()...)
	out, err := execute(t, args...)

	assert.True(t, errors.Is(err, errFixturesFailed))
	assert.Contains(t, out, "💥 create-order exited with code 1")
	assert.Contains(t, out, "could not find function name for unknown")
	assert.Contains(t, out, "💔 2 of 2 fixtures failed")
}

func TestRunCommand_InputErrors(t *testing.T) {
	p := newProject(t, "create-order")
	useSpawner(t, &stubSpawner{})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown mode", []string{"run", "cloud"}, "second argument must be 'remote' or 'local'"},
		{"missing mode", []string{"run"}, "second argument must be 'remote' or 'local'"},
		{"unknown fixture", []string{"run", "local", "delete-order"}, "no lambdas specified; args: local,delete-order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--output-dir", p.outputDir)
			_, err := execute(t, append(args, p.flags()...)...)

			var inputErr *batch.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.want, inputErr.Message)
		})
	}
}

func TestRunCommand_PackageNameOnlyNeededRemotely(t *testing.T) {
	p := newProject(t, "create-order")
	useSpawner(t, &stubSpawner{response: `{"statusCode":200,"body":"{}"}`})
	// no package.json exists in the working directory of the test
	t.Setenv("LAMBDA_TEST_USE_PACKAGE_NAME", "true")

	args := append([]string{"run", "local", "--output-dir", p.outputDir}, p.flags()...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ create-order\n")

	args = append([]string{"run", "cloud", "--output-dir", p.outputDir}, p.flags()...)
	_, err = execute(t, args...)
	var inputErr *batch.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "second argument must be 'remote' or 'local'", inputErr.Message)
}

func TestListCommand(t *testing.T) {
	p := newProject(t, "create-order", "unknown")

	out, err := execute(t, append([]string{"list"}, p.flags()...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "CreateOrderFunction")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "2 fixture(s), 1 unresolved")
}

func TestResolveCommand(t *testing.T) {
	p := newProject(t, "create-order")

	out, err := execute(t, append([]string{"resolve", "create-order"}, p.flags()...)...)
	require.NoError(t, err)
	assert.Equal(t, "CreateOrderFunction\n", out)

	_, err = execute(t, append([]string{"resolve", "delete-order"}, p.flags()...)...)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "could not find function name for delete-order"))
}

func TestVersionCommand(t *testing.T) {
	SetVersion("0.4.0")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "lambdatest version 0.4.0\n", out)
}
