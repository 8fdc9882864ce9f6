package invocation

// Command is a fully prepared invocation of an external process.
type Command struct {
	Name string
	Args []string
	// CaptureStdout is set when the process writes the response to stdout. Otherwise the
	// process writes the output file itself.
	CaptureStdout bool
}

// LocalCommand invokes functionName in the local emulator with the given event file.
// The emulator prints the response to stdout.
func LocalCommand(bin, functionName, eventPath, templatePath string) Command {
	args := []string{"local", "invoke", functionName, "--event", eventPath}
	if templatePath != "" {
		args = append(args, "--template", templatePath)
	}
	return Command{Name: bin, Args: args, CaptureStdout: true}
}

// RemoteCommand invokes the deployed function target with the event file as payload and
// lets the CLI write the response to outputPath. The CLI read timeout is disabled so long
// running functions are not cut off.
func RemoteCommand(bin, target, eventPath, outputPath string) Command {
	return Command{
		Name: bin,
		Args: []string{
			"lambda", "invoke",
			"--function-name", target,
			"--payload", "file://" + eventPath,
			"--cli-binary-format", "raw-in-base64-out",
			"--cli-read-timeout", "0",
			outputPath,
		},
	}
}
