package dispatcher

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/logging"
)

// ShellRunner runs command through the platform shell: "sh -c" on Unix and
// "cmd /C" on Windows. A non-zero exit is reported as an error.
func ShellRunner(command string) ([]byte, error) {
	name, args := shellCommand(runtime.GOOS, command)
	logging.LogCommand(name, args)
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return out, errors.Wrapf(err, errors.ErrCommandFailed, "custom command %q failed", command)
	}
	return out, nil
}

func shellCommand(goos, command string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
