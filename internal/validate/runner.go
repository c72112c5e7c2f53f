package validate

import (
	"os/exec"
)

// Runner abstracts subprocess execution so the build check can be stubbed in tests.
type Runner interface {
	LookPath(file string) (string, error)
	CombinedOutput(dir string, argv []string) ([]byte, error)
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// LookPath searches for an executable named file in the directories named by the PATH environment variable.
func (RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CombinedOutput runs argv in dir and returns its combined stdout and stderr.
func (RealRunner) CombinedOutput(dir string, argv []string) ([]byte, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
