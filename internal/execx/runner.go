// Package execx wraps child-process execution behind an interface so the
// post-generation pipeline can be tested without spawning real commands.
package execx

import (
	"os"
	"os/exec"

	"github.com/create-zk-app/cza/internal/output"
)

// Runner executes external commands.
type Runner interface {
	// Run executes a command synchronously in dir, inheriting the
	// terminal. A non-zero exit status or spawn failure is the error.
	Run(name string, args []string, dir string) error

	// Start spawns a command in dir detached from the tool: it is never
	// waited on and its exit status is never observed. Only spawn
	// failures are reported.
	Start(name string, args []string, dir string) error
}

// New returns the os/exec backed runner.
func New() Runner {
	return &execRunner{}
}

type execRunner struct{}

func (r *execRunner) Run(name string, args []string, dir string) error {
	output.Debug("running command", "cmd", name, "args", args, "dir", dir)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func (r *execRunner) Start(name string, args []string, dir string) error {
	output.Debug("spawning detached command", "cmd", name, "args", args, "dir", dir)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	if err := cmd.Start(); err != nil {
		return err
	}

	// Detach so the child outlives this process without being reaped.
	return cmd.Process.Release()
}
