package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"reelfeed/internal/config"
)

// Command is the fully-resolved launch invocation for the legacy Python
// application: which environment manager to call, which named environment to
// run in, and the flags handed to the application itself.
type Command struct {
	Manager     string
	Environment string
	Interpreter string
	Entrypoint  string
	AppDir      string
	Root        string
	Host        string
	Port        int
}

// FromConfig builds the launch command from configuration.
func FromConfig(cfg *config.Config) Command {
	return Command{
		Manager:     cfg.Launcher.Manager,
		Environment: cfg.Launcher.Environment,
		Interpreter: cfg.Launcher.Interpreter,
		Entrypoint:  cfg.Launcher.Entrypoint,
		AppDir:      cfg.Launcher.AppDir,
		Root:        cfg.Launcher.Root,
		Host:        cfg.Launcher.Host,
		Port:        cfg.Launcher.Port,
	}
}

// Argv returns the argument vector executed on launch. The data root is a
// single element regardless of spaces; no shell is involved.
func (c Command) Argv() []string {
	return []string{
		c.Manager, "run", "-n", c.Environment,
		c.Interpreter, c.Entrypoint,
		"--root", c.Root,
		"--host", c.Host,
		"--port", strconv.Itoa(c.Port),
	}
}

// Run changes into the application directory and replaces the current
// process with the environment-manager invocation. On success it does not
// return; the caller's process image is gone. Failures are returned for the
// caller to surface: a chdir failure must terminate with exit status 1, and
// an unresolvable manager binary surfaces the OS lookup error unchanged.
func (c Command) Run() error {
	if err := os.Chdir(c.AppDir); err != nil {
		return &ChdirError{Dir: c.AppDir, Err: err}
	}

	argv := c.Argv()
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("locate %s: %w", argv[0], err)
	}
	return replaceProcess(path, argv, os.Environ())
}

// ChdirError reports a failed working-directory change, the one failure the
// launcher detects itself.
type ChdirError struct {
	Dir string
	Err error
}

func (e *ChdirError) Error() string {
	return fmt.Sprintf("change directory to %s: %v", e.Dir, e.Err)
}

func (e *ChdirError) Unwrap() error {
	return e.Err
}
