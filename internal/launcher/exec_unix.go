//go:build unix

package launcher

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// replaceProcess execs the target in place. It only returns on failure.
func replaceProcess(path string, argv []string, environ []string) error {
	if err := unix.Exec(path, argv, environ); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
