//go:build unix

package logtee

import (
	"os"

	"golang.org/x/sys/unix"
)

// setCloseOnExec keeps owned log files from being inherited across exec.
func setCloseOnExec(f *os.File) {
	unix.CloseOnExec(int(f.Fd()))
}
