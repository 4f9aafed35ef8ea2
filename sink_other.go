//go:build !unix

package logtee

import "os"

// setCloseOnExec is a no-op where FD_CLOEXEC does not apply.
func setCloseOnExec(*os.File) {}
