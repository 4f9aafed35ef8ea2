package logtee

import (
	"strconv"

	"github.com/trickstertwo/xclock"
)

// TimestampPrefix is a ready-made PrefixFunc producing "[<unix>]: ".
// Time is read through xclock, so demos and tests can freeze it with
// xclock.SetDefault(xclock.NewFrozen(...)).
func TimestampPrefix() string {
	return "[" + strconv.FormatInt(xclock.Now().Unix(), 10) + "]: "
}
