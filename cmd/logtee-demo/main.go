// Command logtee-demo walks through the logtee surface: tee fan-out with
// per-sink thresholds, a timestamp prefix callback, reset, path and
// rotating sinks, and the fatal path.
package main

import (
	"os"

	"github.com/trickstertwo/logtee"
)

func main() {
	log := logtee.New()
	defer log.Close() // no-op after Fatalf, which closes before exiting

	log.TeeFile(os.Stderr, logtee.LevelInfo)
	log.SetPrefixFunc(logtee.TimestampPrefix)

	log.Infof("%s, %s!\n", "Hello", "World")
	log.Errorf("Nooo!\n")
	log.Warningf("Hmm...\n")

	// Fan-out: one more copy per added sink as severity rises.
	log.TeeFile(os.Stderr, logtee.LevelWarning)
	log.TeeFile(os.Stderr, logtee.LevelError)
	log.Infof("Info 2\n")    // 1 copy
	log.Warningf("Warn 2\n") // 2 copies
	log.Errorf("Err 2\n")    // 3 copies

	log.Reset()
	log.Infof("What?\n") // no sinks, not emitted

	log.TeeFile(os.Stderr, logtee.LevelInfo)
	log.TeePath("log.txt", logtee.LevelInfo)
	log.TeeRotating("rotated.log", 10, logtee.LevelDebug)

	if err := os.Remove("/"); err != nil {
		log.PErrorf(err, "remove") // perror()-like
	}

	log.Infof("Info 3\n")
	log.Fatalf("Fatal\n")
	log.Infof("Not reached\n")
}
