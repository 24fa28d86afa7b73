package spinner

import (
	"time"

	"github.com/briandowns/spinner"
)

// Start runs a terminal spinner with the given message while a slow
// operation (host info gathering) is in flight.
// Returns a stop function to halt and clear the spinner:
//
//	stop := spinner.Start("Gathering host info")
//	info, err := platformservice.GatherHostInfo(ctx)
//	stop()
func Start(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}
