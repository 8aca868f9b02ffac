// Package progress wraps github.com/briandowns/spinner with the
// tear-prevention pattern the teacher's pkg/ui/spinner.go uses: any log
// line written while the spinner is active stops it first and restarts it
// afterward, so the spinner frame never interleaves with log output.
package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/tessera-labs/wfc/internal/logging"
)

// Spinner reports per-problem solve progress (attempt N of 10, current
// problem name) without disturbing structured log output.
type Spinner struct {
	s       *spinner.Spinner
	verbose bool
}

// New creates a spinner with the given initial message. If verbose is
// true, the spinner never actually starts (verbose logging already
// produces enough line noise without an animated suffix on top of it).
func New(msg string, verbose bool) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s, verbose: verbose}
}

// Start begins the animation, unless running in verbose mode.
func (p *Spinner) Start() {
	if !p.verbose {
		p.s.Start()
	}
}

// Stop ends the animation.
func (p *Spinner) Stop() {
	p.s.Stop()
}

// UpdateMessage changes the spinner's suffix text, e.g. to report the
// current attempt number.
func (p *Spinner) UpdateMessage(format string, args ...any) {
	p.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, logs an info line, and restarts the spinner
// so it never tears mid-frame around the printed line.
func (p *Spinner) LogInfo(format string, args ...any) {
	wasRunning := p.s.Active()
	if wasRunning {
		p.s.Stop()
	}
	logging.Info(format, args...)
	if wasRunning && !p.verbose {
		p.s.Start()
	}
}

// LogWarning is LogInfo's warning-level counterpart.
func (p *Spinner) LogWarning(format string, args ...any) {
	wasRunning := p.s.Active()
	if wasRunning {
		p.s.Stop()
	}
	logging.Warning(format, args...)
	if wasRunning && !p.verbose {
		p.s.Start()
	}
}
