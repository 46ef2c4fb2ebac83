// Package progress renders sync notifications for a terminal or a log
// stream.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/arthur-debert/modsync/pkg/ui/styles"
	"github.com/pterm/pterm"
)

const barWidth = 20

// Observer writes sync notifications to an io.Writer
type Observer struct {
	mu     sync.Mutex
	out    io.Writer
	format Format
}

// New creates an observer. FormatAuto is treated as FormatText; resolve it
// against the real output first.
func New(out io.Writer, format Format) *Observer {
	if format == FormatAuto {
		format = FormatText
	}
	return &Observer{out: out, format: format}
}

func (o *Observer) rich() bool {
	return o.format == FormatTerminal
}

func (o *Observer) println(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintln(o.out, s)
}

// Status prints a phase message
func (o *Observer) Status(msg string) {
	if o.rich() {
		o.println(pterm.Info.Prefix.Text + " " + styles.Render("Status", msg))
		return
	}
	o.println(msg)
}

// Progress prints one line per mod with its position in the manifest
func (o *Observer) Progress(p types.SyncProgress) {
	counter := fmt.Sprintf("%d/%d", p.Current, p.Total)
	if !o.rich() {
		o.println(fmt.Sprintf("[%s] %s", counter, p.Name))
		return
	}
	o.println(fmt.Sprintf("%s %s %s",
		styles.Render("Counter", counter),
		pterm.Info.MessageStyle.Sprint(Bar(p.Current, p.Total, barWidth)),
		styles.Render("ModName", p.Name.String())))
}

// Complete prints the success line
func (o *Observer) Complete() {
	if o.rich() {
		o.println(pterm.Success.Prefix.Text + " " + styles.Render("Success", "Done"))
		return
	}
	o.println("Done")
}

// Error prints err with its error code
func (o *Observer) Error(err error) {
	o.println(FormatError(err, o.rich()))
}

// Bar renders a fixed-width text progress bar
func Bar(current, total, width int) string {
	filled := 0
	if total > 0 {
		filled = current * width / total
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatError renders err with its code and, for remote errors, the HTTP
// status
func FormatError(err error, rich bool) string {
	if err == nil {
		return ""
	}

	label := "Error"
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		label = fmt.Sprintf("Error [%s]", code)
	}

	if !rich {
		return fmt.Sprintf("%s: %s", label, err.Error())
	}
	return fmt.Sprintf("%s %s: %s",
		pterm.Error.Prefix.Text,
		styles.Render("Error", label),
		err.Error())
}
