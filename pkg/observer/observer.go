// Package observer provides types.Observer implementations that are not
// tied to a particular user interface.
package observer

import (
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/rs/zerolog"
)

// Nop discards every notification
type Nop struct{}

// Status implements types.Observer
func (Nop) Status(string) {}

// Progress implements types.Observer
func (Nop) Progress(types.SyncProgress) {}

// Complete implements types.Observer
func (Nop) Complete() {}

// Error implements types.Observer
func (Nop) Error(error) {}

// OrNop returns o, or a Nop observer when o is nil
func OrNop(o types.Observer) types.Observer {
	if o == nil {
		return Nop{}
	}
	return o
}

// Log writes notifications to a zerolog logger
type Log struct {
	Logger zerolog.Logger
}

// NewLog creates a logging observer
func NewLog(logger zerolog.Logger) *Log {
	return &Log{Logger: logger}
}

// Status logs msg at info level
func (l *Log) Status(msg string) {
	l.Logger.Info().Msg(msg)
}

// Progress logs each download step at debug level
func (l *Log) Progress(p types.SyncProgress) {
	l.Logger.Debug().
		Int("current", p.Current).
		Int("total", p.Total).
		Str("mod", string(p.Name)).
		Msg("Progress")
}

// Complete logs the end of a successful sync
func (l *Log) Complete() {
	l.Logger.Info().Msg("Sync complete")
}

// Error logs the error that stopped the sync
func (l *Log) Error(err error) {
	l.Logger.Error().Err(err).Msg("Sync failed")
}

// Multi fans every notification out to several observers in order
type Multi []types.Observer

// NewMulti combines observers, dropping nil entries
func NewMulti(observers ...types.Observer) Multi {
	m := make(Multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

// Status forwards msg to every observer
func (m Multi) Status(msg string) {
	for _, o := range m {
		o.Status(msg)
	}
}

// Progress forwards p to every observer
func (m Multi) Progress(p types.SyncProgress) {
	for _, o := range m {
		o.Progress(p)
	}
}

// Complete notifies every observer of success
func (m Multi) Complete() {
	for _, o := range m {
		o.Complete()
	}
}

// Error forwards err to every observer
func (m Multi) Error(err error) {
	for _, o := range m {
		o.Error(err)
	}
}
