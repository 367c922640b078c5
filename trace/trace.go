package trace

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlogic/core"
	"github.com/katalvlaran/lvlogic/puzzle"
)

// writer prints one plain-text line per solver event.
type writer struct {
	w io.Writer
}

// NewWriter returns an Observer that writes a textual trace of the solve
// run to w, one event per line.
func NewWriter(w io.Writer) puzzle.Observer {
	return &writer{w: w}
}

func (t *writer) Progress(name string) {
	fmt.Fprintf(t.w, "Progress: %s\n", name)
}

func (t *writer) Conflict(name string) {
	fmt.Fprintf(t.w, "Conflict: %s\n", name)
}

func (t *writer) Prune() {
	fmt.Fprintln(t.w, "Pruning: candidate is not consistent.")
}

func (t *writer) Branch(index int) {
	fmt.Fprintf(t.w, "Guessing: index %d.\n", index)
}

func (t *writer) Solution(*core.Solution) {
	fmt.Fprintln(t.w, "Solution!")
}

// logger emits structured solver events through logrus.
type logger struct {
	log logrus.FieldLogger
}

// NewLogger returns an Observer that logs solver events through log.
// Per-deduction events (progress, conflict, prune, branch) are logged at
// Debug level; discovered solutions at Info level.
func NewLogger(log logrus.FieldLogger) puzzle.Observer {
	return &logger{log: log}
}

func (t *logger) Progress(name string) {
	t.log.WithField("constraint", name).Debug("progress")
}

func (t *logger) Conflict(name string) {
	t.log.WithField("constraint", name).Debug("conflict")
}

func (t *logger) Prune() {
	t.log.Debug("pruning inconsistent candidate")
}

func (t *logger) Branch(index int) {
	t.log.WithField("slot", index).Debug("guessing")
}

func (t *logger) Solution(s *core.Solution) {
	t.log.WithField("slots", s.Len()).Info("solution found")
}
