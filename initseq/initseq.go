// Package initseq runs boot-time initialisation routines once each, in a
// total order, before anything is scheduled.
//
// Steps are collected into an explicit Table by the entrypoint. Order is
// ascending (Level, Priority); steps that tie keep the order they were
// added in. A routine returns a status where 0 is success. Non-zero
// statuses are logged and otherwise ignored.
package initseq

import (
	"cmp"
	"io"
	"slices"

	"quickfeather-go/errcode"
	"quickfeather-go/x/conv"
)

// Level is a boot phase.
type Level uint8

const (
	PreKernel1 Level = iota // no kernel services; board and SoC setup
	PreKernel2
	PostKernel
	Application

	numLevels
)

func (l Level) String() string {
	switch l {
	case PreKernel1:
		return "PRE_KERNEL_1"
	case PreKernel2:
		return "PRE_KERNEL_2"
	case PostKernel:
		return "POST_KERNEL"
	case Application:
		return "APPLICATION"
	}
	return "LEVEL_?"
}

// Priorities run 0..MaxPriority within a level.
const MaxPriority = 99

// Commonly used priorities.
const (
	PrioKernelDefault = 40 // board setup
	PrioDevice        = 50 // device drivers
)

// Routine is one initialisation function.
type Routine func() int

// Step is one entry in the initialisation table.
type Step struct {
	Name     string
	Level    Level
	Priority int
	Fn       Routine
}

// Result records one executed step.
type Result struct {
	Step   Step
	Seq    int // registration order
	Status int
}

type entry struct {
	Step
	seq int
}

// Table is the ordered initialisation list.
type Table struct {
	// Log receives one line per executed step. Nil discards.
	Log io.Writer

	steps []entry
	next  Level // first level not yet run
	line  []byte
}

// Add appends s. It fails once any level has run, or if s is malformed.
func (t *Table) Add(s Step) error {
	if t.next != PreKernel1 {
		return &errcode.E{C: errcode.TableSealed, Op: "add", Msg: s.Name}
	}
	if s.Level >= numLevels {
		return &errcode.E{C: errcode.InvalidLevel, Op: "add", Msg: s.Name}
	}
	if s.Priority < 0 || s.Priority > MaxPriority {
		return &errcode.E{C: errcode.InvalidPriority, Op: "add", Msg: s.Name}
	}
	if s.Fn == nil {
		return &errcode.E{C: errcode.NilRoutine, Op: "add", Msg: s.Name}
	}
	t.steps = append(t.steps, entry{Step: s, seq: len(t.steps)})
	return nil
}

// MustAdd is Add for statically known steps; a malformed step panics.
func (t *Table) MustAdd(steps ...Step) {
	for _, s := range steps {
		if err := t.Add(s); err != nil {
			panic("initseq: " + err.Error())
		}
	}
}

// Len returns the number of registered steps.
func (t *Table) Len() int { return len(t.steps) }

func (t *Table) sorted() []entry {
	out := slices.Clone(t.steps)
	slices.SortStableFunc(out, func(a, b entry) int {
		if c := cmp.Compare(a.Level, b.Level); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return out
}

// Order returns the steps in execution order without running them.
func (t *Table) Order() []Step {
	es := t.sorted()
	out := make([]Step, len(es))
	for i, e := range es {
		out[i] = e.Step
	}
	return out
}

// RunLevel runs every step of level l. Levels must be run in ascending
// order, each once; skipped levels are run first.
func (t *Table) RunLevel(l Level) ([]Result, error) {
	if l >= numLevels {
		return nil, errcode.InvalidLevel
	}
	if l < t.next {
		return nil, &errcode.E{C: errcode.AlreadyRan, Op: "run", Msg: l.String()}
	}
	var out []Result
	for _, e := range t.sorted() {
		if e.Level < t.next || e.Level > l {
			continue
		}
		rc := e.Fn()
		t.logStep(e, rc)
		out = append(out, Result{Step: e.Step, Seq: e.seq, Status: rc})
	}
	t.next = l + 1
	return out, nil
}

// Run runs every remaining level.
func (t *Table) Run() ([]Result, error) {
	if t.next >= numLevels {
		return nil, &errcode.E{C: errcode.AlreadyRan, Op: "run"}
	}
	return t.RunLevel(numLevels - 1)
}

// Done reports whether every level has run.
func (t *Table) Done() bool { return t.next >= numLevels }

func (t *Table) logStep(e entry, rc int) {
	if t.Log == nil {
		return
	}
	b := append(t.line[:0], "[init] "...)
	b = append(b, e.Level.String()...)
	b = append(b, ' ')
	b = conv.AppendInt(b, int64(e.Priority))
	b = append(b, ' ')
	b = append(b, e.Name...)
	b = append(b, " rc="...)
	b = conv.AppendInt(b, int64(rc))
	if rc != 0 {
		b = append(b, " ("...)
		b = append(b, string(errcode.FromStatus(rc))...)
		b = append(b, ", ignored)"...)
	}
	b = append(b, '\n')
	t.line = b
	_, _ = t.Log.Write(b)
}
