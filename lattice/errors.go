package lattice

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a MotionError.
type ErrorKind int

const (
	// KindFeasibility marks geometry that cannot be danced from the current
	// positions. The caller is expected to edit the sequence of calls.
	KindFeasibility ErrorKind = iota
	// KindInvariant marks an internal inconsistency, e.g. an asymmetric relation.
	KindInvariant
	// KindBudgetOverrun marks a figure producing more beats than it declared.
	KindBudgetOverrun
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindFeasibility:
		return "FEASIBILITY"
	case KindInvariant:
		return "INVARIANT"
	case KindBudgetOverrun:
		return "BUDGET"
	default:
		return "UNKNOWN"
	}
}

// Sentinels for use with errors.Is.
var (
	ErrInfeasible    = errors.New("infeasible motion")
	ErrInvariant     = errors.New("invariant violation")
	ErrBudgetOverrun = errors.New("beat budget overrun")
)

// MotionError is raised where motion for a dancer cannot be produced.
type MotionError struct {
	Kind   ErrorKind // what went wrong
	Dancer DancerID  // the dancer for which the problem was detected
	Issue  string    // description, phrased to follow the dancer's name
}

// Error implements the error interface.
func (e *MotionError) Error() string {
	return fmt.Sprintf("[%s] %s %s", e.Kind, e.Dancer, e.Issue)
}

// Is matches the sentinel for the error's kind.
func (e *MotionError) Is(target error) bool {
	switch e.Kind {
	case KindFeasibility:
		return target == ErrInfeasible
	case KindInvariant:
		return target == ErrInvariant
	case KindBudgetOverrun:
		return target == ErrBudgetOverrun
	}
	return false
}

// Infeasible creates a feasibility error for a dancer.
func Infeasible(dancer DancerID, format string, args ...interface{}) error {
	return &MotionError{Kind: KindFeasibility, Dancer: dancer, Issue: fmt.Sprintf(format, args...)}
}

// Invariant creates an invariant-violation error and traces it, as it always
// signals a bug.
func Invariant(dancer DancerID, format string, args ...interface{}) error {
	e := &MotionError{Kind: KindInvariant, Dancer: dancer, Issue: fmt.Sprintf(format, args...)}
	tracer().Errorf(e.Error())
	return e
}

// Overrun creates a budget-overrun error.
func Overrun(dancer DancerID, produced, declared float64) error {
	return &MotionError{
		Kind:   KindBudgetOverrun,
		Dancer: dancer,
		Issue:  fmt.Sprintf("has %g beats of keyframes to accomplish but figure has only %g beats", produced, declared),
	}
}

// KindOf extracts the kind of a MotionError wrapped somewhere in err.
func KindOf(err error) (ErrorKind, bool) {
	var me *MotionError
	if errors.As(err, &me) {
		return me.Kind, true
	}
	return 0, false
}
