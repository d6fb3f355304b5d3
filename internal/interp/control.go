package interp

// outcomeKind distinguishes the two ways statement execution can complete
// without an error: falling off the end normally, or hitting a `return`.
// An explicit sum type over exception-style unwinding means block cleanup
// code cannot forget to run on a control-flow exit.
type outcomeKind int

const (
	outcomeNormal outcomeKind = iota
	outcomeReturn
)

// execOutcome is threaded up through statement execution. A RuntimeError is
// reported as a Go error alongside it instead of as a third outcomeKind,
// since Go already has a dedicated channel (the second return value) for
// that case.
type execOutcome struct {
	kind  outcomeKind
	value any
}

var outcomeNormalValue = execOutcome{kind: outcomeNormal}
