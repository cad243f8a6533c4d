package search

import "errors"

// ErrIllegalTransition indicates an Event is not valid from the current
// State.
var ErrIllegalTransition = errors.New("search: illegal state transition")

// State is one node of the solver-per-scramble state machine.
type State int

const (
	Idle State = iota
	LoadedRules
	TablesBuilt
	LoadedScramble
	Searching
	Solved
	Exhausted
	AbortedDepth
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case LoadedRules:
		return "LOADED_RULES"
	case TablesBuilt:
		return "TABLES_BUILT"
	case LoadedScramble:
		return "LOADED_SCRAMBLE"
	case Searching:
		return "SEARCHING"
	case Solved:
		return "SOLVED"
	case Exhausted:
		return "EXHAUSTED"
	case AbortedDepth:
		return "ABORTED_DEPTH"
	case Done:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Event names one transition the driving code requests.
type Event int

const (
	EventRulesLoaded Event = iota
	EventTablesBuilt
	EventTablesSkipped
	EventScrambleLoaded
	EventSearchStarted
	EventDepthIncreased
	EventSolved
	EventExhausted
	EventAbortedDepth
	EventNextScramble
	EventNoMoreScrambles
)

// transition is one legal (from, event) -> to edge.
type transition struct {
	from  State
	event Event
	to    State
}

var transitions = []transition{
	{Idle, EventRulesLoaded, LoadedRules},
	{LoadedRules, EventTablesBuilt, TablesBuilt},
	{LoadedRules, EventTablesSkipped, LoadedScramble}, // skipPrune: TABLES_BUILT never entered
	{TablesBuilt, EventScrambleLoaded, LoadedScramble},
	{LoadedScramble, EventScrambleLoaded, LoadedScramble}, // re-loading before searching (meta-commands only)
	{LoadedScramble, EventSearchStarted, Searching},
	{Searching, EventDepthIncreased, Searching},
	{Searching, EventSolved, Solved},
	{Searching, EventExhausted, Exhausted},
	{Searching, EventAbortedDepth, AbortedDepth},
	{Solved, EventNextScramble, LoadedScramble},
	{Exhausted, EventNextScramble, LoadedScramble},
	{AbortedDepth, EventNextScramble, LoadedScramble},
	{Solved, EventNoMoreScrambles, Done},
	{Exhausted, EventNoMoreScrambles, Done},
	{AbortedDepth, EventNoMoreScrambles, Done},
}

// Next returns the state reached by firing event from s, or
// ErrIllegalTransition if no such edge is declared.
func (s State) Next(event Event) (State, error) {
	for _, t := range transitions {
		if t.from == s && t.event == event {
			return t.to, nil
		}
	}

	return s, ErrIllegalTransition
}

// Machine drives one solver run across a sequence of scrambles, holding
// only the current State; it carries no search data of its own.
type Machine struct {
	state State
}

// NewMachine returns a Machine in the Idle state.
func NewMachine() *Machine {
	return &Machine{state: Idle}
}

// State returns the machine's current state.
func (m *Machine) State() State {
	return m.state
}

// Fire advances the machine by event, returning the new state, or leaves
// it unchanged and returns ErrIllegalTransition.
func (m *Machine) Fire(event Event) (State, error) {
	next, err := m.state.Next(event)
	if err != nil {
		return m.state, err
	}
	m.state = next

	return next, nil
}
