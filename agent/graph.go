package agent

import "github.com/poiesic/autointel/core"

// state is a node in the turn-processing graph.
type state string

const (
	stateRouter state = "router"
	stateManual state = "manual"
	stateRecall state = "recall"
	stateReview state = "review"
	stateSafety state = "safety"
	stateDone   state = "done"
)

// transition moves the turn from one state to the next when its guard
// accepts the session.
type transition struct {
	from  state
	guard func(*core.Session) bool
	to    state
}

func always(*core.Session) bool { return true }

func actionIs(action core.Action) func(*core.Session) bool {
	return func(session *core.Session) bool {
		return session.NextAction == action
	}
}

// transitions is the full turn graph: the router fans out to exactly one
// source node, every source node funnels into safety, and safety
// terminates the turn.
var transitions = []transition{
	{stateRouter, actionIs(core.ActionManual), stateManual},
	{stateRouter, actionIs(core.ActionRecall), stateRecall},
	{stateRouter, actionIs(core.ActionReview), stateReview},
	{stateManual, always, stateSafety},
	{stateRecall, always, stateSafety},
	{stateReview, always, stateSafety},
	{stateSafety, always, stateDone},
}

// nextState resolves the first transition whose guard accepts the session.
// An unmatched state terminates the turn.
func nextState(current state, session *core.Session) state {
	for _, t := range transitions {
		if t.from == current && t.guard(session) {
			return t.to
		}
	}
	return stateDone
}
