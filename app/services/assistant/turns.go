package assistant

import "sync"

// TurnGate serializes conversation turns per session. A turn takes a token
// before its extractor call; while the call is pending a newer turn for the
// same session may start, which bumps the sequence and invalidates the older
// token. Commit then refuses the stale turn so out-of-date extractions are
// discarded instead of applied.
type TurnGate struct {
	mu       sync.Mutex
	sessions map[string]*turnState
}

type turnState struct {
	mu  sync.Mutex
	seq uint64
}

func NewTurnGate() *TurnGate {
	return &TurnGate{
		sessions: make(map[string]*turnState),
	}
}

func (g *TurnGate) state(sessionID string) *turnState {
	g.mu.Lock()
	defer g.mu.Unlock()
	st, ok := g.sessions[sessionID]
	if !ok {
		st = &turnState{}
		g.sessions[sessionID] = st
	}
	return st
}

// Begin marks the start of a turn and returns its token.
func (g *TurnGate) Begin(sessionID string) uint64 {
	st := g.state(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.seq++
	return st.seq
}

// Commit runs apply under the session's lock, but only when no newer turn
// began since token was issued. It reports whether apply ran.
func (g *TurnGate) Commit(sessionID string, token uint64, apply func()) bool {
	st := g.state(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if token != st.seq {
		return false
	}
	apply()
	return true
}

// Do runs fn under the session's lock. Direct cart edits go through here so
// they cannot interleave with a committing turn's load-modify-put.
func (g *TurnGate) Do(sessionID string, fn func()) {
	st := g.state(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	fn()
}
