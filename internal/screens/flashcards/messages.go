package flashcards

// sessionStartedMsg reports the result of persisting the session start event.
type sessionStartedMsg struct {
	Err error
}
