package store

// ChatSession is the in-memory conversation state for one caller-supplied
// session key. Turns is append-only; prompts only ever read a bounded tail.
type ChatSession struct {
	ID    string   `json:"id"`
	Turns []string `json:"turns"`
}

const (
	// DefaultSessionID is used when the caller does not supply a session key.
	DefaultSessionID = "default"
)
