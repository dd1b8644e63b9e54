package contextkeys

type contextKey string

const (
	// ActorIDKey holds the caller-supplied identity used for
	// performed_by attribution. The core does not authenticate.
	ActorIDKey   contextKey = "ActorID"
	ActorNameKey contextKey = "ActorName"
)
