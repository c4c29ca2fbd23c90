package tasks

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Err     error  // Non-nil when the phase failed
}

// Operation phase enumeration
type Phase int

const (
	RestoreTheme Phase = iota
	RestoreSession
	RestoreFavorites
	WarmTrending
	WarmPopular
	FetchDetails
)

func (p Phase) String() string {
	switch p {
	case RestoreTheme:
		return "restore_theme"
	case RestoreSession:
		return "restore_session"
	case RestoreFavorites:
		return "restore_favorites"
	case WarmTrending:
		return "warm_trending"
	case WarmPopular:
		return "warm_popular"
	case FetchDetails:
		return "fetch_details"
	default:
		return "unknown"
	}
}

// emit sends an update without blocking callers that did not pass a channel.
func emit(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress != nil {
		progress <- update
	}
}
