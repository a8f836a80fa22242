package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	Preflight Phase = iota
	Upload
	Generate
	Save
	Open
)

func (p Phase) String() string {
	switch p {
	case Preflight:
		return "preflight"
	case Upload:
		return "upload"
	case Generate:
		return "generate"
	case Save:
		return "save"
	case Open:
		return "open"
	default:
		return ""
	}
}

func preflightUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Preflight,
		Step:    1,
		Total:   2,
		Message: fmt.Sprintf("Checking %s...", name),
	}
}

func uploadingUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Upload,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Uploading %s...", name),
	}
}

func generatingUpdate(what string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Generate,
		Step:    1,
		Total:   2,
		Message: fmt.Sprintf("Generating %s...", what),
	}
}

func savedUpdate(title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Save,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Saved %q", title),
	}
}

func openedUpdate(title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Open,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Opened %q", title),
		Data:    title,
	}
}
