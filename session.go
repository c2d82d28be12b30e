package pdfx

// State is the position of a session in the upload/extract lifecycle.
type State int

// State constants.
const (
	StateIdle State = iota
	StateUploading
	StateExtracting
	StateDone
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateExtracting:
		return "extracting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// transitions lists the legal moves out of each state.
var transitions = map[State][]State{
	StateIdle:       {StateUploading, StateExtracting},
	StateUploading:  {StateExtracting, StateIdle},
	StateExtracting: {StateDone, StateIdle},
	StateDone:       {StateIdle, StateExtracting},
}

// CanTransition reports whether a session may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Session holds the state of a single upload/extract flow.
type Session struct {
	State    State  `json:"state"`
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

// Transition moves the session to the given state.
// Returns ESTATE if the move is not allowed. Entering StateExtracting
// additionally requires a file ID.
func (s *Session) Transition(to State) error {
	if !CanTransition(s.State, to) {
		return Errorf(ESTATE, "cannot move from %s to %s", s.State, to)
	}
	if to == StateExtracting && s.FileID == "" {
		return Errorf(ESTATE, "No file has been uploaded")
	}
	s.State = to
	return nil
}

// Clear empties the session and returns it to StateIdle.
func (s *Session) Clear() {
	*s = Session{}
}
