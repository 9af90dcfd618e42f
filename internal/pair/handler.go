package pair

import "fmt"

// Action names exposed to a host dispatcher.
const (
	ActionInsertText     = "pair.insertText"
	ActionDeleteBackward = "pair.deleteBackward"
)

// Action is a dispatched request: a name plus the candidate text for
// insert actions.
type Action struct {
	Name string
	Text string
}

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates the action was handled by this subsystem.
	StatusOK ResultStatus = iota
	// StatusPass indicates the host should fall through to its default
	// behavior. A pass is not an error.
	StatusPass
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPass:
		return "pass"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	Status ResultStatus
	Error  error
}

// Handled creates a handled result.
func Handled() Result {
	return Result{Status: StatusOK}
}

// Pass creates a fall-through result.
func Pass() Result {
	return Result{Status: StatusPass}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Error: fmt.Errorf(format, args...)}
}

// IsHandled returns true if the result indicates the action was taken.
func (r Result) IsHandled() bool {
	return r.Status == StatusOK
}

// Handler adapts a Session to a dispatcher-style namespace handler so a
// host can route key events to the pair subsystem and bind the
// deletion command to its backward-delete key.
type Handler struct {
	session *Session
}

// NewHandler creates a handler over a session.
func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// Namespace returns the handler namespace.
func (h *Handler) Namespace() string {
	return "pair"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionInsertText, ActionDeleteBackward:
		return true
	}
	return false
}

// HandleAction processes a pair action.
func (h *Handler) HandleAction(action Action) Result {
	switch action.Name {
	case ActionInsertText:
		if h.session.HandleInsertion(action.Text) {
			return Handled()
		}
		return Pass()
	case ActionDeleteBackward:
		if h.session.DeleteBracketPair() {
			return Handled()
		}
		return Pass()
	default:
		return Errorf("unknown action in namespace pair: %s", action.Name)
	}
}
