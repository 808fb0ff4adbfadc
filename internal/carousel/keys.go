package carousel

// Action is what a key press asks the carousel to do.
type Action int

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionPrev:
		return "prev"
	case ActionNext:
		return "next"
	case ActionClose:
		return "close"
	default:
		return "none"
	}
}

// KeyAction maps both DOM key names and terminal key names.
func KeyAction(key string) Action {
	switch key {
	case "ArrowLeft", "left", "h":
		return ActionPrev
	case "ArrowRight", "right", "l":
		return ActionNext
	case "Escape", "esc", "q":
		return ActionClose
	default:
		return ActionNone
	}
}

// HandleKey applies a key press. Close closes the controller; unmapped keys
// are ignored and return a zero Transition with a nil error.
func (c *Controller) HandleKey(key string) (Action, Transition, error) {
	action := KeyAction(key)
	var (
		tr  Transition
		err error
	)
	switch action {
	case ActionPrev:
		tr, err = c.Prev()
	case ActionNext:
		tr, err = c.Next()
	case ActionClose:
		c.Close()
	}
	return action, tr, err
}
