package client

// ActionKind says what an interactive element does.
type ActionKind int

const (
	// ActionNone leaves the event to the browser.
	ActionNone ActionKind = iota
	// ActionNavigate writes a new fragment.
	ActionNavigate
	// ActionScroll brings a section of the current page into view.
	ActionScroll
	// ActionSubmit is the display-only contact form.
	ActionSubmit
)

// Action is a user interaction decoded from element attributes.
type Action struct {
	Kind   ActionKind
	Target string // path for ActionNavigate, element id for ActionScroll
}

// ActionFromAttrs decodes the data-navigate, data-scroll and data-inert
// attributes of the element an event reached.
func ActionFromAttrs(navigate, scroll string, inert bool) Action {
	switch {
	case navigate != "":
		return Action{Kind: ActionNavigate, Target: navigate}
	case scroll != "":
		return Action{Kind: ActionScroll, Target: scroll}
	case inert:
		return Action{Kind: ActionSubmit}
	}
	return Action{}
}

// Dispatch performs act and reports whether the browser default must be
// suppressed.
func (a *App) Dispatch(act Action) (preventDefault bool) {
	switch act.Kind {
	case ActionNavigate:
		a.resolver.Navigate(act.Target)
		return true
	case ActionScroll:
		a.mount.ScrollTo(act.Target)
		return true
	case ActionSubmit:
		a.log.Debug("contact form submission suppressed")
		return true
	}
	return false
}
