package cli

// viewStack holds the open views bottom to top. The dashboard sits at index
// 0 and is never removed.
type viewStack []View

func (s viewStack) top() View {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s viewStack) ids() []ViewID {
	out := make([]ViewID, len(s))
	for i, v := range s {
		out[i] = v.ID()
	}
	return out
}

// setTop swaps in the updated copy of the top view.
func (s viewStack) setTop(v View) {
	if len(s) > 0 {
		s[len(s)-1] = v
	}
}

func (s viewStack) push(v View) viewStack {
	return append(s, v)
}

// pop closes and removes the top view unless only the dashboard is left.
func (s viewStack) pop() viewStack {
	if len(s) <= 1 {
		return s
	}
	closeView(s.top())
	return s[:len(s)-1]
}

// replace swaps the top view for v. Over the bare dashboard it pushes.
func (s viewStack) replace(v View) viewStack {
	if len(s) <= 1 {
		return s.push(v)
	}
	closeView(s.top())
	s[len(s)-1] = v
	return s
}

// unwind pops back to the dashboard.
func (s viewStack) unwind() viewStack {
	for len(s) > 1 {
		s = s.pop()
	}
	return s
}

func (s viewStack) closeAll() {
	for _, v := range s {
		closeView(v)
	}
}

// closer is implemented by views with in-flight work to cancel on exit.
type closer interface {
	Close()
}

func closeView(v View) {
	if c, ok := v.(closer); ok {
		c.Close()
	}
}
