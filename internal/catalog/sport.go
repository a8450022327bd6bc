package catalog

// Sport is selectable context for the final report. The clinic serves a
// fixed set of team sports.
type Sport struct {
	Name string
}

var sports = []Sport{
	{Name: "Football"},
	{Name: "Handball"},
	{Name: "Basketball"},
}

// Sports returns the selectable sports in fixed order.
func Sports() []Sport {
	out := make([]Sport, len(sports))
	copy(out, sports)
	return out
}

// SportByName resolves a sport case-sensitively by its display name.
func SportByName(name string) (Sport, bool) {
	for _, s := range sports {
		if s.Name == name {
			return s, true
		}
	}
	return Sport{}, false
}
