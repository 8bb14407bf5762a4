package audio

// Route identifies an audio routing target for the in-call audio path.
// Routes combine into bitmasks when describing the set of supported routes.
type Route uint8

const (
	RouteEarpiece Route = 1 << iota
	RouteBluetooth
	RouteWiredHeadset
	RouteSpeaker
)

func (r Route) String() string {
	switch r {
	case RouteEarpiece:
		return "earpiece"
	case RouteBluetooth:
		return "bluetooth"
	case RouteWiredHeadset:
		return "wired_headset"
	case RouteSpeaker:
		return "speaker"
	}

	return "unknown"
}

// State is an immutable snapshot of the audio routing and mute configuration
// at the moment it was reported. Each snapshot fully replaces the previous
// one; no history is retained.
type State struct {
	Muted           bool
	Route           Route
	SupportedRoutes Route
}

func (s State) IsZero() bool {
	return !s.Muted && s.Route == 0 && s.SupportedRoutes == 0
}

// Supports reports whether every route in the given mask is supported.
func (s State) Supports(route Route) bool {
	return route != 0 && s.SupportedRoutes&route == route
}
