// Package view defines the deck's five selectable views and the pure
// mapping from selection keys to views. It has no dependencies and no
// side effects; routing and rendering live elsewhere.
package view

// View identifies one card in the deck.
type View int

const (
	// Home is the idle card: big clock, date, host line.
	Home View = iota
	// Alarm is the time-of-day alarm card.
	Alarm
	// Stopwatch is the elapsed-time card with laps.
	Stopwatch
	// Timer is the countdown card.
	Timer
	// Weather is the current-conditions card.
	Weather
)

// selectKeys maps every selection key to its view. Letters are mnemonic;
// digits follow deck order.
var selectKeys = map[string]View{
	"h": Home, "1": Home,
	"a": Alarm, "2": Alarm,
	"s": Stopwatch, "3": Stopwatch,
	"t": Timer, "4": Timer,
	"w": Weather, "5": Weather,
}

// Select maps a selection key to a view. Unknown keys fall back to Home.
// Total function; no error states.
func Select(key string) View {
	if v, ok := selectKeys[key]; ok {
		return v
	}
	return Home
}

// Lookup reports whether key is a selection key, and for which view.
func Lookup(key string) (View, bool) {
	v, ok := selectKeys[key]
	return v, ok
}

// Order returns the fixed deck order used for tab cycling and the header.
func Order() []View {
	return []View{Home, Alarm, Stopwatch, Timer, Weather}
}

// Parse resolves a view name as written in config ("home", "stopwatch").
func Parse(name string) (View, bool) {
	for _, v := range Order() {
		if v.String() == name {
			return v, true
		}
	}
	return Home, false
}

// String returns the view's identifier, used in config and zone IDs.
func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case Alarm:
		return "alarm"
	case Stopwatch:
		return "stopwatch"
	case Timer:
		return "timer"
	case Weather:
		return "weather"
	default:
		return "home"
	}
}

// Title returns the view's display title for the header tab bar.
func (v View) Title() string {
	switch v {
	case Home:
		return "Home"
	case Alarm:
		return "Alarm"
	case Stopwatch:
		return "Stopwatch"
	case Timer:
		return "Timer"
	case Weather:
		return "Weather"
	default:
		return "Home"
	}
}
