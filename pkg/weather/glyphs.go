package weather

// owGlyph maps an OpenWeather condition code group to a display glyph.
// Code groups: 2xx thunderstorm, 3xx drizzle, 5xx rain, 6xx snow,
// 7xx atmosphere (mist/fog/dust), 800 clear, 80x clouds.
func owGlyph(id int) string {
	switch {
	case id >= 200 && id < 300:
		return "⛈"
	case id >= 300 && id < 400:
		return "🌦"
	case id >= 500 && id < 600:
		return "🌧"
	case id >= 600 && id < 700:
		return "❄"
	case id >= 700 && id < 800:
		return "🌫"
	case id == 800:
		return "☀"
	case id > 800 && id < 900:
		return "☁"
	default:
		return "🌡"
	}
}
