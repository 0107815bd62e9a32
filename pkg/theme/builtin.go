package theme

// thRegisterBuiltins registers all built-in themes.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thDraculaTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme is the dark neutral palette with a purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Border:      "#3e3e3e",
		BorderFocus: "#7C3AED",
		Title:       "#d4d4d4",
		Digit:       "#A78BFA",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		GaugeFilled: "#4ec970",
		GaugeEmpty:  "#3e3e3e",
		ChartLine:   "#64B5F6",

		HelpKey:  "#7C3AED",
		HelpDesc: "#6b6b6b",
	}
}

// thGruvboxTheme is the warm retro Gruvbox palette.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#ebdbb2",
		Digit:       "#fabd2f",

		StatusOK:    "#b8bb26",
		StatusWarn:  "#fabd2f",
		StatusError: "#fb4934",

		GaugeFilled: "#b8bb26",
		GaugeEmpty:  "#504945",
		ChartLine:   "#83a598",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thNordTheme is the cool arctic Nord palette.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Border:      "#3b4252",
		BorderFocus: "#88c0d0",
		Title:       "#eceff4",
		Digit:       "#81a1c1",

		StatusOK:    "#a3be8c",
		StatusWarn:  "#ebcb8b",
		StatusError: "#bf616a",

		GaugeFilled: "#a3be8c",
		GaugeEmpty:  "#3b4252",
		ChartLine:   "#81a1c1",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// thDraculaTheme is the high-contrast Dracula palette.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		Border:      "#44475a",
		BorderFocus: "#bd93f9",
		Title:       "#f8f8f2",
		Digit:       "#ff79c6",

		StatusOK:    "#50fa7b",
		StatusWarn:  "#f1fa8c",
		StatusError: "#ff5555",

		GaugeFilled: "#50fa7b",
		GaugeEmpty:  "#44475a",
		ChartLine:   "#8be9fd",

		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}
