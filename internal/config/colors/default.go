package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status
		Success: "#5FD75F",
		Warning: "#FFD700",

		// Errors
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
