package styles

// NewScribeTheme creates the default theme: ink blue on charcoal.
func NewScribeTheme() *Theme {
	return &Theme{
		Name:   "scribe",
		IsDark: true,

		Primary:   ParseHex("#2E86AB"), // Ink blue
		Secondary: ParseHex("#A23B72"), // Plum
		Tertiary:  ParseHex("#F18F01"), // Amber
		Accent:    ParseHex("#5FB49C"), // Sage

		BgBase:        ParseHex("#1F2329"),
		BgBaseLighter: ParseHex("#272C33"),
		BgSubtle:      ParseHex("#313842"),
		BgOverlay:     ParseHex("#3B4350"),
		BgHighlight:   ParseHex("#4A5363"),

		FgBase:     ParseHex("#E6E6E6"),
		FgMuted:    ParseHex("#A7ADB7"),
		FgSubtle:   ParseHex("#6E7681"),
		FgInverted: ParseHex("#15181D"),

		Border:      ParseHex("#4A5363"),
		BorderFocus: ParseHex("#2E86AB"),

		Success: ParseHex("#5FB49C"),
		Error:   ParseHex("#E5534B"),
		Warning: ParseHex("#F18F01"),
		Info:    ParseHex("#2E86AB"),

		Blue:      ParseHex("#2E86AB"),
		BlueLight: ParseHex("#7CC6E8"),
		Green:     ParseHex("#5FB49C"),
		Yellow:    ParseHex("#E9C46A"),
		Purple:    ParseHex("#9D79BC"),
		Pink:      ParseHex("#A23B72"),
		Orange:    ParseHex("#F18F01"),
		Cyan:      ParseHex("#56C5D0"),
	}
}

// NewMidnightTheme creates a high-contrast dark theme.
func NewMidnightTheme() *Theme {
	return &Theme{
		Name:   "midnight",
		IsDark: true,

		Primary:   ParseHex("#60a5fa"), // Sky 400
		Secondary: ParseHex("#a78bfa"), // Violet 400
		Tertiary:  ParseHex("#f472b6"), // Pink 400
		Accent:    ParseHex("#34d399"), // Emerald 400

		BgBase:        ParseHex("#0f172a"), // Slate 900
		BgBaseLighter: ParseHex("#1e293b"), // Slate 800
		BgSubtle:      ParseHex("#334155"), // Slate 700
		BgOverlay:     ParseHex("#475569"), // Slate 600
		BgHighlight:   ParseHex("#64748b"), // Slate 500

		FgBase:     ParseHex("#f8fafc"),
		FgMuted:    ParseHex("#cbd5e1"),
		FgSubtle:   ParseHex("#94a3b8"),
		FgInverted: ParseHex("#0f172a"),

		Border:      ParseHex("#334155"),
		BorderFocus: ParseHex("#60a5fa"),

		Success: ParseHex("#34d399"),
		Error:   ParseHex("#f87171"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#60a5fa"),

		Blue:      ParseHex("#60a5fa"),
		BlueLight: ParseHex("#93c5fd"),
		Green:     ParseHex("#34d399"),
		Yellow:    ParseHex("#fbbf24"),
		Purple:    ParseHex("#a78bfa"),
		Pink:      ParseHex("#f472b6"),
		Orange:    ParseHex("#fb923c"),
		Cyan:      ParseHex("#67e8f9"),
	}
}

// NewPaperTheme creates a light theme for bright terminals.
func NewPaperTheme() *Theme {
	return &Theme{
		Name:   "paper",
		IsDark: false,

		Primary:   ParseHex("#1D4ED8"),
		Secondary: ParseHex("#7C3AED"),
		Tertiary:  ParseHex("#C2410C"),
		Accent:    ParseHex("#047857"),

		BgBase:        ParseHex("#FAFAF7"),
		BgBaseLighter: ParseHex("#FFFFFF"),
		BgSubtle:      ParseHex("#EDEDE8"),
		BgOverlay:     ParseHex("#E2E2DC"),
		BgHighlight:   ParseHex("#D6D6CE"),

		FgBase:     ParseHex("#1F2328"),
		FgMuted:    ParseHex("#57606A"),
		FgSubtle:   ParseHex("#8C959F"),
		FgInverted: ParseHex("#FFFFFF"),

		Border:      ParseHex("#D0D7DE"),
		BorderFocus: ParseHex("#1D4ED8"),

		Success: ParseHex("#047857"),
		Error:   ParseHex("#B91C1C"),
		Warning: ParseHex("#B45309"),
		Info:    ParseHex("#1D4ED8"),

		Blue:      ParseHex("#1D4ED8"),
		BlueLight: ParseHex("#2563EB"),
		Green:     ParseHex("#047857"),
		Yellow:    ParseHex("#A16207"),
		Purple:    ParseHex("#7C3AED"),
		Pink:      ParseHex("#BE185D"),
		Orange:    ParseHex("#C2410C"),
		Cyan:      ParseHex("#0E7490"),
	}
}
