package styles

const (
	CheckIcon    string = "✓"
	ErrorIcon    string = "✗"
	WarningIcon  string = "⚠"
	InfoIcon     string = "ℹ"
	DocumentIcon string = "📄"
	DirtyIcon    string = "●"
	CleanIcon    string = "○"
)
