package textwidget

// MinimapOptions controls the overview column at the right edge.
type MinimapOptions struct {
	Enabled bool
}

// Options configure a widget instance. Zero values mean "not set" when
// options are merged, so every field must stay comparable.
type Options struct {
	// Model is the text model the instance edits.
	Model Model

	Minimap    MinimapOptions
	FontFamily string

	LineNumbers bool
	ReadOnly    bool
	TabSize     int
	CharLimit   int
	Placeholder string
}

// Merge returns o with every non-zero field of override applied on top.
func (o Options) Merge(override Options) Options {
	merged := o
	if override.Model != nil {
		merged.Model = override.Model
	}
	if override.Minimap.Enabled {
		merged.Minimap = override.Minimap
	}
	if override.FontFamily != "" {
		merged.FontFamily = override.FontFamily
	}
	if override.LineNumbers {
		merged.LineNumbers = true
	}
	if override.ReadOnly {
		merged.ReadOnly = true
	}
	if override.TabSize > 0 {
		merged.TabSize = override.TabSize
	}
	if override.CharLimit != 0 {
		merged.CharLimit = override.CharLimit
	}
	if override.Placeholder != "" {
		merged.Placeholder = override.Placeholder
	}
	return merged
}
