package styles

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/glamour/v2/ansi"
)

// ChromaEntries maps token types onto the current theme's colors.
func ChromaEntries() chroma.StyleEntries {
	t := CurrentTheme()

	return chroma.StyleEntries{
		chroma.Text:                colorToHex(t.FgBase),
		chroma.Error:               colorToHex(t.Error),
		chroma.Comment:             colorToHex(t.FgMuted) + " italic",
		chroma.CommentPreproc:      colorToHex(t.Warning),
		chroma.Keyword:             colorToHex(t.Primary) + " bold",
		chroma.KeywordReserved:     colorToHex(t.Accent) + " bold",
		chroma.KeywordNamespace:    colorToHex(t.Purple),
		chroma.KeywordType:         colorToHex(t.Blue),
		chroma.Operator:            colorToHex(t.Orange),
		chroma.Punctuation:         colorToHex(t.FgSubtle),
		chroma.Name:                colorToHex(t.FgBase),
		chroma.NameBuiltin:         colorToHex(t.Yellow),
		chroma.NameTag:             colorToHex(t.Pink),
		chroma.NameAttribute:       colorToHex(t.Cyan),
		chroma.NameClass:           colorToHex(t.Secondary) + " bold",
		chroma.NameConstant:        colorToHex(t.Accent),
		chroma.NameFunction:        colorToHex(t.BlueLight),
		chroma.LiteralNumber:       colorToHex(t.Yellow),
		chroma.LiteralString:       colorToHex(t.Green),
		chroma.LiteralStringEscape: colorToHex(t.Orange),
		chroma.GenericDeleted:      colorToHex(t.Error),
		chroma.GenericInserted:     colorToHex(t.Success),
		chroma.GenericEmph:         "italic",
		chroma.GenericStrong:       "bold",
	}
}

// ChromaStyle builds a chroma style for the current theme. Invalid entries
// fall back to chroma's default style.
func ChromaStyle() *chroma.Style {
	t := CurrentTheme()
	style, err := chroma.NewStyle(t.Name, ChromaEntries())
	if err != nil {
		return chroma.MustNewStyle("fallback", chroma.StyleEntries{chroma.Text: colorToHex(t.FgBase)})
	}
	return style
}

// markdownChroma colors fenced code blocks inside rendered markdown.
func (t *Theme) markdownChroma() *ansi.Chroma {
	c := func(col string) ansi.StylePrimitive { return ansi.StylePrimitive{Color: stringPtr(col)} }
	return &ansi.Chroma{
		Text:           c(colorToHex(t.FgBase)),
		Error:          c(colorToHex(t.Error)),
		Comment:        ansi.StylePrimitive{Color: stringPtr(colorToHex(t.FgMuted)), Italic: boolPtr(true)},
		CommentPreproc: c(colorToHex(t.Warning)),
		Keyword:        ansi.StylePrimitive{Color: stringPtr(colorToHex(t.Primary)), Bold: boolPtr(true)},
		KeywordType:    c(colorToHex(t.Blue)),
		Operator:       c(colorToHex(t.Orange)),
		Punctuation:    c(colorToHex(t.FgSubtle)),
		Name:           c(colorToHex(t.FgBase)),
		NameBuiltin:    c(colorToHex(t.Yellow)),
		NameFunction:   c(colorToHex(t.BlueLight)),
		LiteralNumber:  c(colorToHex(t.Yellow)),
		LiteralString:  c(colorToHex(t.Green)),
		Background:     ansi.StylePrimitive{BackgroundColor: stringPtr(colorToHex(t.BgSubtle))},
	}
}
