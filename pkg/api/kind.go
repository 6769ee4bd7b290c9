package api

import "fmt"

// Kind classifies input content. The office kinds (word, excel, ppt)
// are conversion channels with their own parser/formatter pair; markdown
// and text are the passthrough/fallback classifications.
type Kind string

const (
	KindUnknown  Kind = ""
	KindWord     Kind = "word"
	KindExcel    Kind = "excel"
	KindPPT      Kind = "ppt"
	KindMarkdown Kind = "markdown"
	KindText     Kind = "text"
)

// Channels returns the office channels in declaration order. Detection
// and registry code must preserve this order.
func Channels() []Kind {
	return []Kind{KindWord, KindExcel, KindPPT}
}

func (k Kind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return string(k)
}

// ParseKind maps a user-supplied kind name (flag value, config entry)
// to a Kind. A few aliases are accepted for convenience.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "word", "doc", "document":
		return KindWord, nil
	case "excel", "table", "csv":
		return KindExcel, nil
	case "ppt", "slides", "powerpoint":
		return KindPPT, nil
	case "markdown", "md":
		return KindMarkdown, nil
	case "text", "plain":
		return KindText, nil
	default:
		return KindUnknown, fmt.Errorf("unknown kind %q (want word|excel|ppt|markdown|text)", s)
	}
}

// Direction selects which way a conversion runs.
type Direction string

const (
	ToMarkdown   Direction = "to-markdown"
	FromMarkdown Direction = "from-markdown"
)

func (d Direction) String() string { return string(d) }

// ParseDirection maps a user-supplied direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "to-markdown", "to-md", "md":
		return ToMarkdown, nil
	case "from-markdown", "from-md", "office":
		return FromMarkdown, nil
	default:
		return "", fmt.Errorf("unknown direction %q (want to-markdown|from-markdown)", s)
	}
}
