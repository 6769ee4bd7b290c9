package htmldoc

import (
	"regexp"
	"strings"
)

var firstHeadingRe = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

// Title extracts the first Markdown heading text, or returns fallback
// when the document has none.
func Title(md, fallback string) string {
	if m := firstHeadingRe.FindStringSubmatch(md); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			return t
		}
	}
	return fallback
}

// Document wraps an HTML fragment into a standalone document that Word
// opens directly when saved with a .doc extension. The Office XML
// namespaces and the utf-8 meta are what make Word accept it; the style
// block keeps the result readable in a browser too.
func Document(title, fragment string) string {
	var b strings.Builder
	b.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word">`)
	b.WriteString("\n<head>\n")
	b.WriteString(`<meta charset="utf-8">`)
	b.WriteString("\n<title>")
	b.WriteString(escape(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString("body { font-family: Calibri, 'Segoe UI', sans-serif; line-height: 1.5; }\n")
	b.WriteString("pre { background: #f4f4f4; padding: 8px; }\n")
	b.WriteString("code { font-family: Consolas, monospace; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>")
	return b.String()
}
