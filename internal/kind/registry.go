package kind

import "github.com/auroranest/markbridge/pkg/api"

// Channel binds a conversion kind to its file-extension associations
// and the format its from-markdown output saves as.
type Channel struct {
	Kind       api.Kind
	Extensions []string
	SaveExt    string
	SaveMIME   string
}

// Channels returns the office channels in declaration order. Detect
// checks extension sets in exactly this order, so reordering changes
// classification of ambiguous names.
//
// .txt is deliberately absent from the word channel: plain text should
// classify by content, not by name.
func Channels() []Channel {
	return []Channel{
		{
			Kind:       api.KindWord,
			Extensions: []string{"doc", "docx"},
			SaveExt:    ".doc",
			SaveMIME:   "application/msword",
		},
		{
			Kind:       api.KindExcel,
			Extensions: []string{"xls", "xlsx", "csv", "tsv"},
			SaveExt:    ".csv",
			SaveMIME:   "text/csv",
		},
		{
			Kind:       api.KindPPT,
			Extensions: []string{"ppt", "pptx"},
			SaveExt:    ".txt",
			SaveMIME:   "text/plain",
		},
	}
}

// SaveFormat returns the extension and MIME type for a conversion
// output. Everything converted to Markdown saves as .md; conversions
// from Markdown save in the target channel's format, with plain text as
// the fallback for non-channel kinds.
func SaveFormat(k api.Kind, dir api.Direction) (ext, mime string) {
	if dir == api.ToMarkdown {
		return ".md", "text/markdown"
	}
	for _, ch := range Channels() {
		if ch.Kind == k {
			return ch.SaveExt, ch.SaveMIME
		}
	}
	return ".txt", "text/plain"
}
