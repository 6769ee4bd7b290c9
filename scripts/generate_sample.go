package main

import (
	"encoding/json"
	"fmt"
	mrand "math/rand"
	"os"
	"strings"
)

// Doc is one generated input for bulk conversion runs.
type Doc struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

var (
	teams    = []string{"platform", "billing", "search", "mobile", "infra"}
	verbs    = []string{"shipped", "reviewed", "refactored", "measured", "documented"}
	nouns    = []string{"the parser", "the importer", "the cache", "the release", "the dashboard"}
	products = []string{"Atlas", "Beacon", "Carousel", "Drift", "Ember"}
	columns  = []string{"name", "owner", "status", "count", "notes"}
)

func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	const total = 200
	out := make([]Doc, 0, total)

	for i := 0; i < total; i++ {
		var d Doc
		switch i % 4 {
		case 0:
			d = Doc{Kind: "word", Text: genProse(mr)}
		case 1:
			d = Doc{Kind: "excel", Text: genTable(mr)}
		case 2:
			d = Doc{Kind: "ppt", Text: genOutline(mr)}
		default:
			d = Doc{Kind: "markdown", Text: genMarkdown(mr)}
		}
		d.Name = fmt.Sprintf("doc-%03d.%s", i+1, extFor(d.Kind))
		out = append(out, d)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func extFor(kind string) string {
	switch kind {
	case "word":
		return "docx"
	case "excel":
		return "csv"
	case "ppt":
		return "txt"
	default:
		return "md"
	}
}

func genProse(mr *mrand.Rand) string {
	var b strings.Builder
	team := pick(mr, teams)
	fmt.Fprintf(&b, "%s weekly report\n\n", strings.ToUpper(team[:1])+team[1:])
	fmt.Fprintf(&b, "Status: %s\n\n", pick(mr, []string{"on track", "at risk", "done"}))
	for p := 0; p < 2+mr.Intn(3); p++ {
		fmt.Fprintf(&b, "This week the %s team %s %s and %s %s.\n\n",
			team, pick(mr, verbs), pick(mr, nouns), pick(mr, verbs), pick(mr, nouns))
	}
	return b.String()
}

func genTable(mr *mrand.Rand) string {
	var b strings.Builder
	b.WriteString(strings.Join(columns, ",") + "\n")
	for r := 0; r < 3+mr.Intn(8); r++ {
		row := []string{
			pick(mr, products),
			pick(mr, teams),
			pick(mr, []string{"open", "closed", "blocked"}),
			fmt.Sprintf("%d", mr.Intn(100)),
			pick(mr, nouns),
		}
		b.WriteString(strings.Join(row, ",") + "\n")
	}
	return b.String()
}

func genOutline(mr *mrand.Rand) string {
	slides := make([]string, 0, 4)
	for s := 0; s < 2+mr.Intn(3); s++ {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", pick(mr, products), pick(mr, []string{"Launch", "Review", "Roadmap"}))
		for i := 0; i < 2+mr.Intn(3); i++ {
			fmt.Fprintf(&b, "- %s %s\n", pick(mr, verbs), pick(mr, nouns))
		}
		slides = append(slides, b.String())
	}
	return strings.Join(slides, "\n")
}

func genMarkdown(mr *mrand.Rand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s notes\n\n", pick(mr, products))
	for i := 0; i < 2+mr.Intn(3); i++ {
		fmt.Fprintf(&b, "- %s %s\n", pick(mr, verbs), pick(mr, nouns))
	}
	fmt.Fprintf(&b, "\n| item | owner |\n| --- | --- |\n| %s | %s |\n",
		pick(mr, nouns), pick(mr, teams))
	return b.String()
}

func pick(mr *mrand.Rand, pool []string) string {
	return pool[mr.Intn(len(pool))]
}
