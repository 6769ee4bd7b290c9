package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/auroranest/markbridge/pkg/api"
)

// runCLI executes a fresh root command against an isolated config and
// returns the combined output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if stdin != "" {
		root.SetIn(strings.NewReader(stdin))
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// isolatedConfig returns a --config path that does not exist, so every
// run sees pure defaults regardless of the host environment.
func isolatedConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestConvertCSVFile(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	csv := writeInput(t, tmp, "report.csv", "name,qty\napples,4\npears,2\n")

	out, err := runCLI(t, "", "--config", cfg, "convert", csv)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	for _, want := range []string{"| name | qty |", "| apples | 4 |", "| pears | 2 |"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestConvertStdinWithKind(t *testing.T) {
	cfg := isolatedConfig(t)
	outline := "Team Update\n- shipped the parser\n- fixed the tests\n\nNext\n- write docs\n"

	out, err := runCLI(t, outline, "--config", cfg, "convert", "--from", "ppt")
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "# Team Update") {
		t.Fatalf("missing first slide heading:\n%s", out)
	}
	if !strings.Contains(out, "## Next") {
		t.Fatalf("missing second slide heading:\n%s", out)
	}
}

func TestConvertToCSV(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	md := writeInput(t, tmp, "table.md", "| a | b |\n| --- | --- |\n| 1 | 2 |\n")

	out, err := runCLI(t, "", "--config", cfg, "convert", "--to", "excel", md)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "a,b\n1,2\n") {
		t.Fatalf("unexpected csv output:\n%s", out)
	}
}

func TestConvertFromMarkdownNeedsTarget(t *testing.T) {
	cfg := isolatedConfig(t)
	_, err := runCLI(t, "# hi\n", "--config", cfg, "convert", "--direction", "from-markdown")
	if err == nil || !strings.Contains(err.Error(), "needs --to") {
		t.Fatalf("expected target-kind error, got %v", err)
	}
}

func TestConvertEmptyInputErrors(t *testing.T) {
	cfg := isolatedConfig(t)
	_, err := runCLI(t, "\n\n", "--config", cfg, "convert")
	if err == nil || !strings.Contains(err.Error(), "nothing to convert") {
		t.Fatalf("expected empty-input error, got %v", err)
	}
}

func TestConvertSaveDerivedName(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	outDir := filepath.Join(tmp, "out")
	csv := writeInput(t, tmp, "report.csv", "name,qty\napples,4\n")

	out, err := runCLI(t, "", "--config", cfg, "--output-dir", outDir, "convert", "--save", csv)
	if err != nil {
		t.Fatalf("convert --save: %v\n%s", err, out)
	}
	saved := filepath.Join(outDir, "report.md")
	if !strings.Contains(out, "Wrote "+saved) {
		t.Fatalf("missing wrote line:\n%s", out)
	}
	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("read saved: %v", err)
	}
	if !strings.Contains(string(data), "| name | qty |") {
		t.Fatalf("saved content wrong:\n%s", data)
	}

	// Identical content skips the rewrite.
	out2, err := runCLI(t, "", "--config", cfg, "--output-dir", outDir, "convert", "--save", csv)
	if err != nil {
		t.Fatalf("second save: %v\n%s", err, out2)
	}
	if !strings.Contains(out2, "Unchanged "+saved) {
		t.Fatalf("missing unchanged line:\n%s", out2)
	}
}

func TestConvertOutExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	csv := writeInput(t, tmp, "report.csv", "a,b\n1,2\n")
	dst := filepath.Join(tmp, "custom.md")

	out, err := runCLI(t, "", "--config", cfg, "convert", "--out", dst, csv)
	if err != nil {
		t.Fatalf("convert --out: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote "+dst) {
		t.Fatalf("missing wrote line:\n%s", out)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("stat output: %v", err)
	}
}

func TestConvertBatchJSONAndSkips(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	blank := writeInput(t, tmp, "blank.txt", "\n")
	csv := writeInput(t, tmp, "report.csv", "a,b\n1,2\n")

	// Blank first: its warning lands before the stream opens the array,
	// keeping the JSON parseable on the shared test buffer.
	out, err := runCLI(t, "", "--config", cfg, "convert", "--output", "json", blank, csv)
	if err != nil {
		t.Fatalf("batch convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "skip "+blank) {
		t.Fatalf("missing skip warning:\n%s", out)
	}

	idx := strings.Index(out, "[")
	if idx == -1 {
		t.Fatalf("no json array in output:\n%s", out)
	}
	var results []api.Result
	if err := json.Unmarshal([]byte(out[idx:]), &results); err != nil {
		t.Fatalf("decode results: %v\n%s", err, out)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Kind != api.KindExcel {
		t.Fatalf("kind = %s, want excel", results[0].Kind)
	}
}

func TestDetectFilesAndStdin(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	csv := writeInput(t, tmp, "report.csv", "a,b\n1,2\n")
	md := writeInput(t, tmp, "notes.md", "# Title\n")

	out, err := runCLI(t, "", "--config", cfg, "detect", csv, md)
	if err != nil {
		t.Fatalf("detect: %v\n%s", err, out)
	}
	for _, want := range []string{"name", "report.csv", "excel", "notes.md", "markdown"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}

	out2, err := runCLI(t, "# Title\n\nprose\n", "--config", cfg, "detect", "--output", "json")
	if err != nil {
		t.Fatalf("detect stdin: %v\n%s", err, out2)
	}
	var ds []struct {
		Name string   `json:"name"`
		Kind api.Kind `json:"kind"`
	}
	if err := json.Unmarshal([]byte(out2), &ds); err != nil {
		t.Fatalf("decode detections: %v\n%s", err, out2)
	}
	if len(ds) != 1 || ds[0].Name != "-" || ds[0].Kind != api.KindMarkdown {
		t.Fatalf("unexpected detections: %+v", ds)
	}
}

func TestSampleListShowConvert(t *testing.T) {
	cfg := isolatedConfig(t)

	out, err := runCLI(t, "", "--config", cfg, "sample", "list")
	if err != nil {
		t.Fatalf("sample list: %v\n%s", err, out)
	}
	for _, want := range []string{"name", "weekly-report", "team-roster", "product-launch", "readme-sample"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in listing:\n%s", want, out)
		}
	}

	out2, err := runCLI(t, "", "--config", cfg, "sample", "show", "team-roster", "--info")
	if err != nil {
		t.Fatalf("sample show: %v\n%s", err, out2)
	}
	if !strings.Contains(out2, "kind: excel") {
		t.Fatalf("missing metadata:\n%s", out2)
	}
	if !strings.Contains(out2, "---") {
		t.Fatalf("missing separator:\n%s", out2)
	}

	out3, err := runCLI(t, "", "--config", cfg, "sample", "convert", "team-roster")
	if err != nil {
		t.Fatalf("sample convert: %v\n%s", err, out3)
	}
	if !strings.Contains(out3, "|") {
		t.Fatalf("expected a pipe table:\n%s", out3)
	}

	// Fuzzy lookup resolves close names.
	out4, err := runCLI(t, "", "--config", cfg, "sample", "show", "roster")
	if err != nil {
		t.Fatalf("fuzzy show: %v\n%s", err, out4)
	}
	if out4 == "" {
		t.Fatalf("empty fuzzy show output")
	}
}

func TestConfigInitCheckUpdate(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	path := filepath.Join(tmp, "cfg", "config.toml")

	out, err := runCLI(t, "", "--config", cfg, "config", "init", "-o", path)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Fatalf("missing wrote line:\n%s", out)
	}

	out2, err := runCLI(t, "", "--config", cfg, "config", "check", "-f", path)
	if err != nil {
		t.Fatalf("config check: %v\n%s", err, out2)
	}
	if !strings.Contains(out2, ": OK") {
		t.Fatalf("missing OK:\n%s", out2)
	}

	// Re-running init without a mode flag refuses to clobber.
	if _, err := runCLI(t, "", "--config", cfg, "config", "init", "-o", path); err == nil {
		t.Fatalf("expected refusal to overwrite existing config")
	}

	// Unknown keys get commented out by --update.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("open config: %v", err)
	}
	if _, err := f.WriteString("\nlegacy_flag = true\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	_ = f.Close()

	out3, err := runCLI(t, "", "--config", cfg, "config", "init", "-o", path, "--update")
	if err != nil {
		t.Fatalf("config init --update: %v\n%s", err, out3)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "# OUTDATED: option removed from config schema") {
		t.Fatalf("unknown key not commented:\n%s", data)
	}

	// An invalid value fails the check.
	bad := strings.Replace(string(data), `default_output = "plain"`, `default_output = "yaml"`, 1)
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("write bad config: %v", err)
	}
	if _, err := runCLI(t, "", "--config", cfg, "config", "check", "-f", path); err == nil {
		t.Fatalf("expected check to fail for bad default_output")
	}
}

func TestConfigChannelSetUnset(t *testing.T) {
	tmp := t.TempDir()
	cfg := isolatedConfig(t)
	path := filepath.Join(tmp, "config.toml")

	out, err := runCLI(t, "", "--config", cfg, "config", "channel", "set", "word", "--extensions", "rtf,docm", "-f", path)
	if err != nil {
		t.Fatalf("channel set: %v\n%s", err, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "[channels.word]") || !strings.Contains(string(data), `"rtf"`) {
		t.Fatalf("override not written:\n%s", data)
	}

	// The override changes detection end to end: this content would
	// classify as a table, but the rtf extension now maps to word.
	rtf := writeInput(t, tmp, "notes.rtf", "a,b\n1,2\n")
	out2, err := runCLI(t, "", "--config", path, "detect", rtf)
	if err != nil {
		t.Fatalf("detect with override: %v\n%s", err, out2)
	}
	if !strings.Contains(out2, "word") {
		t.Fatalf("rtf not classified as word:\n%s", out2)
	}

	out3, err := runCLI(t, "", "--config", cfg, "config", "channel", "unset", "word", "-f", path)
	if err != nil {
		t.Fatalf("channel unset: %v\n%s", err, out3)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if strings.Contains(string(data), "[channels.word]") {
		t.Fatalf("override still present:\n%s", data)
	}

	if _, err := runCLI(t, "", "--config", cfg, "config", "channel", "set", "markdown", "--extensions", "md", "-f", path); err == nil {
		t.Fatalf("expected refusal for non-office channel")
	}
}

func TestConfigShow(t *testing.T) {
	cfg := isolatedConfig(t)
	out, err := runCLI(t, "", "--config", cfg, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	for _, want := range []string{"output_dir = .", "default_output = plain", "preview.style = dracula", "preview.wrap = 80"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}
