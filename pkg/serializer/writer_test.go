package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/aic-catalog/pkg/errors"
)

type testItem struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type testListing []testItem

func (l testListing) TableHeader() []string { return []string{"NAME", "COUNT"} }

func (l testListing) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, it := range l {
		rows = append(rows, []string{it.Name, strings.Repeat("#", it.Count)})
	}
	return rows
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testItem{
		{Name: "Ferrium Ore", Count: 1},
		{Name: "Ferrium", Count: 2},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testItem
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Name != "Ferrium" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testListing{{Name: "Amethyst Ore", Count: 3}}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testItem
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(result) != 1 || result[0].Count != 3 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTabular(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testListing{
		{Name: "Ferrium Ore", Count: 1},
		{Name: "Ferrium", Count: 2},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "COUNT") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("unexpected rule: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Ferrium Ore") || !strings.HasSuffix(lines[3], "##") {
		t.Errorf("unexpected rows: %q %q", lines[2], lines[3])
	}
}

func TestWriter_SerializeTabular_Empty(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), testListing{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_SerializeTable_Flattened(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []any{
		testItem{Name: "Ferrium Ore", Count: 1},
		testItem{Name: "Ferrium", Count: 2},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}
	if !strings.Contains(output, "[0].Name") || !strings.Contains(output, "[1].Count") {
		t.Error("Expected flattened keys not found")
	}
}

func TestWriter_SerializeTable_EmbeddedStruct(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type meta struct {
		Kind string
	}
	type report struct {
		meta
		Meta   meta
		LoadID string
		Extra  *int
		Cause  error `json:"-"`
	}

	data := report{meta: meta{Kind: "hidden"}, Meta: meta{Kind: "LoadReport"}, LoadID: "abc"}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Meta.Kind") {
		t.Error("Expected nested key 'Meta.Kind'")
	}
	if strings.Contains(output, "hidden") {
		t.Error("unexported embedded fields must be skipped")
	}
	if !strings.Contains(output, "LoadID") || !strings.Contains(output, "Extra") {
		t.Error("Expected top-level keys in output")
	}
	if strings.Contains(output, "Cause") {
		t.Error("fields hidden from JSON must be skipped")
	}
}

func TestWriter_SerializeTable_Maps(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"items":    96,
		"machines": 34,
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "items") || !strings.Contains(output, "machines") {
		t.Error("Expected all keys in output")
	}
}

func TestWriter_SerializeCanceled(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := writer.Serialize(ctx, testItem{Name: "x"})
	if !errors.IsCode(err, errors.ErrCodeTimeout) {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written after cancellation")
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(context.Background(), testItem{Name: "Ferrium", Count: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testItem
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "\t"} {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("Expected non-nil writer for empty path %q", path)
		}
		if closer, ok := writer.(Closer); ok {
			if err := closer.Close(); err != nil {
				t.Errorf("Close failed for empty path writer: %v", err)
			}
		}
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")

	writer := NewFileWriterOrStdout(FormatYAML, path)
	if err := writer.Serialize(context.Background(), testItem{Name: "Ferrium", Count: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	closer, ok := writer.(Closer)
	if !ok {
		t.Fatal("file writer should implement Closer")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// second close is a no-op
	if err := closer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var result testItem
	if err := yaml.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}
	if result.Name != "Ferrium" {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")
	if writer == nil {
		t.Fatal("Expected non-nil writer (should fallback to stdout)")
	}
	if closer, ok := writer.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Errorf("Close should not error on fallback writer: %v", err)
		}
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" YAML ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"Table", FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
					t.Fatalf("expected invalid request error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
