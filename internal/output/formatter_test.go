package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Quang-Ng-Duong/DNS-Record/internal/core"
	"github.com/Quang-Ng-Duong/DNS-Record/internal/dnslookup"
)

func sampleResult() *dnslookup.LookupResult {
	return &dnslookup.LookupResult{
		Domain: "example.com",
		Types:  []dnslookup.RecordType{dnslookup.TypeA, dnslookup.TypeMX, dnslookup.TypeTXT, dnslookup.TypeSOA},
		Records: map[dnslookup.RecordType][]dnslookup.Record{
			dnslookup.TypeA:   {dnslookup.SimpleRecord("93.184.216.34")},
			dnslookup.TypeMX:  {dnslookup.MXRecord{Priority: 10, Exchange: "mail.example.com."}},
			dnslookup.TypeTXT: {},
			dnslookup.TypeSOA: {dnslookup.SOARecord{
				MName: "ns1.example.com.", RName: "hostmaster.example.com.",
				Serial: 42, Refresh: 7200, Retry: 3600, Expire: 1209600, Minimum: 300,
			}},
		},
	}
}

func TestFormatJSON(t *testing.T) {
	cfg := core.ExportSettings{JSONIndent: 2, IncludeTimestamp: true}
	out, err := FormatJSON(sampleResult(), cfg)
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["export_timestamp"]; !ok {
		t.Errorf("export_timestamp missing with IncludeTimestamp set")
	}
	if _, ok := decoded["TXT_Records"].([]interface{}); !ok {
		t.Errorf("empty TXT list should still be present: %v", decoded)
	}
	if !strings.Contains(out, "\n  \"") {
		t.Errorf("output should be indented with 2 spaces:\n%s", out)
	}
}

func TestFormatJSONWithoutTimestamp(t *testing.T) {
	cfg := core.ExportSettings{JSONIndent: 4}
	out, err := FormatJSON(sampleResult(), cfg)
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	if strings.Contains(out, "export_timestamp") {
		t.Errorf("export_timestamp present without IncludeTimestamp")
	}
}

func TestFormatCSV(t *testing.T) {
	cfg := core.ExportSettings{CSVDelimiter: ",", IncludeTimestamp: true}
	out, err := FormatCSV(sampleResult(), cfg)
	if err != nil {
		t.Fatalf("FormatCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	// Header plus one row per record; the empty TXT list adds none.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d: %v", len(rows), rows)
	}
	header := rows[0]
	want := []string{"Record Type", "Value", "Additional Info", "Export Time"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}
	if rows[1][0] != "A_Records" || rows[1][1] != "93.184.216.34" || rows[1][2] != "" {
		t.Errorf("unexpected A row: %v", rows[1])
	}
	if rows[2][1] != "mail.example.com." || rows[2][2] != "Priority: 10" {
		t.Errorf("unexpected MX row: %v", rows[2])
	}
	if rows[3][1] != "ns1.example.com." || rows[3][2] != "Serial: 42" {
		t.Errorf("unexpected SOA row: %v", rows[3])
	}
}

func TestFormatCSVCustomDelimiter(t *testing.T) {
	cfg := core.ExportSettings{CSVDelimiter: ";"}
	out, err := FormatCSV(sampleResult(), cfg)
	if err != nil {
		t.Fatalf("FormatCSV failed: %v", err)
	}
	if !strings.Contains(out, "Record Type;Value;Additional Info") {
		t.Errorf("delimiter not applied:\n%s", out)
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteOutput(path, "{}"); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{}" {
		t.Errorf("unexpected file contents: %q (%v)", data, err)
	}

	if err := WriteOutput(filepath.Join(path, "nope"), "x"); err == nil {
		t.Errorf("expected error writing under a file path")
	}
}
