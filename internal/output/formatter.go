// internal/output/formatter.go
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Quang-Ng-Duong/DNS-Record/internal/core"
	"github.com/Quang-Ng-Duong/DNS-Record/internal/core/logger"
	"github.com/Quang-Ng-Duong/DNS-Record/internal/dnslookup"
)

// FormatJSON renders a lookup result as an indented JSON document keyed
// "<TYPE>_Records", with an export_timestamp field when configured.
func FormatJSON(result *dnslookup.LookupResult, cfg core.ExportSettings) (string, error) {
	exportTime := ""
	if cfg.IncludeTimestamp {
		exportTime = time.Now().Format(time.RFC3339)
	}
	data, err := result.ExportJSON(exportTime)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", cfg.JSONIndent)); err != nil {
		return "", fmt.Errorf("failed to indent JSON: %w", err)
	}
	return buf.String(), nil
}

// FormatCSV renders a lookup result as CSV with one row per record. MX rows
// carry the exchange host and "Priority: <n>", SOA rows the primary
// nameserver and "Serial: <n>", simple rows the value alone. Types with no
// records produce no rows.
func FormatCSV(result *dnslookup.LookupResult, cfg core.ExportSettings) (string, error) {
	var b strings.Builder
	writer := csv.NewWriter(&b)
	if cfg.CSVDelimiter != "" {
		writer.Comma = rune(cfg.CSVDelimiter[0])
	}

	headers := []string{"Record Type", "Value", "Additional Info"}
	exportTime := ""
	if cfg.IncludeTimestamp {
		exportTime = time.Now().Format(time.RFC3339)
		headers = append(headers, "Export Time")
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rtype := range result.Types {
		for _, rec := range result.Records[rtype] {
			row := []string{string(rtype) + "_Records", rec.Value(), rec.Detail()}
			if exportTime != "" {
				row = append(row, exportTime)
			}
			if err := writer.Write(row); err != nil {
				return "", fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return b.String(), nil
}

// WriteOutput writes content to a specified file.
func WriteOutput(filepath string, content string) error {
	log := logger.GetLogger()
	err := os.WriteFile(filepath, []byte(content), 0644) // 0644 is standard file permissions
	if err != nil {
		log.Errorf("Failed to write output to %s: %v", filepath, err)
		return core.ErrFileWrite
	}
	return nil
}
