package core

import (
	"encoding/json"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config mirrors the sections of the tool's configuration file. Any key left
// out of the file keeps its default, so a partial config is always valid.
type Config struct {
	DNS     DNSSettings     `json:"dns_settings" yaml:"dns_settings"`
	Display DisplaySettings `json:"display_settings" yaml:"display_settings"`
	Export  ExportSettings  `json:"export_settings" yaml:"export_settings"`
	Logging LogSettings     `json:"logging" yaml:"logging"`
}

type DNSSettings struct {
	Timeout     int      `json:"timeout" yaml:"timeout"` // seconds, per query and total lifetime
	Retries     int      `json:"retries" yaml:"retries"`
	Nameserver  string   `json:"default_nameserver" yaml:"default_nameserver"`
	RecordTypes []string `json:"record_types" yaml:"record_types"`
}

type DisplaySettings struct {
	UseColors    bool `json:"use_colors" yaml:"use_colors"`
	MaxTXTLength int  `json:"max_txt_length" yaml:"max_txt_length"`
	TableFormat  bool `json:"table_format" yaml:"table_format"`
	ShowProgress bool `json:"show_progress" yaml:"show_progress"`
}

type ExportSettings struct {
	JSONIndent       int    `json:"json_indent" yaml:"json_indent"`
	CSVDelimiter     string `json:"csv_delimiter" yaml:"csv_delimiter"`
	IncludeTimestamp bool   `json:"include_timestamp" yaml:"include_timestamp"`
}

type LogSettings struct {
	Level string `json:"level" yaml:"level"`
	File  string `json:"file" yaml:"file"`
}

// DefaultConfig returns the documented defaults for every section.
func DefaultConfig() *Config {
	return &Config{
		DNS: DNSSettings{
			Timeout:     10,
			Retries:     3,
			Nameserver:  "",
			RecordTypes: []string{"A", "AAAA", "CNAME", "MX", "NS", "TXT", "SOA"},
		},
		Display: DisplaySettings{
			UseColors:    true,
			MaxTXTLength: 70,
			TableFormat:  true,
			ShowProgress: true,
		},
		Export: ExportSettings{
			JSONIndent:       2,
			CSVDelimiter:     ",",
			IncludeTimestamp: true,
		},
		Logging: LogSettings{
			Level: "info",
			File:  "dns_lookup.log",
		},
	}
}

// LoadConfig reads a JSON or YAML config file (decided by extension) on top of
// the defaults, so keys present in the file override and absent keys keep
// their default values. On any load or decode error it returns the untouched
// defaults together with the error; a broken config file is never fatal.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		err = yaml.NewDecoder(f).Decode(cfg)
	} else {
		err = json.NewDecoder(f).Decode(cfg)
	}
	if err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
