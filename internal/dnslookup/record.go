// Package dnslookup validates domain names and aggregates DNS records of
// multiple types into a single lookup result. The wire protocol is delegated
// to a Resolver; this package only interprets outcomes and decodes records.
package dnslookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RecordType is one of the supported DNS record type tags.
type RecordType string

const (
	TypeA     RecordType = "A"
	TypeAAAA  RecordType = "AAAA"
	TypeCNAME RecordType = "CNAME"
	TypeMX    RecordType = "MX"
	TypeNS    RecordType = "NS"
	TypeTXT   RecordType = "TXT"
	TypeSOA   RecordType = "SOA"
)

// AllRecordTypes returns the full supported type set in display order.
func AllRecordTypes() []RecordType {
	return []RecordType{TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeNS, TypeTXT, TypeSOA}
}

// ParseRecordTypes converts user-supplied type names (any case) into tags,
// rejecting anything outside the supported set.
func ParseRecordTypes(names []string) ([]RecordType, error) {
	supported := map[RecordType]bool{}
	for _, t := range AllRecordTypes() {
		supported[t] = true
	}
	var types []RecordType
	for _, name := range names {
		t := RecordType(strings.ToUpper(strings.TrimSpace(name)))
		if !supported[t] {
			return nil, fmt.Errorf("unsupported record type: %s", name)
		}
		types = append(types, t)
	}
	return types, nil
}

// Record is a decoded DNS resource record. Value is the primary text (an
// address, hostname, or TXT payload); Detail is the secondary text shown in
// the CSV "Additional Info" column, empty for simple records.
type Record interface {
	Value() string
	Detail() string
}

// SimpleRecord holds the textual value of an A, AAAA, CNAME, NS, or TXT
// record. It marshals to a plain JSON string.
type SimpleRecord string

func (r SimpleRecord) Value() string  { return string(r) }
func (r SimpleRecord) Detail() string { return "" }

// MXRecord is a mail exchange record.
type MXRecord struct {
	Priority uint16 `json:"priority"`
	Exchange string `json:"exchange"`
}

func (r MXRecord) Value() string  { return r.Exchange }
func (r MXRecord) Detail() string { return fmt.Sprintf("Priority: %d", r.Priority) }

// SOARecord is a start-of-authority record with the seven canonical fields.
type SOARecord struct {
	MName   string `json:"mname"`
	RName   string `json:"rname"`
	Serial  uint32 `json:"serial"`
	Refresh uint32 `json:"refresh"`
	Retry   uint32 `json:"retry"`
	Expire  uint32 `json:"expire"`
	Minimum uint32 `json:"minimum"`
}

func (r SOARecord) Value() string  { return r.MName }
func (r SOARecord) Detail() string { return fmt.Sprintf("Serial: %d", r.Serial) }

// Outcome classifies a completed lookup.
type Outcome int

const (
	// OutcomeFound means at least one requested type returned records.
	OutcomeFound Outcome = iota
	// OutcomeFoundEmpty means the domain resolves but no requested type has records.
	OutcomeFoundEmpty
)

// LookupResult maps each queried record type to its decoded records. Types
// preserves the query order, which also fixes display and export order. The
// result is owned by the caller and holds no resources.
type LookupResult struct {
	Domain  string
	Types   []RecordType
	Records map[RecordType][]Record
}

// Outcome reports whether any queried type produced records.
func (r *LookupResult) Outcome() Outcome {
	for _, t := range r.Types {
		if len(r.Records[t]) > 0 {
			return OutcomeFound
		}
	}
	return OutcomeFoundEmpty
}

// MarshalJSON emits an object keyed "<TYPE>_Records" in query order.
func (r *LookupResult) MarshalJSON() ([]byte, error) {
	return r.ExportJSON("")
}

// ExportJSON marshals the result like MarshalJSON, appending an
// "export_timestamp" field when exportTime is non-empty. Output is compact;
// callers indent it as needed.
func (r *LookupResult) ExportJSON(exportTime string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range r.Types {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", string(t)+"_Records")
		records := r.Records[t]
		if records == nil {
			records = []Record{}
		}
		data, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	if exportTime != "" {
		if len(r.Types) > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%q", "export_timestamp", exportTime)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
