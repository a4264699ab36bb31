package dnslookup

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleResult() *LookupResult {
	return &LookupResult{
		Domain: "example.com",
		Types:  []RecordType{TypeMX, TypeA, TypeSOA},
		Records: map[RecordType][]Record{
			TypeMX: {MXRecord{Priority: 10, Exchange: "mail.example.com."}},
			TypeA:  {SimpleRecord("93.184.216.34"), SimpleRecord("93.184.216.35")},
			TypeSOA: {SOARecord{
				MName: "ns1.example.com.", RName: "hostmaster.example.com.",
				Serial: 42, Refresh: 7200, Retry: 3600, Expire: 1209600, Minimum: 300,
			}},
		},
	}
}

func TestMarshalJSONPreservesQueryOrder(t *testing.T) {
	data, err := json.Marshal(sampleResult())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(data)
	mx := strings.Index(s, `"MX_Records"`)
	a := strings.Index(s, `"A_Records"`)
	soa := strings.Index(s, `"SOA_Records"`)
	if mx < 0 || a < 0 || soa < 0 {
		t.Fatalf("missing record keys in %s", s)
	}
	if !(mx < a && a < soa) {
		t.Errorf("keys not in query order: %s", s)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(sampleResult())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	a, ok := decoded["A_Records"].([]interface{})
	if !ok || len(a) != 2 {
		t.Fatalf("unexpected A_Records: %v", decoded["A_Records"])
	}
	if a[0] != "93.184.216.34" {
		t.Errorf("A record decoded as %v", a[0])
	}

	mx, ok := decoded["MX_Records"].([]interface{})
	if !ok || len(mx) != 1 {
		t.Fatalf("unexpected MX_Records: %v", decoded["MX_Records"])
	}
	mxObj := mx[0].(map[string]interface{})
	if mxObj["priority"] != float64(10) || mxObj["exchange"] != "mail.example.com." {
		t.Errorf("MX record decoded as %v", mxObj)
	}

	soa := decoded["SOA_Records"].([]interface{})[0].(map[string]interface{})
	for field, want := range map[string]float64{
		"serial": 42, "refresh": 7200, "retry": 3600, "expire": 1209600, "minimum": 300,
	} {
		if soa[field] != want {
			t.Errorf("SOA %s decoded as %v, want %v", field, soa[field], want)
		}
	}
	if soa["mname"] != "ns1.example.com." || soa["rname"] != "hostmaster.example.com." {
		t.Errorf("SOA names decoded as %v", soa)
	}
}

func TestExportJSONTimestampAndEmptyLists(t *testing.T) {
	result := &LookupResult{
		Domain:  "example.com",
		Types:   []RecordType{TypeTXT},
		Records: map[RecordType][]Record{TypeTXT: {}},
	}
	data, err := result.ExportJSON("2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["export_timestamp"] != "2024-01-01T00:00:00Z" {
		t.Errorf("missing export_timestamp: %v", decoded)
	}
	txt, ok := decoded["TXT_Records"].([]interface{})
	if !ok || len(txt) != 0 {
		t.Errorf("empty type should encode as [], got %v", decoded["TXT_Records"])
	}
}

func TestParseRecordTypes(t *testing.T) {
	types, err := ParseRecordTypes([]string{"a", " MX ", "soa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []RecordType{TypeA, TypeMX, TypeSOA}
	for i, rtype := range want {
		if types[i] != rtype {
			t.Errorf("types[%d] = %s, want %s", i, types[i], rtype)
		}
	}
	if _, err := ParseRecordTypes([]string{"PTR"}); err == nil {
		t.Errorf("expected error for unsupported type")
	}
}
