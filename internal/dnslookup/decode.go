package dnslookup

import (
	"strings"

	"github.com/miekg/dns"
)

// DecodeRecords converts raw resource records into their decoded forms.
// Hostnames keep the resolver library's trailing-dot convention so that
// exported values round-trip verbatim. Unrecognized record shapes are
// skipped.
func DecodeRecords(answers []dns.RR) []Record {
	records := make([]Record, 0, len(answers))
	for _, rr := range answers {
		if rec, ok := decodeRecord(rr); ok {
			records = append(records, rec)
		}
	}
	return records
}

func decodeRecord(rr dns.RR) (Record, bool) {
	switch v := rr.(type) {
	case *dns.A:
		return SimpleRecord(v.A.String()), true
	case *dns.AAAA:
		return SimpleRecord(v.AAAA.String()), true
	case *dns.CNAME:
		return SimpleRecord(v.Target), true
	case *dns.NS:
		return SimpleRecord(v.Ns), true
	case *dns.TXT:
		// A TXT record longer than 255 bytes arrives split into segments;
		// present it as one string.
		return SimpleRecord(strings.Join(v.Txt, "")), true
	case *dns.MX:
		return MXRecord{Priority: v.Preference, Exchange: v.Mx}, true
	case *dns.SOA:
		return SOARecord{
			MName:   v.Ns,
			RName:   v.Mbox,
			Serial:  v.Serial,
			Refresh: v.Refresh,
			Retry:   v.Retry,
			Expire:  v.Expire,
			Minimum: v.Minttl,
		}, true
	}
	return nil, false
}
