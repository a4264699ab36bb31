package dnslookup

import (
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// QueryStatus classifies the outcome of a single resolver query.
type QueryStatus int

const (
	// StatusSuccess means the query returned at least one record of the
	// requested type.
	StatusSuccess QueryStatus = iota
	// StatusAbsent means the domain itself does not exist (NXDOMAIN).
	StatusAbsent
	// StatusNoData means the domain exists but has no records of this type.
	StatusNoData
	// StatusFault covers timeouts, network failures, and server errors.
	StatusFault
)

// QueryResult is the tagged outcome of one resolve call. Answers is populated
// only for StatusSuccess and holds records of the requested type only; Err
// carries diagnostic detail for StatusFault.
type QueryResult struct {
	Status  QueryStatus
	Answers []dns.RR
	Err     error
}

// Resolver is the capability the aggregator consumes: one query per record
// type, outcome reported as a tagged result rather than an error.
type Resolver interface {
	Resolve(name string, rtype RecordType) QueryResult
}

// ClientConfig controls the wire client's timeout and retry policy.
type ClientConfig struct {
	Nameserver string        // host:port; empty means resolv.conf or 8.8.8.8:53
	Timeout    time.Duration // per query attempt
	Lifetime   time.Duration // total budget across retries
	Retries    int           // additional attempts after the first
}

// Client resolves queries over UDP using miekg/dns.
type Client struct {
	nameserver string
	timeout    time.Duration
	lifetime   time.Duration
	retries    int
}

// NewClient builds a Client, filling in the system nameserver when none is
// configured.
func NewClient(cfg ClientConfig) *Client {
	ns := cfg.Nameserver
	if ns == "" {
		ns = systemNameserver()
	}
	if _, _, err := net.SplitHostPort(ns); err != nil {
		ns = net.JoinHostPort(ns, "53")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = timeout
	}
	return &Client{nameserver: ns, timeout: timeout, lifetime: lifetime, retries: cfg.Retries}
}

func systemNameserver() string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err == nil && len(conf.Servers) > 0 {
		return net.JoinHostPort(conf.Servers[0], conf.Port)
	}
	return "8.8.8.8:53"
}

// Resolve queries the nameserver for one record type, retrying on network
// faults until the retry count or lifetime budget runs out. Response codes
// map to the tagged outcome: NXDOMAIN is Absent, success with no records of
// the requested type is NoData, anything else is a Fault.
func (c *Client) Resolve(name string, rtype RecordType) QueryResult {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), dns.StringToType[string(rtype)])
	m.RecursionDesired = true

	client := &dns.Client{Timeout: c.timeout}
	deadline := time.Now().Add(c.lifetime)

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 && time.Now().After(deadline) {
			break
		}
		resp, _, err := client.Exchange(m, c.nameserver)
		if err != nil {
			lastErr = err
			continue
		}
		switch resp.Rcode {
		case dns.RcodeSuccess:
			answers := filterAnswers(resp.Answer, rtype)
			if len(answers) == 0 {
				return QueryResult{Status: StatusNoData}
			}
			return QueryResult{Status: StatusSuccess, Answers: answers}
		case dns.RcodeNameError:
			return QueryResult{Status: StatusAbsent}
		default:
			return QueryResult{
				Status: StatusFault,
				Err:    fmt.Errorf("nameserver returned %s", dns.RcodeToString[resp.Rcode]),
			}
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("query lifetime exceeded after %d attempts", c.retries+1)
	}
	return QueryResult{Status: StatusFault, Err: lastErr}
}

// filterAnswers keeps only records of the requested type. An answer section
// for an A query of an aliased name carries the CNAME chain too; only the
// final type is wanted.
func filterAnswers(answers []dns.RR, rtype RecordType) []dns.RR {
	want := dns.StringToType[string(rtype)]
	var out []dns.RR
	for _, rr := range answers {
		if rr.Header().Rrtype == want {
			out = append(out, rr)
		}
	}
	return out
}
