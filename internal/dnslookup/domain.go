package dnslookup

import (
	"regexp"
	"strings"
)

// Hostname grammar: dot-separated labels of 1-63 alphanumeric characters with
// optional interior hyphens. Rejects empty labels, so leading, trailing, and
// double dots all fail.
var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// CleanDomain normalizes raw user input into a bare hostname: trims
// whitespace, strips a literal http:// or https:// prefix, removes the first
// "www." substring, and truncates at the first "/". The www strip happens
// before path truncation and matches anywhere in the string, so a path
// segment containing "www." is mangled before it is cut off; this mirrors
// the tool's historical behavior and is relied on by callers.
func CleanDomain(domain string) string {
	if domain == "" {
		return domain
	}
	domain = strings.TrimSpace(domain)
	domain = strings.Replace(domain, "http://", "", 1)
	domain = strings.Replace(domain, "https://", "", 1)
	domain = strings.Replace(domain, "www.", "", 1)
	if i := strings.Index(domain, "/"); i >= 0 {
		domain = domain[:i]
	}
	return domain
}

// ValidateDomain reports whether domain is a well-formed hostname: non-empty,
// at most 253 characters, and matching the label grammar. A trailing dot
// (legal in DNS for fully-qualified names) is rejected. Pure, no network.
func ValidateDomain(domain string) bool {
	if domain == "" || len(domain) > 253 {
		return false
	}
	return domainPattern.MatchString(domain)
}
