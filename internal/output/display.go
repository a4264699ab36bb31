package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Quang-Ng-Duong/DNS-Record/internal/core"
	"github.com/Quang-Ng-Duong/DNS-Record/internal/dnslookup"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/table"
)

var sectionTitles = map[dnslookup.RecordType]string{
	dnslookup.TypeA:     "A Records (IPv4 Addresses)",
	dnslookup.TypeAAAA:  "AAAA Records (IPv6 Addresses)",
	dnslookup.TypeCNAME: "CNAME Records (Canonical Names)",
	dnslookup.TypeMX:    "MX Records (Mail Servers)",
	dnslookup.TypeNS:    "NS Records (Name Servers)",
	dnslookup.TypeTXT:   "TXT Records (Text Records)",
	dnslookup.TypeSOA:   "SOA Records (Start of Authority)",
}

// Renderer prints lookup results to the console. Display settings are passed
// in at construction instead of living in process-wide flags, so callers with
// different settings can render side by side.
type Renderer struct {
	cfg     core.DisplaySettings
	header  *color.Color
	section *color.Color
	index   *color.Color
	value   *color.Color
	notice  *color.Color
}

func NewRenderer(cfg core.DisplaySettings) *Renderer {
	r := &Renderer{
		cfg:     cfg,
		header:  color.New(color.FgMagenta, color.Bold),
		section: color.New(color.FgGreen, color.Bold),
		index:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
		notice:  color.New(color.FgYellow),
	}
	if !cfg.UseColors {
		for _, c := range []*color.Color{r.header, r.section, r.index, r.value, r.notice} {
			c.DisableColor()
		}
	}
	return r
}

// RenderResult prints every queried type's records in query order, skipping
// types with no records. On a FoundEmpty result a single notice is printed
// instead.
func (r *Renderer) RenderResult(result *dnslookup.LookupResult) {
	r.header.Println("\n" + strings.Repeat("=", 60))
	r.header.Printf("DNS records for %s\n", result.Domain)
	r.header.Println(strings.Repeat("=", 60))

	if result.Outcome() == dnslookup.OutcomeFoundEmpty {
		r.notice.Printf("\nDomain %s exists but has no standard DNS records\n", result.Domain)
		return
	}

	for _, rtype := range result.Types {
		records := result.Records[rtype]
		if len(records) == 0 {
			continue
		}
		r.section.Printf("\n%s:\n", sectionTitles[rtype])
		if rtype == dnslookup.TypeMX && r.cfg.TableFormat {
			r.renderMXTable(records)
			continue
		}
		for i, rec := range records {
			r.index.Printf("  %d. ", i+1)
			r.value.Println(r.recordLine(rtype, rec))
		}
	}
	fmt.Println()
}

func (r *Renderer) recordLine(rtype dnslookup.RecordType, rec dnslookup.Record) string {
	switch v := rec.(type) {
	case dnslookup.MXRecord:
		return fmt.Sprintf("Priority: %d, Server: %s", v.Priority, v.Exchange)
	case dnslookup.SOARecord:
		return fmt.Sprintf("Primary NS: %s, Responsible: %s, Serial: %d, Refresh: %ds, Retry: %ds, Expire: %ds, Minimum: %ds",
			v.MName, v.RName, v.Serial, v.Refresh, v.Retry, v.Expire, v.Minimum)
	default:
		text := rec.Value()
		if rtype == dnslookup.TypeTXT && r.cfg.MaxTXTLength > 3 && len(text) > r.cfg.MaxTXTLength {
			text = text[:r.cfg.MaxTXTLength-3] + "..."
		}
		return text
	}
}

func (r *Renderer) renderMXTable(records []dnslookup.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Priority", "Mail Server"})
	for _, rec := range records {
		if mx, ok := rec.(dnslookup.MXRecord); ok {
			t.AppendRow(table.Row{mx.Priority, mx.Exchange})
		}
	}
	t.Render()
}

// Progress returns a per-type progress callback and a stop function for the
// aggregator's OnQuery hook. When progress display is disabled both are
// no-ops.
func (r *Renderer) Progress() (func(dnslookup.RecordType), func()) {
	if !r.cfg.ShowProgress {
		return nil, func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	started := false
	onQuery := func(rtype dnslookup.RecordType) {
		s.Suffix = fmt.Sprintf(" Fetching %s records...", rtype)
		if !started {
			s.Start()
			started = true
		}
	}
	stop := func() {
		if started {
			s.Stop()
		}
	}
	return onQuery, stop
}
