package dnslookup

import (
	"fmt"

	"github.com/Quang-Ng-Duong/DNS-Record/internal/core"
	"github.com/Quang-Ng-Duong/DNS-Record/internal/core/logger"
	"github.com/sirupsen/logrus"
)

// Aggregator runs multi-type lookups through a Resolver, one query at a time.
type Aggregator struct {
	resolver Resolver
	log      *logrus.Logger

	// OnQuery, if set, is called right before each per-type query. Used by
	// the CLI for progress display.
	OnQuery func(rtype RecordType)
}

func NewAggregator(resolver Resolver) *Aggregator {
	return &Aggregator{
		resolver: resolver,
		log:      logger.GetLogger(),
	}
}

// Lookup cleans and validates the raw domain, then queries each requested
// record type in order. An invalid domain fails before any network access.
// NXDOMAIN on any type aborts the remaining queries and fails the whole
// lookup, since the domain's absence is the same for every type. A type with
// no records, or a transient resolver fault, yields an empty list and the
// lookup continues; the two are logged at different levels so they stay
// distinguishable. With no requested types the full supported set is queried.
func (a *Aggregator) Lookup(rawDomain string, types []RecordType) (*LookupResult, error) {
	domain := CleanDomain(rawDomain)
	if !ValidateDomain(domain) {
		a.log.Errorf("Invalid domain format: %s", domain)
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidDomain, domain)
	}

	if len(types) == 0 {
		types = AllRecordTypes()
	}

	result := &LookupResult{
		Domain:  domain,
		Records: make(map[RecordType][]Record, len(types)),
	}
	for _, rtype := range types {
		if a.OnQuery != nil {
			a.OnQuery(rtype)
		}
		qr := a.resolver.Resolve(domain, rtype)
		switch qr.Status {
		case StatusAbsent:
			a.log.Errorf("Domain %s does not exist", domain)
			return nil, fmt.Errorf("%w: %s", core.ErrDomainNotFound, domain)
		case StatusNoData:
			a.log.Infof("No %s records found for %s", rtype, domain)
			result.Records[rtype] = []Record{}
		case StatusFault:
			a.log.Warnf("Error fetching %s records for %s: %v", rtype, domain, qr.Err)
			result.Records[rtype] = []Record{}
		case StatusSuccess:
			records := DecodeRecords(qr.Answers)
			a.log.Infof("Successfully fetched %d %s records for %s", len(records), rtype, domain)
			result.Records[rtype] = records
		}
		result.Types = append(result.Types, rtype)
	}

	a.log.Infof("DNS lookup completed for %s", domain)
	return result, nil
}
