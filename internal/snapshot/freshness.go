package snapshot

import (
	"time"

	"github.com/tzcis/navstat/internal/domain"
)

// progressHorizonDays is the age at which the staleness meter saturates.
const progressHorizonDays = 10

// Classify buckets a snapshot's age relative to now. The collection
// timestamp is preferred; when absent the reported date is used. With
// neither, the tier is Unknown.
//
// Tiers: ≤ 2 days Fresh, ≤ 5 days Recent, otherwise Needs update.
func Classify(date *string, collectedAt *time.Time, now time.Time) domain.Freshness {
	reference := collectedAt
	if reference == nil && date != nil {
		if t, err := time.Parse("2006-01-02", *date); err == nil {
			reference = &t
		}
	}
	if reference == nil {
		return domain.Freshness{Tier: domain.TierUnknown}
	}

	days := now.Sub(*reference).Hours() / 24

	tier := domain.TierStale
	switch {
	case days <= 2:
		tier = domain.TierFresh
	case days <= 5:
		tier = domain.TierRecent
	}

	progress := days / progressHorizonDays * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return domain.Freshness{Tier: tier, Days: days, Progress: progress}
}
