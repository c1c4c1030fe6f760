package domain

import "fmt"

// FundMeta is one catalogue entry: a tracked fund and the location of its
// NAV feed. Either URL is set explicitly or the feed address is derived from
// the shared sheet base URL and the entry's GID.
type FundMeta struct {
	FundID string `json:"fundId"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	GID    string `json:"gid,omitempty"`
	URL    string `json:"url,omitempty"`
}

// FeedURL resolves the feed address for this entry against the sheet base URL.
func (m FundMeta) FeedURL(baseURL string) string {
	if m.URL != "" {
		return m.URL
	}
	return fmt.Sprintf("%s?gid=%s&single=true&output=csv", baseURL, m.GID)
}
