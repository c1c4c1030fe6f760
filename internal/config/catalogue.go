package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tzcis/navstat/internal/domain"
)

// defaultCatalogue is the built-in fund/feed table. A deployment can swap the
// tracked funds without a rebuild by pointing NAV_CATALOGUE_PATH at a JSON
// file of the same shape.
//
//go:embed catalogue.json
var defaultCatalogue []byte

// LoadCatalogue returns the NAV fund catalogue. With an empty path the
// embedded default is used.
func LoadCatalogue(path string) ([]domain.FundMeta, error) {
	data := defaultCatalogue
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalogue file: %w", err)
		}
	}

	var catalogue []domain.FundMeta
	if err := json.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("parsing catalogue: %w", err)
	}
	if len(catalogue) == 0 {
		return nil, fmt.Errorf("catalogue is empty")
	}
	for i, entry := range catalogue {
		if entry.FundID == "" {
			return nil, fmt.Errorf("catalogue entry %d has no fund id", i)
		}
		if entry.GID == "" && entry.URL == "" {
			return nil, fmt.Errorf("catalogue entry %q has neither gid nor url", entry.FundID)
		}
	}
	return catalogue, nil
}
