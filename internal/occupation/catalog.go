// Package occupation provides the static occupation catalog and the matcher
// that scores catalog profiles against free-text content.
package occupation

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/Shaolin23/adence-ai/internal/types"
)

//go:embed data/*.json
var catalogFiles embed.FS

// Catalog holds the occupation and work-activity reference data, loaded once
// per process lifetime and immutable afterwards.
type Catalog struct {
	Occupations []types.OccupationProfile
	activities  map[string]types.WorkActivity
}

type catalogFile struct {
	WorkActivities []types.WorkActivity      `json:"work_activities"`
	Occupations    []types.OccupationProfile `json:"occupations"`
}

// LoadCatalog parses the embedded occupation dataset.
func LoadCatalog() (*Catalog, error) {
	data, err := catalogFiles.ReadFile("data/occupations.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read occupation dataset: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse occupation dataset: %w", err)
	}

	activities := make(map[string]types.WorkActivity, len(file.WorkActivities))
	for _, wa := range file.WorkActivities {
		activities[wa.ID] = wa
	}

	// Fail fast on dangling references so scoring never silently skips an
	// activity at assessment time.
	for _, occ := range file.Occupations {
		for _, ref := range occ.WorkActivities {
			if _, ok := activities[ref.ActivityID]; !ok {
				return nil, fmt.Errorf("occupation %s references unknown work activity %s", occ.Code, ref.ActivityID)
			}
		}
	}

	return &Catalog{
		Occupations: file.Occupations,
		activities:  activities,
	}, nil
}

// Activity returns the work activity for an ID. The bool is false for unknown
// IDs, which LoadCatalog rules out for embedded data.
func (c *Catalog) Activity(id string) (types.WorkActivity, bool) {
	wa, ok := c.activities[id]
	return wa, ok
}
