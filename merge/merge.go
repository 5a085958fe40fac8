package merge

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/league-infrastructure/flyer-template/model"
)

// LoadPrior reads a previously written regions file. A missing file is
// not an error and returns (nil, nil); an unreadable or malformed file
// returns an error the caller is expected to downgrade to a warning.
func LoadPrior(path string) (*model.TemplateMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read prior regions file: %w", err)
	}

	var prior model.TemplateMetadata
	if err := yaml.Unmarshal(data, &prior); err != nil {
		return nil, fmt.Errorf("parse prior regions file: %w", err)
	}
	return &prior, nil
}

// PreserveRoles copies curated roles from prior onto the matching new
// regions, in place. Regions match on exact geometry. When the prior
// file cannot be trusted as a whole it is abandoned: preserved is
// false and reason says why, and no region is touched.
//
// An empty prior role never clears a freshly classified one.
func PreserveRoles(prior *model.TemplateMetadata, regions []model.Region) (preserved bool, reason string) {
	if prior == nil {
		return false, ""
	}
	if len(prior.Regions) != len(regions) {
		return false, fmt.Sprintf("region count changed (%d -> %d)",
			len(prior.Regions), len(regions))
	}

	roles := make(map[model.Box]string, len(prior.Regions))
	for _, pr := range prior.Regions {
		roles[pr.Box] = pr.Role
	}

	for i := range regions {
		if _, ok := roles[regions[i].Box]; !ok {
			return false, "region positions changed"
		}
	}

	for i := range regions {
		if role := roles[regions[i].Box]; role != "" {
			regions[i].Role = role
		}
	}
	return true, ""
}
