package classify

import (
	"math"
	"sort"

	"github.com/league-infrastructure/flyer-template/model"
)

// Role names assigned by the classifier.
const (
	RoleQRCode   = "qr_code"
	RoleURL      = "url"
	RoleTime     = "time"
	RoleDate     = "date"
	RolePlace    = "place"
	RoleContent  = "content"
	RoleContent2 = "content2"
)

const (
	squareAspectLo = 0.85
	squareAspectHi = 1.15
	urlAspectMin   = 2.0
	lineAspectMin  = 1.6
	bucketGrain    = 10
)

// Roles maps each region id to a semantic role guessed from geometry.
// Every id in regions appears in the result; unclassified regions map
// to the empty string. The input order is treated as reading order and
// is never modified.
func Roles(regions []model.Region) map[int]string {
	roles := make(map[int]string, len(regions))
	for _, r := range regions {
		roles[r.ID] = ""
	}
	if len(regions) == 0 {
		return roles
	}

	assignQRCode(regions, roles)
	assignURL(regions, roles)
	assignTimeDatePlace(regions, roles)
	assignContent(regions, roles)
	return roles
}

// Apply runs Roles and writes the result into each region's Role
// field.
func Apply(regions []model.Region) {
	roles := Roles(regions)
	for i := range regions {
		regions[i].Role = roles[regions[i].ID]
	}
}

// assignQRCode picks the last square-ish region. The first region in
// reading order is exempt: a leading square is a logo or banner, not a
// QR code, and in that case no qr_code is assigned at all.
func assignQRCode(regions []model.Region, roles map[int]string) {
	var candidate *model.Region
	for i := range regions {
		a := regions[i].Aspect()
		if a >= squareAspectLo && a <= squareAspectHi {
			candidate = &regions[i]
		}
	}
	if candidate != nil && candidate.ID != regions[0].ID {
		roles[candidate.ID] = RoleQRCode
	}
}

// assignURL picks the last remaining wide region.
func assignURL(regions []model.Region, roles map[int]string) {
	var candidate *model.Region
	for i := range regions {
		if roles[regions[i].ID] != "" {
			continue
		}
		if regions[i].Aspect() >= urlAspectMin {
			candidate = &regions[i]
		}
	}
	if candidate != nil {
		roles[candidate.ID] = RoleURL
	}
}

// assignTimeDatePlace groups the remaining wide regions by rounded
// dimensions and, when the largest group has at least three members,
// labels its first three in reading order. Smaller groups are skipped
// entirely rather than partially labeled.
func assignTimeDatePlace(regions []model.Region, roles map[int]string) {
	type key struct{ w, h int }

	buckets := make(map[key][]int)
	var order []key
	for _, r := range regions {
		if roles[r.ID] != "" || r.Aspect() < lineAspectMin {
			continue
		}
		k := key{
			w: int(math.Round(float64(r.Width) / bucketGrain)),
			h: int(math.Round(float64(r.Height) / bucketGrain)),
		}
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], r.ID)
	}

	// First-seen bucket wins ties so the result is deterministic.
	var best []int
	for _, k := range order {
		if len(buckets[k]) > len(best) {
			best = buckets[k]
		}
	}
	if len(best) < 3 {
		return
	}

	names := []string{RoleTime, RoleDate, RolePlace}
	for i, id := range best[:3] {
		roles[id] = names[i]
	}
}

// assignContent gives the largest remaining region the content role
// and the runner-up content2. Area ties resolve in reading order.
func assignContent(regions []model.Region, roles map[int]string) {
	var remaining []model.Region
	for _, r := range regions {
		if roles[r.ID] == "" {
			remaining = append(remaining, r)
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Area() > remaining[j].Area()
	})
	if len(remaining) >= 1 {
		roles[remaining[0].ID] = RoleContent
	}
	if len(remaining) >= 2 {
		roles[remaining[1].ID] = RoleContent2
	}
}
