package filter

import (
	"strings"
	"time"

	"scarlet/models"
)

// Apply returns the records satisfying every active member of fs, in their
// original order. Soft-deleted records are dropped unconditionally before any
// filter runs. Age buckets are evaluated against the current date, never a
// cached one.
func Apply(records []models.Profile, fs FilterSet) []models.Profile {
	return applyAt(records, fs, time.Now())
}

func applyAt(records []models.Profile, fs FilterSet, now time.Time) []models.Profile {
	out := make([]models.Profile, 0, len(records))
	for _, p := range records {
		if p.IsDeleted {
			continue
		}
		if matches(p, fs, now) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Profile, fs FilterSet, now time.Time) bool {
	if fs.TextQuery != "" &&
		!strings.Contains(strings.ToLower(p.FullName), strings.ToLower(fs.TextQuery)) {
		return false
	}
	if fs.Region != "" && p.Location.Region != fs.Region {
		return false
	}
	if fs.County != "" && p.Location.County != fs.County {
		return false
	}
	if fs.Town != "" && p.Location.Town != fs.Town {
		return false
	}
	if fs.Gender != "" && p.PersonalDetails.Gender != fs.Gender {
		return false
	}
	if fs.AgeBucket != "" {
		dob := p.PersonalDetails.DateOfBirth
		if dob.IsZero() || BucketFor(AgeAt(dob, now)) != fs.AgeBucket {
			return false
		}
	}
	if fs.Ethnicity != "" && p.Ethnicity != fs.Ethnicity {
		return false
	}
	if fs.Nationality != "" && p.Nationality != fs.Nationality {
		return false
	}
	if fs.BookingDuration != "" && !hasRateForDuration(p.Rates, fs.BookingDuration) {
		return false
	}
	if len(fs.RequiredActivities) > 0 && !hasAllActivities(p.PersonalDetails.Activities, fs.RequiredActivities) {
		return false
	}
	return true
}

// hasRateForDuration reports whether either rate table carries a non-empty
// price for the duration key.
func hasRateForDuration(r models.Rates, duration string) bool {
	return r.InCall[duration] != "" || r.OutCall[duration] != ""
}

// hasAllActivities reports whether the profile's activities are a
// case-insensitive superset of the required set.
func hasAllActivities(have, required []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, a := range have {
		set[strings.ToLower(a)] = struct{}{}
	}
	for _, req := range required {
		if _, ok := set[strings.ToLower(req)]; !ok {
			return false
		}
	}
	return true
}
