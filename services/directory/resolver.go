package directory

import "strings"

// MatchKind tags a LocationMatch variant.
type MatchKind int

const (
	NoMatch MatchKind = iota
	CountyMatch
	TownMatch
)

// LocationMatch is the result of resolving a free-text location name. Region,
// county and town carry the directory's original casing, never the caller's.
type LocationMatch struct {
	Kind   MatchKind
	Region string
	County string
	Town   string
}

// fold normalizes a name for comparison: lowercase, trimmed, hyphens treated
// as spaces. "Stoke-on-Trent", "stoke on trent" and the URL segment
// "stoke-on-trent" all fold to the same key.
func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "-", " ")))
}

// Resolve determines whether searchText names a county or a town and returns
// the enclosing hierarchy. Matching is case-insensitive over trimmed input,
// with hyphens and spaces interchangeable. Counties are checked across all
// regions before any town is considered, so a name that is a county in one
// region and a town in another always resolves to the county. Within a pass,
// the first hit in declared order wins.
func (d *Directory) Resolve(searchText string) LocationMatch {
	q := fold(searchText)
	if q == "" {
		return LocationMatch{Kind: NoMatch}
	}
	for _, r := range d.regions {
		for _, c := range r.Counties {
			if fold(c.Name) == q {
				return LocationMatch{Kind: CountyMatch, Region: r.Name, County: c.Name}
			}
		}
	}
	for _, r := range d.regions {
		for _, c := range r.Counties {
			for _, t := range c.Towns {
				if fold(t) == q {
					return LocationMatch{Kind: TownMatch, Region: r.Name, County: c.Name, Town: t}
				}
			}
		}
	}
	return LocationMatch{Kind: NoMatch}
}

// ResolveSegment resolves a URL path segment that encodes spaces as hyphens,
// e.g. "milton-keynes". Resolve folds hyphens itself, so segments for
// genuinely hyphenated names ("stoke-on-trent") work too.
func (d *Directory) ResolveSegment(segment string) LocationMatch {
	return d.Resolve(segment)
}
