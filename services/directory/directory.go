// Package directory holds the static UK region/county/town hierarchy used for
// browsing, dropdown population and free-text location resolution.
package directory

// County is a county and its towns, in display order.
type County struct {
	Name  string
	Towns []string
}

// Region is one top-level node of the hierarchy.
type Region struct {
	Name     string
	Counties []County
}

// Directory is the immutable three-level lookup. Lookups are permissive:
// unknown keys yield empty results, never errors, mirroring dropdowns that
// simply show no options.
type Directory struct {
	regions []Region
}

// New builds a Directory over the given regions. The declared order is
// preserved and drives resolution tie-breaking.
func New(regions []Region) *Directory {
	return &Directory{regions: regions}
}

// UK returns the directory over the built-in UK hierarchy.
func UK() *Directory {
	return New(ukRegions)
}

// Regions returns region names in declared order.
func (d *Directory) Regions() []string {
	names := make([]string, 0, len(d.regions))
	for _, r := range d.regions {
		names = append(names, r.Name)
	}
	return names
}

// CountiesOf returns the counties of a region in declared order. An unknown
// region yields an empty slice.
func (d *Directory) CountiesOf(region string) []string {
	for _, r := range d.regions {
		if r.Name != region {
			continue
		}
		names := make([]string, 0, len(r.Counties))
		for _, c := range r.Counties {
			names = append(names, c.Name)
		}
		return names
	}
	return nil
}

// TownsOf returns the towns of a county in declared order. Unknown region or
// county yields an empty slice.
func (d *Directory) TownsOf(region, county string) []string {
	for _, r := range d.regions {
		if r.Name != region {
			continue
		}
		for _, c := range r.Counties {
			if c.Name == county {
				return append([]string(nil), c.Towns...)
			}
		}
	}
	return nil
}
