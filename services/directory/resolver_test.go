package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCountyCaseInsensitive(t *testing.T) {
	d := UK()

	for _, input := range []string{"Essex", "essex", "ESSEX", "  essex  "} {
		got := d.Resolve(input)
		assert.Equal(t, LocationMatch{Kind: CountyMatch, Region: "East of England", County: "Essex"}, got,
			"input %q must return directory casing", input)
	}
}

func TestResolveTown(t *testing.T) {
	d := UK()

	got := d.Resolve("derby")
	assert.Equal(t, LocationMatch{Kind: TownMatch, Region: "East Midlands", County: "Derbyshire", Town: "Derby"}, got)
}

func TestResolveCountyBeatsTown(t *testing.T) {
	// "Kent" is a county in region B and a town in region A: the county must
	// win even though region A is declared first.
	d := New([]Region{
		{
			Name: "Region A",
			Counties: []County{
				{Name: "Countyshire", Towns: []string{"Kent"}},
			},
		},
		{
			Name: "Region B",
			Counties: []County{
				{Name: "Kent", Towns: []string{"Maidstone"}},
			},
		},
	})

	got := d.Resolve("kent")
	assert.Equal(t, LocationMatch{Kind: CountyMatch, Region: "Region B", County: "Kent"}, got)
}

func TestResolveFirstDeclaredWinsWithinPass(t *testing.T) {
	d := New([]Region{
		{Name: "First", Counties: []County{{Name: "Springfield"}}},
		{Name: "Second", Counties: []County{{Name: "Springfield"}}},
	})

	got := d.Resolve("springfield")
	assert.Equal(t, "First", got.Region)
}

func TestResolveNoMatch(t *testing.T) {
	d := UK()

	assert.Equal(t, NoMatch, d.Resolve("atlantis").Kind)
	assert.Equal(t, NoMatch, d.Resolve("").Kind)
	assert.Equal(t, NoMatch, d.Resolve("   ").Kind)
}

func TestResolveSegment(t *testing.T) {
	d := UK()

	got := d.ResolveSegment("milton-keynes")
	assert.Equal(t, LocationMatch{Kind: TownMatch, Region: "South East", County: "Buckinghamshire", Town: "Milton Keynes"}, got)

	assert.Equal(t, CountyMatch, d.ResolveSegment("essex").Kind)
}

func TestResolveSegmentHyphenatedTownNames(t *testing.T) {
	// Segments for towns whose real names contain hyphens must resolve; the
	// comparison treats hyphens and spaces as the same character.
	d := UK()

	tests := []struct {
		segment string
		town    string
	}{
		{"stoke-on-trent", "Stoke-on-Trent"},
		{"southend-on-sea", "Southend-on-Sea"},
		{"stratford-upon-avon", "Stratford-upon-Avon"},
		{"weston-super-mare", "Weston-super-Mare"},
		{"burton-upon-trent", "Burton upon Trent"},
	}
	for _, tt := range tests {
		got := d.ResolveSegment(tt.segment)
		assert.Equal(t, TownMatch, got.Kind, "segment %q", tt.segment)
		assert.Equal(t, tt.town, got.Town, "segment %q keeps directory casing", tt.segment)
	}

	// Free text with the original hyphens resolves the same way.
	assert.Equal(t, "Stoke-on-Trent", d.Resolve("Stoke-on-Trent").Town)
}
