package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory() *Directory {
	return New([]Region{
		{
			Name: "East Midlands",
			Counties: []County{
				{Name: "Derbyshire", Towns: []string{"Derby", "Chesterfield"}},
				{Name: "Nottinghamshire", Towns: []string{"Nottingham"}},
			},
		},
		{
			Name: "East of England",
			Counties: []County{
				{Name: "Essex", Towns: []string{"Chelmsford", "Colchester"}},
			},
		},
	})
}

func TestRegionsOrder(t *testing.T) {
	d := testDirectory()
	assert.Equal(t, []string{"East Midlands", "East of England"}, d.Regions())
}

func TestCountiesOf(t *testing.T) {
	d := testDirectory()

	assert.Equal(t, []string{"Derbyshire", "Nottinghamshire"}, d.CountiesOf("East Midlands"))
	assert.Empty(t, d.CountiesOf("Narnia"), "unknown region yields no options, not an error")
	assert.Empty(t, d.CountiesOf(""))
}

func TestTownsOf(t *testing.T) {
	d := testDirectory()

	assert.Equal(t, []string{"Derby", "Chesterfield"}, d.TownsOf("East Midlands", "Derbyshire"))
	assert.Empty(t, d.TownsOf("East Midlands", "Essex"), "county under the wrong region yields nothing")
	assert.Empty(t, d.TownsOf("Narnia", "Derbyshire"))
}

func TestUKDirectoryShape(t *testing.T) {
	d := UK()

	require.NotEmpty(t, d.Regions())
	assert.Contains(t, d.CountiesOf("East of England"), "Essex")
	assert.Contains(t, d.TownsOf("East Midlands", "Derbyshire"), "Derby")
}
