package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scarlet/models"
)

func snapIDs(r *Refresher) []string {
	snap, ok := r.Snapshot()
	if !ok {
		return nil
	}
	var ids []string
	for _, p := range snap {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRefresherStaleResultDiscarded(t *testing.T) {
	r := NewRefresher(nil, 0)

	// Fetch 2 lands before fetch 1: the slow stale response must not
	// overwrite the fresher snapshot.
	r.apply(2, []models.Profile{{ID: "fresh"}})
	r.apply(1, []models.Profile{{ID: "stale"}})

	assert.Equal(t, []string{"fresh"}, snapIDs(r))
}

func TestRefresherNewerResultWins(t *testing.T) {
	r := NewRefresher(nil, 0)

	r.apply(1, []models.Profile{{ID: "first"}})
	r.apply(2, []models.Profile{{ID: "second"}})

	assert.Equal(t, []string{"second"}, snapIDs(r))
}

func TestRefresherSnapshotBeforeLoad(t *testing.T) {
	r := NewRefresher(nil, 0)

	_, ok := r.Snapshot()
	require.False(t, ok, "no snapshot before the first successful fetch")
}
