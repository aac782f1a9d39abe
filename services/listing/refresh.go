package listing

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"scarlet/database/repository/profile"
	"scarlet/models"
)

// Refresher keeps a periodically refreshed in-memory snapshot of browsable
// profiles. Every fetch carries a monotonic sequence number and a snapshot is
// only replaced by a higher-sequence result, so a slow stale response can
// never clobber a fresher one.
type Refresher struct {
	repo     profileRepo.ProfileRepository
	interval time.Duration

	nextSeq atomic.Uint64

	mu      sync.RWMutex
	snap    []models.Profile
	snapSeq uint64
	loaded  bool
}

// NewRefresher builds a Refresher polling at the given interval.
func NewRefresher(repo profileRepo.ProfileRepository, interval time.Duration) *Refresher {
	return &Refresher{repo: repo, interval: interval}
}

// Start performs one immediate refresh and then polls until ctx is done.
func (r *Refresher) Start(ctx context.Context) {
	r.refresh()
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.refresh()
			}
		}
	}()
}

// Snapshot returns the current snapshot and whether one has been loaded yet.
func (r *Refresher) Snapshot() ([]models.Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap, r.loaded
}

func (r *Refresher) refresh() {
	seq := r.nextSeq.Add(1)
	profiles, err := r.repo.Search(profileRepo.SearchCriteria{MemberType: models.MemberTypeEscort})
	if err != nil {
		// The previous snapshot stays in place; the next tick retries.
		zap.L().Warn("listing refresh failed", zap.Uint64("seq", seq), zap.Error(err))
		return
	}
	r.apply(seq, profiles)
}

// apply installs a fetch result unless a higher-sequence result already
// landed.
func (r *Refresher) apply(seq uint64, profiles []models.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded && seq <= r.snapSeq {
		return
	}
	r.snap = profiles
	r.snapSeq = seq
	r.loaded = true
}
