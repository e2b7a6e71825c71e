// Package commitstore memoizes commit details shared by every gutter.
package commitstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/golang/groupcache/singleflight"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// Ensure Store implements domain.CommitDetails interface.
var _ domain.CommitDetails = (*Store)(nil)

// Store fetches commit details through the VCS and keeps them in a bounded
// LRU keyed by (file, revision). Concurrent lookups of the same key share a
// single show query.
type Store struct {
	vcs    domain.VCS
	cache  *lru.Cache
	flight singleflight.Group
	mu     sync.Mutex
}

// New creates a Store holding at most maxEntries details.
func New(vcs domain.VCS, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = domain.DefaultCacheEntries
	}
	return &Store{
		vcs:   vcs,
		cache: lru.New(maxEntries),
	}
}

type flightResult struct {
	v   any
	err error
}

// GetDetail returns the cached detail or issues one show query for it.
// Failed queries are not cached. The shared query outlives any single
// caller; a caller whose ctx ends stops waiting without failing the others.
func (s *Store) GetDetail(ctx context.Context, filePath, revision string) (*domain.CommitDetail, error) {
	rev := domain.StripBoundary(domain.NormalizeRevision(revision))
	if !domain.IsCommitted(rev) {
		return nil, domain.ErrUncommitted
	}
	key := domain.CommitKey{FilePath: filePath, Revision: rev}

	if detail, ok := s.lookup(key); ok {
		return detail, nil
	}

	shared := context.WithoutCancel(ctx)
	done := make(chan flightResult, 1)
	go func() {
		v, err := s.flight.Do(key.String(), func() (any, error) {
			return s.fetch(shared, key)
		})
		done <- flightResult{v: v, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return res.v.(*domain.CommitDetail), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) fetch(ctx context.Context, key domain.CommitKey) (*domain.CommitDetail, error) {
	if detail, ok := s.lookup(key); ok {
		return detail, nil
	}
	rev := key.Revision
	out, err := s.vcs.Show(ctx, key.FilePath, rev, domain.ShowFormat)
	if err != nil {
		return nil, err
	}
	detail, err := domain.ParseCommitDetail(out)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rev, err)
	}
	s.mu.Lock()
	s.cache.Add(key, detail)
	s.mu.Unlock()
	return detail, nil
}

// Len returns the number of cached details.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func (s *Store) lookup(key domain.CommitKey) (*domain.CommitDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*domain.CommitDetail), true
}
