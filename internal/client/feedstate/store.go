package feedstate

import (
	"log/slog"
	"sync"

	"Snapgram/internal/core/comments"
	"Snapgram/internal/core/posts"
)

// Store is an in-memory client-side cache of feed posts. Each post is
// held exactly once, keyed by id, with display order tracked separately,
// so an interaction update (likes, comments) is applied in one place and
// every view of the post observes it.
type Store struct {
	mu       sync.RWMutex
	byID     map[int64]*posts.Post
	order    []int64
	selected int64 // 0 means nothing selected
	logger   *slog.Logger
}

// NewStore creates an empty feed store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		byID:   make(map[int64]*posts.Post),
		logger: logger,
	}
}

// Replace swaps the entire feed contents, preserving the given order.
// Posts sharing an id with a previous entry are overwritten. The selected
// post is kept if it survives the replacement, cleared otherwise.
func (s *Store) Replace(feed []posts.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[int64]*posts.Post, len(feed))
	s.order = make([]int64, 0, len(feed))
	for i := range feed {
		p := feed[i]
		if _, dup := s.byID[p.ID]; dup {
			continue
		}
		s.byID[p.ID] = &p
		s.order = append(s.order, p.ID)
	}

	if _, ok := s.byID[s.selected]; !ok {
		s.selected = 0
	}

	s.logger.Debug("feed replaced", "post_count", len(s.order))
}

// Prepend inserts a newly created post at the front of the feed. If the
// post is already present it is updated in place and its position kept.
func (s *Store) Prepend(p posts.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID]; exists {
		s.byID[p.ID] = &p
		return
	}

	s.byID[p.ID] = &p
	s.order = append([]int64{p.ID}, s.order...)
}

// Apply overwrites a cached post with a fresh server copy. Posts not in
// the store are ignored: the feed decides membership, not updates.
func (s *Store) Apply(p posts.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID]; !exists {
		return
	}
	s.byID[p.ID] = &p
}

// ApplyLikes replaces the liker list of a cached post.
func (s *Store) ApplyLikes(postID int64, likes []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.byID[postID]
	if !exists {
		return
	}
	if likes == nil {
		likes = []int64{}
	}
	p.Likes = likes
}

// ApplyComment appends a comment to a cached post.
func (s *Store) ApplyComment(postID int64, c comments.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.byID[postID]
	if !exists {
		return
	}
	p.Comments = append(p.Comments, c)
}

// Remove drops a post from the feed. Removing the selected post clears
// the selection.
func (s *Store) Remove(postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[postID]; !exists {
		return
	}
	delete(s.byID, postID)
	for i, id := range s.order {
		if id == postID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == postID {
		s.selected = 0
	}
}

// Select marks a post as the current detail view. Selecting an id that
// is not in the store clears the selection.
func (s *Store) Select(postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[postID]; !exists {
		s.selected = 0
		return
	}
	s.selected = postID
}

// Selected returns a copy of the currently selected post, or false when
// nothing is selected.
func (s *Store) Selected() (posts.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.byID[s.selected]
	if !exists {
		return posts.Post{}, false
	}
	return *p, true
}

// Get returns a copy of the post with the given id.
func (s *Store) Get(postID int64) (posts.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.byID[postID]
	if !exists {
		return posts.Post{}, false
	}
	return *p, true
}

// Posts returns the feed in display order as copies.
func (s *Store) Posts() []posts.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]posts.Post, 0, len(s.order))
	for _, id := range s.order {
		if p, exists := s.byID[id]; exists {
			out = append(out, *p)
		}
	}
	return out
}

// Len reports the number of cached posts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
