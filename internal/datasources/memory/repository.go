// Package memory holds the content and follow graph in process. It backs local
// development and tests, and can be seeded from a JSON fixture.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

var (
	_ datasources.ContentRepository     = (*Repository)(nil)
	_ datasources.SocialGraphRepository = (*Repository)(nil)
)

type Repository struct {
	mu sync.RWMutex

	posts     map[string]domain.ContentItem
	hashtags  map[string][]string
	following map[string]map[string]struct{}
	followers map[string]map[string]struct{}
	likes     map[string]map[string]struct{} // user -> posts
	views     map[string]map[string]struct{} // user -> posts
}

func New() *Repository {
	return &Repository{
		posts:     make(map[string]domain.ContentItem),
		hashtags:  make(map[string][]string),
		following: make(map[string]map[string]struct{}),
		followers: make(map[string]map[string]struct{}),
		likes:     make(map[string]map[string]struct{}),
		views:     make(map[string]map[string]struct{}),
	}
}

// AddPost stores or replaces an item along with its hashtags.
func (r *Repository) AddPost(item domain.ContentItem, hashtags ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[item.ID] = item
	r.hashtags[item.ID] = append([]string(nil), hashtags...)
}

// Follow records a follow edge. Self-follows are ignored.
func (r *Repository) Follow(followerID, followingID string) {
	if followerID == followingID {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	addEdge(r.following, followerID, followingID)
	addEdge(r.followers, followingID, followerID)
}

func (r *Repository) Like(userID, postID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addEdge(r.likes, userID, postID)
}

func (r *Repository) View(userID, postID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addEdge(r.views, userID, postID)
}

func addEdge(edges map[string]map[string]struct{}, from, to string) {
	set, ok := edges[from]
	if !ok {
		set = make(map[string]struct{})
		edges[from] = set
	}
	set[to] = struct{}{}
}

func (r *Repository) FetchApprovedItems(
	_ context.Context,
	filter domain.ContentFilter,
	order domain.ContentOrder,
	offset, limit int,
) ([]domain.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ownerIn, likedBy map[string]struct{}
	if filter.OwnerIn != nil {
		ownerIn = toSet(filter.OwnerIn)
	}
	if filter.LikedByAnyOf != nil {
		likedBy = toSet(filter.LikedByAnyOf)
	}

	matched := []domain.ContentItem{}
	for _, item := range r.posts {
		if !r.matches(item, filter, ownerIn, likedBy) {
			continue
		}
		matched = append(matched, item)
	}

	if err := sortItems(matched, order, filter.ScoreAt); err != nil {
		return nil, err
	}

	if offset >= len(matched) {
		return []domain.ContentItem{}, nil
	}
	end := min(offset+limit, len(matched))
	return matched[offset:end], nil
}

func (r *Repository) matches(
	item domain.ContentItem,
	filter domain.ContentFilter,
	ownerIn, likedBy map[string]struct{},
) bool {
	if !item.Approved {
		return false
	}
	if ownerIn != nil {
		if _, ok := ownerIn[item.OwnerID]; !ok {
			return false
		}
	}
	if !filter.CreatedAfter.IsZero() && !item.CreatedAt.After(filter.CreatedAfter) {
		return false
	}
	if filter.ExcludeOwner != "" && item.OwnerID == filter.ExcludeOwner {
		return false
	}
	if filter.Category != "" && item.Category != filter.Category {
		return false
	}
	if viewer := filter.ExcludeInteractedBy; viewer != "" {
		if _, ok := r.likes[viewer][item.ID]; ok {
			return false
		}
		if _, ok := r.views[viewer][item.ID]; ok {
			return false
		}
	}
	if likedBy != nil {
		found := false
		for userID := range likedBy {
			if _, ok := r.likes[userID][item.ID]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortItems(items []domain.ContentItem, order domain.ContentOrder, scoreAt time.Time) error {
	if score, ok := order.Scorer(); ok {
		if scoreAt.IsZero() {
			return fmt.Errorf("content order %s needs a score reference time", order)
		}
		for i, ranked := range domain.RankItems(items, score, scoreAt) {
			items[i] = ranked.ContentItem
		}
		return nil
	}

	switch order {
	case "", domain.ContentOrderNewest, domain.ContentOrderMostEngaged:
	default:
		return fmt.Errorf("unknown content order: %s", order)
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if order == domain.ContentOrderMostEngaged {
			ea := a.LikesCount + a.CommentsCount + a.SharesCount
			eb := b.LikesCount + b.CommentsCount + b.SharesCount
			if ea != eb {
				return ea > eb
			}
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return nil
}

func (r *Repository) CountCoLikes(_ context.Context, likerIDs, itemIDs []string) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	likers := toSet(likerIDs)
	for _, itemID := range itemIDs {
		for likerID := range likers {
			if _, ok := r.likes[likerID][itemID]; ok {
				counts[itemID]++
			}
		}
	}
	return counts, nil
}

func (r *Repository) ListRecentHashtagUses(
	_ context.Context,
	since time.Time,
	limit int,
) ([]domain.HashtagUse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uses := []domain.HashtagUse{}
	for postID, tags := range r.hashtags {
		item, ok := r.posts[postID]
		if !ok || !item.Approved || item.CreatedAt.Before(since) {
			continue
		}
		for _, tag := range tags {
			uses = append(uses, domain.HashtagUse{Tag: tag, UsedAt: item.CreatedAt})
		}
	}

	sort.Slice(uses, func(i, j int) bool {
		if !uses[i].UsedAt.Equal(uses[j].UsedAt) {
			return uses[i].UsedAt.After(uses[j].UsedAt)
		}
		return uses[i].Tag < uses[j].Tag
	})

	if len(uses) > limit {
		uses = uses[:limit]
	}
	return uses, nil
}

func (r *Repository) GetFollowing(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.following[userID]), nil
}

func (r *Repository) ListFollowCandidates(_ context.Context, userID string, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	followed := r.following[userID]
	mutuals := r.mutualCounts(userID, func(candidateID string) bool {
		if candidateID == userID {
			return false
		}
		_, ok := followed[candidateID]
		return !ok
	})

	candidates := make([]string, 0, len(mutuals))
	for id := range mutuals {
		candidates = append(candidates, id)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if mutuals[a] != mutuals[b] {
			return mutuals[a] > mutuals[b]
		}
		if fa, fb := len(r.followers[a]), len(r.followers[b]); fa != fb {
			return fa > fb
		}
		return a < b
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (r *Repository) GetMutualFriendCounts(
	_ context.Context,
	userID string,
	candidateIDs []string,
) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := toSet(candidateIDs)
	return r.mutualCounts(userID, func(candidateID string) bool {
		_, ok := wanted[candidateID]
		return ok
	}), nil
}

// mutualCounts counts, for each user reachable in two hops from userID that
// keep accepts, how many of userID's followees follow them.
func (r *Repository) mutualCounts(userID string, keep func(string) bool) map[string]int {
	counts := make(map[string]int)
	for middleID := range r.following[userID] {
		for candidateID := range r.following[middleID] {
			if keep(candidateID) {
				counts[candidateID]++
			}
		}
	}
	return counts
}

func (r *Repository) GetFollowerCount(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.followers[userID]), nil
}

func (r *Repository) ListPopularUsers(_ context.Context, excludeIDs []string, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	excluded := toSet(excludeIDs)
	users := make([]string, 0, len(r.followers))
	for id, followers := range r.followers {
		if _, ok := excluded[id]; ok || len(followers) == 0 {
			continue
		}
		users = append(users, id)
	}
	sort.Slice(users, func(i, j int) bool {
		ci, cj := len(r.followers[users[i]]), len(r.followers[users[j]])
		if ci != cj {
			return ci > cj
		}
		return users[i] < users[j]
	})

	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
