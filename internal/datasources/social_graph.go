package datasources

import (
	"context"
)

// SocialGraphRepository combines all follow graph read interfaces.
type SocialGraphRepository interface {
	FollowingLister
	FollowCandidateLister
	MutualFriendCounter
	FollowerCounter
	PopularUserLister
}

// FollowingLister returns the IDs of the users userID follows.
type FollowingLister interface {
	GetFollowing(ctx context.Context, userID string) ([]string, error)
}

// FollowCandidateLister returns users followed by the people userID follows,
// excluding userID and anyone userID already follows.
type FollowCandidateLister interface {
	ListFollowCandidates(ctx context.Context, userID string, limit int) ([]string, error)
}

// MutualFriendCounter counts, for each candidate, how many of the users userID
// follows also follow that candidate. Candidates with no mutuals may be absent.
type MutualFriendCounter interface {
	GetMutualFriendCounts(ctx context.Context, userID string, candidateIDs []string) (map[string]int, error)
}

// FollowerCounter returns how many users follow userID.
type FollowerCounter interface {
	GetFollowerCount(ctx context.Context, userID string) (int, error)
}

// PopularUserLister returns users ordered by follower count, descending,
// skipping excludeIDs.
type PopularUserLister interface {
	ListPopularUsers(ctx context.Context, excludeIDs []string, limit int) ([]string, error)
}

// NullSocialGraphRepository is a null implementation of SocialGraphRepository.
type NullSocialGraphRepository struct{}

var _ SocialGraphRepository = NullSocialGraphRepository{}

func (NullSocialGraphRepository) GetFollowing(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (NullSocialGraphRepository) ListFollowCandidates(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}

func (NullSocialGraphRepository) GetMutualFriendCounts(
	_ context.Context,
	_ string,
	_ []string,
) (map[string]int, error) {
	return map[string]int{}, nil
}

func (NullSocialGraphRepository) GetFollowerCount(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (NullSocialGraphRepository) ListPopularUsers(_ context.Context, _ []string, _ int) ([]string, error) {
	return nil, nil
}
