package command

import "time"

// EngineConfig holds the tunables shared by the feed and recommendation commands.
type EngineConfig struct {
	// RepositoryTimeout bounds every individual repository call.
	RepositoryTimeout time.Duration

	// ExplorePoolSize is how many of the newest eligible items are shuffled.
	ExplorePoolSize int

	// FollowCandidateLimit caps the two-hop candidates considered for user
	// recommendations.
	FollowCandidateLimit int

	// FollowerCountConcurrency limits parallel follower count lookups.
	FollowerCountConcurrency int

	// ContentCandidateLimit caps the items liked by followees that are ranked
	// for content recommendations.
	ContentCandidateLimit int

	// HashtagUsageLimit caps the recent hashtag uses aggregated per request.
	HashtagUsageLimit int

	// Now returns the reference time for scoring. Defaults to time.Now.
	Now func() time.Time
}

func (c EngineConfig) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
