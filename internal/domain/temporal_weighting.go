package domain

import (
	"math"
	"sort"
	"time"
)

// HashtagDecayHalfLife is the age at which a hashtag use counts half as much.
const HashtagDecayHalfLife = 24 * time.Hour

// DecayWeight returns exp(-lambda * age) where lambda = ln(2) / halfLife.
// Uses from the future (clock skew) weigh 1.
func DecayWeight(age, halfLife time.Duration) float64 {
	if age <= 0 {
		return 1
	}
	lambda := math.Ln2 / halfLife.Hours()
	return math.Exp(-lambda * age.Hours())
}

// RankHashtags sums the decayed weight of each use per tag and orders tags by
// decayed score, then raw usage count, then tag. Returns nil when uses is empty.
func RankHashtags(uses []HashtagUse, halfLife time.Duration, now time.Time) []HashtagRecommendation {
	if len(uses) == 0 {
		return nil
	}

	byTag := make(map[string]*HashtagRecommendation)
	for _, use := range uses {
		rec, ok := byTag[use.Tag]
		if !ok {
			rec = &HashtagRecommendation{Tag: use.Tag}
			byTag[use.Tag] = rec
		}
		rec.UsageCount++
		rec.Score += DecayWeight(now.Sub(use.UsedAt), halfLife)
	}

	result := make([]HashtagRecommendation, 0, len(byTag))
	for _, rec := range byTag {
		result = append(result, *rec)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		if result[i].UsageCount != result[j].UsageCount {
			return result[i].UsageCount > result[j].UsageCount
		}
		return result[i].Tag < result[j].Tag
	})

	return result
}
