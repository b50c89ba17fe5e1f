package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

var (
	_ datasources.ContentRepository     = (*Repository)(nil)
	_ datasources.SocialGraphRepository = (*Repository)(nil)
)

type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

func New(db *sql.DB, flavor sqlbuilder.Flavor) *Repository {
	return &Repository{db: db, flavor: flavor}
}

var postColumns = []string{
	"p.id",
	"p.user_id",
	"p.post_type",
	"p.caption",
	"p.media_url",
	"p.thumbnail_url",
	"p.likes_count",
	"p.comments_count",
	"p.shares_count",
	"p.views_count",
	"p.is_approved",
	"p.created_at",
}

func (r *Repository) FetchApprovedItems(
	ctx context.Context,
	filter domain.ContentFilter,
	order domain.ContentOrder,
	offset, limit int,
) ([]domain.ContentItem, error) {
	// A present but empty set can match nothing.
	if (filter.OwnerIn != nil && len(filter.OwnerIn) == 0) ||
		(filter.LikedByAnyOf != nil && len(filter.LikedByAnyOf) == 0) {
		return []domain.ContentItem{}, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select(postColumns...)
	sb.From("posts p")
	sb.Where(r.buildContentConditions(sb, filter)...)

	orderings, err := r.buildContentOrder(sb, order, filter.ScoreAt)
	if err != nil {
		return nil, fmt.Errorf("building content order by clause: %w", err)
	}
	sb.OrderBy(orderings...)
	sb.Offset(offset)
	sb.Limit(limit)

	items, err := queryRows(ctx, r.db, sb, scanContentItem)
	if err != nil {
		return nil, fmt.Errorf("fetching approved items: %w", err)
	}
	return items, nil
}

func (r *Repository) buildContentConditions(sb *sqlbuilder.SelectBuilder, filter domain.ContentFilter) []string {
	conds := []string{sb.Equal("p.is_approved", true)}

	if len(filter.OwnerIn) > 0 {
		conds = append(conds, sb.In("p.user_id", stringArgs(filter.OwnerIn)...))
	}

	if !filter.CreatedAfter.IsZero() {
		conds = append(conds, sb.GreaterThan("p.created_at", filter.CreatedAfter))
	}

	if filter.ExcludeOwner != "" {
		conds = append(conds, sb.NotEqual("p.user_id", filter.ExcludeOwner))
	}

	if filter.Category != "" {
		conds = append(conds, sb.Equal("p.post_type", string(filter.Category)))
	}

	if filter.ExcludeInteractedBy != "" {
		liked := r.flavor.NewSelectBuilder()
		liked.Select("1").From("likes l").Where(
			"l.post_id = p.id",
			liked.Equal("l.user_id", filter.ExcludeInteractedBy),
		)

		viewed := r.flavor.NewSelectBuilder()
		viewed.Select("1").From("post_views v").Where(
			"v.post_id = p.id",
			viewed.Equal("v.user_id", filter.ExcludeInteractedBy),
		)

		conds = append(conds, sb.NotExists(liked), sb.NotExists(viewed))
	}

	if len(filter.LikedByAnyOf) > 0 {
		likedBy := r.flavor.NewSelectBuilder()
		likedBy.Select("1").From("likes lb").Where(
			"lb.post_id = p.id",
			likedBy.In("lb.user_id", stringArgs(filter.LikedByAnyOf)...),
		)
		conds = append(conds, sb.Exists(likedBy))
	}

	return conds
}

func (r *Repository) buildContentOrder(
	sb *sqlbuilder.SelectBuilder,
	order domain.ContentOrder,
	scoreAt time.Time,
) ([]string, error) {
	switch order {
	case "", domain.ContentOrderNewest:
		return []string{"p.created_at DESC", "p.id"}, nil
	case domain.ContentOrderMostEngaged:
		return []string{
			"(p.likes_count + p.comments_count + p.shares_count) DESC",
			"p.created_at DESC",
			"p.id",
		}, nil
	case domain.ContentOrderPersonalizedScore, domain.ContentOrderTrendingScore:
		if scoreAt.IsZero() {
			return nil, fmt.Errorf("content order %s needs a score reference time", order)
		}
		ageHours, err := r.ageHoursExpr(sb, scoreAt)
		if err != nil {
			return nil, err
		}
		return []string{scoreExpr(order, ageHours) + " DESC", "p.created_at DESC", "p.id"}, nil
	default:
		return nil, fmt.Errorf("unknown content order: %s", order)
	}
}

// scoreExpr mirrors domain.PersonalizedScore and domain.TrendingScore.
func scoreExpr(order domain.ContentOrder, ageHours string) string {
	if order == domain.ContentOrderTrendingScore {
		return fmt.Sprintf(
			"((p.likes_count * %s + p.comments_count * %s + p.shares_count * %s + p.views_count * %s) / (%s + %s))",
			weight(domain.TrendingLikeWeight),
			weight(domain.TrendingCommentWeight),
			weight(domain.TrendingShareWeight),
			weight(domain.TrendingViewWeight),
			ageHours,
			weight(domain.TrendingAgeOffsetHours),
		)
	}
	return fmt.Sprintf(
		"(p.likes_count * %s + p.comments_count * %s + p.shares_count * %s + p.views_count * %s - %s)",
		weight(domain.PersonalizedLikeWeight),
		weight(domain.PersonalizedCommentWeight),
		weight(domain.PersonalizedShareWeight),
		weight(domain.PersonalizedViewWeight),
		ageHours,
	)
}

// ageHoursExpr is the fractional age of p.created_at at scoreAt, in hours.
func (r *Repository) ageHoursExpr(sb *sqlbuilder.SelectBuilder, scoreAt time.Time) (string, error) {
	switch r.flavor {
	case sqlbuilder.MySQL:
		return fmt.Sprintf("(TIMESTAMPDIFF(SECOND, p.created_at, %s) / 3600.0)", sb.Var(scoreAt)), nil
	case sqlbuilder.PostgreSQL:
		return fmt.Sprintf("(EXTRACT(EPOCH FROM (CAST(%s AS TIMESTAMP) - p.created_at)) / 3600.0)", sb.Var(scoreAt)), nil
	default:
		return "", fmt.Errorf("score orders are not supported for SQL flavor %s", r.flavor)
	}
}

func weight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func scanContentItem(rows *sql.Rows) (domain.ContentItem, error) {
	var item domain.ContentItem
	var category string
	err := rows.Scan(
		&item.ID,
		&item.OwnerID,
		&category,
		&item.Caption,
		&item.MediaURL,
		&item.ThumbnailURL,
		&item.LikesCount,
		&item.CommentsCount,
		&item.SharesCount,
		&item.ViewsCount,
		&item.Approved,
		&item.CreatedAt,
	)
	item.Category = domain.Category(category)
	return item, err
}

func (r *Repository) CountCoLikes(ctx context.Context, likerIDs, itemIDs []string) (map[string]int, error) {
	counts := make(map[string]int)
	if len(likerIDs) == 0 || len(itemIDs) == 0 {
		return counts, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select("post_id", "COUNT(DISTINCT user_id)")
	sb.From("likes")
	sb.Where(
		sb.In("user_id", stringArgs(likerIDs)...),
		sb.In("post_id", stringArgs(itemIDs)...),
	)
	sb.GroupBy("post_id")

	rows, err := queryRows(ctx, r.db, sb, scanIDCount)
	if err != nil {
		return nil, fmt.Errorf("counting co-likes: %w", err)
	}
	for _, row := range rows {
		counts[row.id] = row.count
	}
	return counts, nil
}

func (r *Repository) ListRecentHashtagUses(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]domain.HashtagUse, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("h.tag", "p.created_at")
	sb.From("post_hashtags h")
	sb.Join("posts p", "p.id = h.post_id")
	sb.Where(
		sb.Equal("p.is_approved", true),
		sb.GreaterEqualThan("p.created_at", since),
	)
	sb.OrderBy("p.created_at DESC", "h.tag")
	sb.Limit(limit)

	uses, err := queryRows(ctx, r.db, sb, func(rows *sql.Rows) (domain.HashtagUse, error) {
		var use domain.HashtagUse
		err := rows.Scan(&use.Tag, &use.UsedAt)
		return use, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing recent hashtag uses: %w", err)
	}
	return uses, nil
}

func (r *Repository) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("following_id")
	sb.From("follows")
	sb.Where(sb.Equal("follower_id", userID))
	sb.OrderBy("following_id")

	ids, err := queryRows(ctx, r.db, sb, scanString)
	if err != nil {
		return nil, fmt.Errorf("listing followed users: %w", err)
	}
	return ids, nil
}

// ListFollowCandidates walks two hops out from userID, ordering candidates by
// how many of userID's followees follow them and then by follower count, so
// the limit keeps the same candidates RecommendUsers ranks highest.
func (r *Repository) ListFollowCandidates(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := queryRows(ctx, r.db, r.buildFollowCandidatesQuery(userID, limit), scanIDCount)
	if err != nil {
		return nil, fmt.Errorf("listing follow candidates: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.id)
	}
	return ids, nil
}

func (r *Repository) buildFollowCandidatesQuery(userID string, limit int) *sqlbuilder.SelectBuilder {
	followed := r.flavor.NewSelectBuilder()
	followed.Select("following_id").From("follows").Where(followed.Equal("follower_id", userID))

	sb := r.flavor.NewSelectBuilder()
	sb.Select("f2.following_id", "COUNT(DISTINCT f1.following_id) AS mutuals")
	sb.From("follows f1")
	sb.Join("follows f2", "f2.follower_id = f1.following_id")
	sb.Where(
		sb.Equal("f1.follower_id", userID),
		sb.NotEqual("f2.following_id", userID),
		sb.NotIn("f2.following_id", followed),
	)
	sb.GroupBy("f2.following_id")
	sb.OrderBy(
		"mutuals DESC",
		"(SELECT COUNT(*) FROM follows fc WHERE fc.following_id = f2.following_id) DESC",
		"f2.following_id",
	)
	sb.Limit(limit)
	return sb
}

// GetMutualFriendCounts counts, per candidate, the users userID follows who
// also follow that candidate.
func (r *Repository) GetMutualFriendCounts(
	ctx context.Context,
	userID string,
	candidateIDs []string,
) (map[string]int, error) {
	counts := make(map[string]int, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return counts, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select("f2.following_id", "COUNT(DISTINCT f1.following_id)")
	sb.From("follows f1")
	sb.Join("follows f2", "f2.follower_id = f1.following_id")
	sb.Where(
		sb.Equal("f1.follower_id", userID),
		sb.In("f2.following_id", stringArgs(candidateIDs)...),
	)
	sb.GroupBy("f2.following_id")

	rows, err := queryRows(ctx, r.db, sb, scanIDCount)
	if err != nil {
		return nil, fmt.Errorf("counting mutual friends: %w", err)
	}
	for _, row := range rows {
		counts[row.id] = row.count
	}
	return counts, nil
}

func (r *Repository) GetFollowerCount(ctx context.Context, userID string) (int, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("follows")
	sb.Where(sb.Equal("following_id", userID))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting followers: %w", err)
	}
	return count, nil
}

func (r *Repository) ListPopularUsers(ctx context.Context, excludeIDs []string, limit int) ([]string, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("following_id", "COUNT(*) AS followers")
	sb.From("follows")
	if len(excludeIDs) > 0 {
		sb.Where(sb.NotIn("following_id", stringArgs(excludeIDs)...))
	}
	sb.GroupBy("following_id")
	sb.OrderBy("followers DESC", "following_id")
	sb.Limit(limit)

	rows, err := queryRows(ctx, r.db, sb, scanIDCount)
	if err != nil {
		return nil, fmt.Errorf("listing popular users: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.id)
	}
	return ids, nil
}

type idCount struct {
	id    string
	count int
}

func scanIDCount(rows *sql.Rows) (idCount, error) {
	var row idCount
	err := rows.Scan(&row.id, &row.count)
	return row, err
}

func scanString(rows *sql.Rows) (string, error) {
	var s string
	err := rows.Scan(&s)
	return s, err
}

func queryRows[T any](
	ctx context.Context,
	db *sql.DB,
	sb *sqlbuilder.SelectBuilder,
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	query, args := sb.Build()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := []T{}
	for rows.Next() {
		result, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return results, nil
}

func stringArgs(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}
