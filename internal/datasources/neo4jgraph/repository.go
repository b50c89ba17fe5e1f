package neo4jgraph

import (
	"context"
	"fmt"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

var _ datasources.SocialGraphRepository = (*Repository)(nil)

// Repository answers follow graph queries from (:User)-[:FOLLOWS]->(:User) edges.
type Repository struct {
	driver   neo4j.DriverWithContext
	database string
}

func New(driver neo4j.DriverWithContext, database string) *Repository {
	return &Repository{driver: driver, database: database}
}

func Connect(ctx context.Context, uri, user, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("checking neo4j connection: %w", err)
	}

	return driver, nil
}

// EnsureSchema creates the uniqueness constraint that backs User lookups by id.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: r.database,
	})
	defer func() { _ = session.Close(ctx) }()

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`, nil)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("ensuring neo4j schema: %w", err)
	}
	return nil
}

func (r *Repository) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	query := `
		MATCH (:User {id: $userId})-[:FOLLOWS]->(f:User)
		RETURN f.id AS id
		ORDER BY id
	`
	rows, err := r.readIDCounts(ctx, query, map[string]any{"userId": userID}, "")
	if err != nil {
		return nil, fmt.Errorf("listing followed users: %w", err)
	}
	return idsOf(rows), nil
}

// followCandidatesQuery orders two-hop candidates by mutual count and then by
// follower count, the same keys RecommendUsers ranks by.
const followCandidatesQuery = `
		MATCH (u:User {id: $userId})-[:FOLLOWS]->(m:User)-[:FOLLOWS]->(c:User)
		WHERE c <> u AND NOT (u)-[:FOLLOWS]->(c)
		WITH c, count(DISTINCT m) AS n
		RETURN c.id AS id, n, COUNT { (:User)-[:FOLLOWS]->(c) } AS followers
		ORDER BY n DESC, followers DESC, id
		LIMIT $limit
	`

func (r *Repository) ListFollowCandidates(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := r.readIDCounts(ctx, followCandidatesQuery, map[string]any{
		"userId": userID,
		"limit":  int64(limit),
	}, "n")
	if err != nil {
		return nil, fmt.Errorf("listing follow candidates: %w", err)
	}
	return idsOf(rows), nil
}

func (r *Repository) GetMutualFriendCounts(
	ctx context.Context,
	userID string,
	candidateIDs []string,
) (map[string]int, error) {
	counts := make(map[string]int, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return counts, nil
	}

	query := `
		MATCH (:User {id: $userId})-[:FOLLOWS]->(m:User)-[:FOLLOWS]->(c:User)
		WHERE c.id IN $candidateIds
		RETURN c.id AS id, count(DISTINCT m) AS n
	`
	rows, err := r.readIDCounts(ctx, query, map[string]any{
		"userId":       userID,
		"candidateIds": candidateIDs,
	}, "n")
	if err != nil {
		return nil, fmt.Errorf("counting mutual friends: %w", err)
	}
	for _, row := range rows {
		counts[row.id] = row.count
	}
	return counts, nil
}

func (r *Repository) GetFollowerCount(ctx context.Context, userID string) (int, error) {
	query := `
		OPTIONAL MATCH (f:User)-[:FOLLOWS]->(:User {id: $userId})
		RETURN $userId AS id, count(f) AS n
	`
	rows, err := r.readIDCounts(ctx, query, map[string]any{"userId": userID}, "n")
	if err != nil {
		return 0, fmt.Errorf("counting followers: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].count, nil
}

func (r *Repository) ListPopularUsers(ctx context.Context, excludeIDs []string, limit int) ([]string, error) {
	if excludeIDs == nil {
		excludeIDs = []string{}
	}

	query := `
		MATCH (f:User)-[:FOLLOWS]->(u:User)
		WHERE NOT u.id IN $excludeIds
		RETURN u.id AS id, count(f) AS n
		ORDER BY n DESC, id
		LIMIT $limit
	`
	rows, err := r.readIDCounts(ctx, query, map[string]any{
		"excludeIds": excludeIDs,
		"limit":      int64(limit),
	}, "n")
	if err != nil {
		return nil, fmt.Errorf("listing popular users: %w", err)
	}
	return idsOf(rows), nil
}

type idCount struct {
	id    string
	count int
}

// readIDCounts runs a read query returning an "id" column and, when countKey
// is set, an integer column of that name.
func (r *Repository) readIDCounts(
	ctx context.Context,
	query string,
	params map[string]any,
	countKey string,
) ([]idCount, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: r.database,
	})
	defer func() { _ = session.Close(ctx) }()

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		rows := []idCount{}
		for res.Next(ctx) {
			rec := res.Record()
			id, _, err := neo4j.GetRecordValue[string](rec, "id")
			if err != nil {
				return nil, fmt.Errorf("reading id: %w", err)
			}

			row := idCount{id: id}
			if countKey != "" {
				n, _, err := neo4j.GetRecordValue[int64](rec, countKey)
				if err != nil {
					return nil, fmt.Errorf("reading %s: %w", countKey, err)
				}
				row.count = int(n)
			}
			rows = append(rows, row)
		}
		return rows, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]idCount), nil
}

func idsOf(rows []idCount) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.id)
	}
	return ids
}
