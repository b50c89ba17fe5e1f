package neo4jgraph

import (
	"context"
	"os"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestGraph(t *testing.T) *Repository {
	if testing.Short() {
		t.Skip("skipping Neo4j integration tests in short mode")
	}
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI not set")
	}

	ctx := context.Background()
	driver, err := Connect(ctx, uri, os.Getenv("NEO4J_USER"), os.Getenv("NEO4J_PASSWORD"))
	require.NoError(t, err)

	repo := New(driver, "")
	require.NoError(t, repo.EnsureSchema(ctx))

	_, err = neo4j.ExecuteQuery(ctx, driver, `
		UNWIND $edges AS edge
		MERGE (a:User {id: edge.from})
		MERGE (b:User {id: edge.to})
		MERGE (a)-[:FOLLOWS]->(b)
	`, map[string]any{
		"edges": []any{
			map[string]any{"from": "user-a", "to": "user-b"},
			map[string]any{"from": "user-a", "to": "user-c"},
			map[string]any{"from": "user-b", "to": "user-d"},
			map[string]any{"from": "user-c", "to": "user-d"},
			map[string]any{"from": "user-b", "to": "user-e"},
		},
	}, neo4j.EagerResultTransformer)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, err := neo4j.ExecuteQuery(ctx, driver,
			`MATCH (u:User) WHERE u.id STARTS WITH 'user-' DETACH DELETE u`,
			nil, neo4j.EagerResultTransformer)
		assert.NoError(t, err)
		assert.NoError(t, driver.Close(ctx))
	})

	return repo
}

func TestRepository_SocialGraph(t *testing.T) {
	r := setupTestGraph(t)
	ctx := context.Background()

	following, err := r.GetFollowing(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-b", "user-c"}, following)

	candidates, err := r.ListFollowCandidates(ctx, "user-a", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-d", "user-e"}, candidates)

	mutuals, err := r.GetMutualFriendCounts(ctx, "user-a", candidates)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"user-d": 2, "user-e": 1}, mutuals)

	followers, err := r.GetFollowerCount(ctx, "user-d")
	require.NoError(t, err)
	assert.Equal(t, 2, followers)

	followers, err = r.GetFollowerCount(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, followers)

	popular, err := r.ListPopularUsers(ctx, []string{"user-d"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-b", "user-c", "user-e"}, popular)
}

func TestRepository_ListFollowCandidates_TiesKeepMostFollowed(t *testing.T) {
	r := setupTestGraph(t)
	ctx := context.Background()

	// user-e and user-f are both one hop past user-b; user-f has more followers.
	_, err := neo4j.ExecuteQuery(ctx, r.driver, `
		UNWIND $edges AS edge
		MERGE (a:User {id: edge.from})
		MERGE (b:User {id: edge.to})
		MERGE (a)-[:FOLLOWS]->(b)
	`, map[string]any{
		"edges": []any{
			map[string]any{"from": "user-b", "to": "user-f"},
			map[string]any{"from": "user-x", "to": "user-f"},
			map[string]any{"from": "user-y", "to": "user-f"},
		},
	}, neo4j.EagerResultTransformer)
	require.NoError(t, err)

	candidates, err := r.ListFollowCandidates(ctx, "user-a", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"user-d", "user-f"}, candidates)
}
