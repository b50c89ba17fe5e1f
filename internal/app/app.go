package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/feed-ranking/internal/cache"
	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/datasources/memory"
	"github.com/jbeshir/feed-ranking/internal/datasources/neo4jgraph"
	"github.com/jbeshir/feed-ranking/internal/datasources/sqldb"
	"github.com/jbeshir/feed-ranking/internal/transport/web/router"
	"github.com/jbeshir/feed-ranking/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	content, graph, err := SetupRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repositories: %w", err)
	}

	resultCache, components, err := SetupResultCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	policies := DefaultCachePolicies(ctx)
	queries := command.NewQueries(content, graph, resultCache, policies, DefaultEngineConfig(ctx))

	httpRouter, err := router.MakeRouter(
		queries,
		router.Config{
			RSSFeedBaseURL:      MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			RSSFeedAuthorName:   MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			RSSFeedAuthorEmail:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			TrendingCacheMaxAge: trendingCacheMaxAge(policies),
			AllowedOrigins:      GetEnvAsStringsOrDefault("CORS_ALLOWED_ORIGINS", nil),
			RateLimitRequests:   GetEnvAsIntOrDefault(ctx, "RATE_LIMIT_REQUESTS", 0),
			RateLimitWindow:     GetEnvAsDurationOrDefault(ctx, "RATE_LIMIT_WINDOW", 0),
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return append(components, &server.Server{
		TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
		TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
		AutocertHostnames: GetEnvAsStringsOrDefault("HTTP_AUTOCERT_HOSTNAMES", nil),
		Router:            httpRouter,
	}), nil
}

// SetupRepositories connects the content and social graph stores selected by
// CONTENT_DRIVER and GRAPH_DRIVER. The "sql" and "memory" graph drivers share
// the content store's connection or data.
func SetupRepositories(
	ctx context.Context,
) (datasources.ContentRepository, datasources.SocialGraphRepository, error) {
	var sqlRepo *sqldb.Repository
	var memoryRepo *memory.Repository

	var content datasources.ContentRepository
	switch driver := MustGetEnvAsString(ctx, "CONTENT_DRIVER"); driver {
	case "null":
		content = datasources.NullContentRepository{}
	case "memory":
		memoryRepo = memory.New()
		if path := GetEnvAsStringOrDefault("MEMORY_FIXTURE_PATH", ""); path != "" {
			if err := memoryRepo.LoadFile(path); err != nil {
				return nil, nil, fmt.Errorf("loading memory fixture: %w", err)
			}
		}
		content = memoryRepo
	case "mysql", "postgres":
		repo, err := setupSQLRepository(ctx, sqldb.Driver(driver))
		if err != nil {
			return nil, nil, err
		}
		sqlRepo = repo
		content = repo
	default:
		return nil, nil, fmt.Errorf("unknown content driver [%s]", driver)
	}

	var graph datasources.SocialGraphRepository
	switch driver := MustGetEnvAsString(ctx, "GRAPH_DRIVER"); driver {
	case "null":
		graph = datasources.NullSocialGraphRepository{}
	case "memory":
		if memoryRepo == nil {
			return nil, nil, fmt.Errorf("graph driver [memory] requires content driver [memory]")
		}
		graph = memoryRepo
	case "sql":
		if sqlRepo == nil {
			return nil, nil, fmt.Errorf("graph driver [sql] requires a SQL content driver")
		}
		graph = sqlRepo
	case "neo4j":
		repo, err := setupNeo4jRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		graph = repo
	default:
		return nil, nil, fmt.Errorf("unknown graph driver [%s]", driver)
	}

	return content, graph, nil
}

func setupSQLRepository(ctx context.Context, driver sqldb.Driver) (*sqldb.Repository, error) {
	flavor, err := driver.Flavor()
	if err != nil {
		return nil, err
	}

	uriVar := "MYSQL_URI"
	if driver == sqldb.DriverPostgres {
		uriVar = "POSTGRES_URI"
	}

	db, err := sqldb.Connect(ctx, driver, MustGetEnvAsString(ctx, uriVar))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}
	return sqldb.New(db, flavor), nil
}

func setupNeo4jRepository(ctx context.Context) (*neo4jgraph.Repository, error) {
	driver, err := neo4jgraph.Connect(
		ctx,
		MustGetEnvAsString(ctx, "NEO4J_URI"),
		MustGetEnvAsString(ctx, "NEO4J_USER"),
		MustGetEnvAsString(ctx, "NEO4J_PASSWORD"),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}

	repo := neo4jgraph.New(driver, GetEnvAsStringOrDefault("NEO4J_DATABASE", "neo4j"))
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring neo4j schema: %w", err)
	}
	return repo, nil
}

// SetupResultCache builds the guarded cache selected by CACHE_DRIVER, along
// with any background components the store needs.
func SetupResultCache(ctx context.Context) (*cache.Resilient, []Component, error) {
	var store cache.Store
	var components []Component

	switch driver := MustGetEnvAsString(ctx, "CACHE_DRIVER"); driver {
	case "null":
		store = cache.NullStore{}
	case "memory":
		memoryStore := cache.NewMemoryStore(GetEnvAsDurationOrDefault(ctx, "CACHE_CLEANUP_INTERVAL", time.Minute))
		store = memoryStore
		components = append(components, memoryStore)
	case "redis":
		client, err := cache.ConnectRedis(ctx, MustGetEnvAsString(ctx, "REDIS_URL"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		store = cache.NewRedisStore(client)
	default:
		return nil, nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}

	return cache.NewResilient(store, DefaultResilientConfig(ctx)), components, nil
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "gateway":
			validators = append(validators, router.NewGatewayValidator(
				GetEnvAsStringOrDefault("GATEWAY_VIEWER_HEADER", router.DefaultGatewayHeader),
			))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
