package data

import (
	"context"
	"testing"
	"time"

	"feed-engagement/ent"
	"feed-engagement/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/lib/pq"
)

type RollupRepoTestSuite struct {
	suite.Suite
	ctx            context.Context
	pgContainer    *postgres.PostgresContainer
	redisContainer *tcredis.RedisContainer
	entClient      *ent.Client
	redisClient    *redis.Client
	repo           *rollupRepo
}

func (s *RollupRepoTestSuite) SetupSuite() {
	s.ctx = context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.pgContainer = pgContainer

	// Start Redis container
	redisContainer, err := tcredis.Run(s.ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.redisContainer = redisContainer

	pgConnStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	redisEndpoint, err := redisContainer.Endpoint(s.ctx, "")
	require.NoError(s.T(), err)

	s.entClient, err = ent.Open("postgres", pgConnStr)
	require.NoError(s.T(), err)

	err = s.entClient.Schema.Create(s.ctx)
	require.NoError(s.T(), err)

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: redisEndpoint,
	})

	data := &Data{
		db:  s.entClient,
		rdb: s.redisClient,
	}
	s.repo = &rollupRepo{
		data: data,
		log:  log.NewHelper(log.DefaultLogger),
	}
}

func (s *RollupRepoTestSuite) TearDownSuite() {
	if s.entClient != nil {
		s.entClient.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
	if s.redisContainer != nil {
		_ = s.redisContainer.Terminate(s.ctx)
	}
}

func (s *RollupRepoTestSuite) TearDownTest() {
	s.entClient.Item.Delete().ExecX(s.ctx)
	s.redisClient.FlushAll(s.ctx)
}

func TestRollupRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RollupRepoTestSuite))
}

func (s *RollupRepoTestSuite) TestWriteRollup_CreatesItem() {
	// Arrange
	rollup := domain.Rollup{Impressions: 5, Clicks: 2, SuccessScore: 1.25}

	// Act
	err := s.repo.WriteRollup(s.ctx, 10, rollup)

	// Assert
	require.NoError(s.T(), err)
	row, err := s.entClient.Item.Get(s.ctx, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), row.ImpressionsCount)
	assert.Equal(s.T(), int64(2), row.ClicksCount)
	assert.InDelta(s.T(), 1.25, row.SuccessScore, 1e-9)
}

func (s *RollupRepoTestSuite) TestWriteRollup_UpdatesExistingItem() {
	// Arrange
	require.NoError(s.T(), s.repo.WriteRollup(s.ctx, 10, domain.Rollup{Impressions: 1}))

	// Act
	err := s.repo.WriteRollup(s.ctx, 10, domain.Rollup{Impressions: 3, Clicks: 1, SuccessScore: 2.0})

	// Assert
	require.NoError(s.T(), err)
	got, err := s.repo.GetRollup(s.ctx, 10)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), int64(3), got.Impressions)
	assert.Equal(s.T(), int64(1), got.Clicks)
	assert.InDelta(s.T(), 2.0, got.SuccessScore, 1e-9)
}

func (s *RollupRepoTestSuite) TestGetRollup_NotFound() {
	// Act
	got, err := s.repo.GetRollup(s.ctx, 999)

	// Assert
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *RollupRepoTestSuite) TestWriteRollup_PopulatesCache() {
	// Arrange
	rollup := domain.Rollup{Impressions: 4, Clicks: 2, SuccessScore: 1.5}
	require.NoError(s.T(), s.repo.WriteRollup(s.ctx, 20, rollup))

	// Act
	cached := s.repo.getCachedRollup(s.ctx, 20)

	// Assert
	require.NotNil(s.T(), cached)
	assert.Equal(s.T(), rollup, *cached)
}

func (s *RollupRepoTestSuite) TestGetRollup_ServesFromCacheAfterDBDelete() {
	// Arrange
	rollup := domain.Rollup{Impressions: 2, Clicks: 1, SuccessScore: 0.5}
	require.NoError(s.T(), s.repo.WriteRollup(s.ctx, 30, rollup))
	s.entClient.Item.Delete().ExecX(s.ctx)

	// Act
	got, err := s.repo.GetRollup(s.ctx, 30)

	// Assert
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), rollup, *got)
}

func (s *RollupRepoTestSuite) TestGetRollup_FallsBackToDBWhenCacheEmpty() {
	// Arrange
	rollup := domain.Rollup{Impressions: 7, Clicks: 3, SuccessScore: 1.0}
	require.NoError(s.T(), s.repo.WriteRollup(s.ctx, 40, rollup))
	s.redisClient.FlushAll(s.ctx)

	// Act
	got, err := s.repo.GetRollup(s.ctx, 40)

	// Assert
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), rollup, *got)
}

func (s *RollupRepoTestSuite) TestCacheKey() {
	// Arrange & Act
	key := s.repo.cacheKey(42)

	// Assert
	assert.Equal(s.T(), "rollup:42", key)
}
