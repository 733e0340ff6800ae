package data

import (
	"context"
	"io"
	"testing"
	"time"

	"feed-engagement/ent"
	"feed-engagement/ent/enttest"
	"feed-engagement/internal/biz"
	"feed-engagement/internal/domain"
	"feed-engagement/internal/infra/eventbus"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

// EngagementFlowTestSuite exercises the full pipeline in one process:
// append commits with an outbox row, the forwarder publishes it, the router
// dispatches to the sync handler, and the synchronizer writes the rollup.
type EngagementFlowTestSuite struct {
	suite.Suite
	ctx        context.Context
	cancel     context.CancelFunc
	client     *ent.Client
	bus        *eventbus.EventBus
	router     *eventbus.Router
	forwarder  *eventbus.Forwarder
	engagement *biz.EngagementUsecase
	rollups    domain.RollupRepository
}

func TestEngagementFlowTestSuite(t *testing.T) {
	suite.Run(t, new(EngagementFlowTestSuite))
}

func (s *EngagementFlowTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.client = enttest.Open(s.T(), "sqlite3", "file:flow_test?mode=memory&cache=shared&_fk=1")

	logger := log.NewStdLogger(io.Discard)
	wmLogger := watermill.NopLogger{}
	data := &Data{db: s.client}

	events := NewInteractionRepo(data, logger)
	s.rollups = NewRollupRepo(data, logger)
	outbox := eventbus.NewOutboxPublisher(s.client)
	uow := NewUnitOfWork(data, outbox, logger)

	s.bus = eventbus.NewEventBus(wmLogger)
	s.forwarder = eventbus.NewForwarder(s.client, s.bus.Publisher(), 10*time.Millisecond, 100, wmLogger)

	router, err := eventbus.NewRouter(s.bus, wmLogger)
	s.Require().NoError(err)
	s.router = router

	s.engagement = biz.NewEngagementUsecase(events, uow, logger)
	syncer := biz.NewSyncerUsecase(events, s.rollups, domain.ScoreWeights{Reaction: 2.0, Comment: 4.0}, s.bus, logger)
	biz.RegisterEventHandlers(router, syncer, logger)

	go func() {
		_ = router.Run(s.ctx)
	}()
	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		s.FailNow("router never started")
	}
	s.forwarder.Start(s.ctx)
}

func (s *EngagementFlowTestSuite) TearDownTest() {
	s.forwarder.Stop()
	s.cancel()
	_ = s.router.Close()
	_ = s.bus.Close()
	_ = s.client.Close()
}

func (s *EngagementFlowTestSuite) i64(v int64) *int64 { return &v }

func (s *EngagementFlowTestSuite) record(userID, itemID *int64, category domain.Category) {
	_, err := s.engagement.RecordEvent(s.ctx, biz.RecordEventInput{
		UserID:   userID,
		ItemID:   itemID,
		Category: category,
		Surface:  domain.SurfaceHome,
		Position: 1,
	})
	s.Require().NoError(err)
}

func (s *EngagementFlowTestSuite) waitForRollup(itemID int64, want domain.Rollup) {
	s.Eventually(func() bool {
		got, err := s.rollups.GetRollup(context.Background(), itemID)
		return err == nil && got != nil && *got == want
	}, 5*time.Second, 20*time.Millisecond)
}

func (s *EngagementFlowTestSuite) TestAppendTriggersRollupSync() {
	// Arrange & Act
	s.record(s.i64(1), s.i64(10), domain.CategoryImpression)
	s.record(s.i64(1), s.i64(10), domain.CategoryClick)

	// Assert: one distinct impression user, so score is 1/1
	s.waitForRollup(10, domain.Rollup{Impressions: 1, Clicks: 1, SuccessScore: 1.0})
}

func (s *EngagementFlowTestSuite) TestJourneyAttributionFlowsIntoRollup() {
	// Arrange
	s.record(s.i64(1), s.i64(10), domain.CategoryImpression)
	s.record(s.i64(1), s.i64(10), domain.CategoryClick)

	// Act
	it, err := s.engagement.RecordJourney(s.ctx, 1, 10, domain.CategoryReaction)

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(it)
	// (1 + 1*2.0) / 1
	s.waitForRollup(10, domain.Rollup{Impressions: 1, Clicks: 1, SuccessScore: 3.0})
}

func (s *EngagementFlowTestSuite) TestUnattributedJourneyLeavesRollupAlone() {
	// Arrange
	s.record(s.i64(1), s.i64(10), domain.CategoryImpression)

	// Act
	it, err := s.engagement.RecordJourney(s.ctx, 1, 10, domain.CategoryComment)

	// Assert
	s.Require().NoError(err)
	s.Nil(it)
	s.waitForRollup(10, domain.Rollup{Impressions: 1, Clicks: 0, SuccessScore: 1.0})
}

func (s *EngagementFlowTestSuite) TestItemlessEventLeavesNoRollup() {
	// Arrange & Act
	s.record(s.i64(1), nil, domain.CategoryImpression)

	// Assert: the event is stored but no rollup ever appears
	time.Sleep(200 * time.Millisecond)
	s.Equal(1, s.client.InteractionEvent.Query().CountX(context.Background()))
	got, err := s.rollups.GetRollup(context.Background(), 10)
	s.Require().NoError(err)
	s.Nil(got)
}
