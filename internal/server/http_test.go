package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"feed-engagement/internal/biz"
	"feed-engagement/internal/conf"
	"feed-engagement/internal/data"
	"feed-engagement/internal/domain"
	"feed-engagement/internal/infra/eventbus"
	"feed-engagement/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	kratoshttp "github.com/go-kratos/kratos/v2/transport/http"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type HTTPServerTestSuite struct {
	suite.Suite
	srv *kratoshttp.Server
}

func TestHTTPServerTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPServerTestSuite))
}

func (s *HTTPServerTestSuite) SetupTest() {
	logger := log.NewStdLogger(io.Discard)
	d, cleanup, err := data.NewData(&conf.Data{
		Database: &conf.Database{Driver: "sqlite3", Source: "file:http_test?mode=memory&cache=shared&_fk=1"},
	}, logger)
	s.Require().NoError(err)
	s.T().Cleanup(cleanup)

	events := data.NewInteractionRepo(d, logger)
	rollups := data.NewRollupRepo(d, logger)
	uow := data.NewUnitOfWork(d, eventbus.NewOutboxPublisher(data.ProvideEntClient(d)), logger)

	engagement := biz.NewEngagementUsecase(events, uow, logger)
	syncer := biz.NewSyncerUsecase(events, rollups, domain.ScoreWeights{Reaction: 2.0, Comment: 4.0}, nil, logger)
	svc := service.NewEngagementService(engagement, syncer, rollups)

	s.srv = NewHTTPServer(&conf.Server{}, svc, logger)
}

func (s *HTTPServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.srv.ServeHTTP(rec, req)
	return rec
}

func (s *HTTPServerTestSuite) recordEvent(userID, itemID int64, category string) {
	rec := s.do("POST", "/v1/events", map[string]any{
		"user_id":  userID,
		"item_id":  itemID,
		"category": category,
		"surface":  "home",
		"position": 1,
	})
	s.Require().Equal(201, rec.Code, rec.Body.String())
}

func (s *HTTPServerTestSuite) TestRecordEvent() {
	// Act
	rec := s.do("POST", "/v1/events", map[string]any{
		"user_id":  1,
		"item_id":  10,
		"category": "impression",
		"surface":  "home",
		"position": 1,
	})

	// Assert
	s.Equal(201, rec.Code)
	var reply service.RecordEventReply
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reply))
	s.Positive(reply.EventID)
}

func (s *HTTPServerTestSuite) TestRecordEvent_UnknownCategory() {
	// Act
	rec := s.do("POST", "/v1/events", map[string]any{
		"category": "share",
		"surface":  "home",
		"position": 1,
	})

	// Assert
	s.Equal(400, rec.Code)
}

func (s *HTTPServerTestSuite) TestRecordEvent_MalformedBody() {
	// Act
	req := httptest.NewRequest("POST", "/v1/events", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.srv.ServeHTTP(rec, req)

	// Assert
	s.Equal(400, rec.Code)
}

func (s *HTTPServerTestSuite) TestRecordEvent_MethodNotAllowed() {
	// Act
	rec := s.do("GET", "/v1/events", nil)

	// Assert
	s.Equal(405, rec.Code)
}

func (s *HTTPServerTestSuite) TestRecordJourney() {
	// Arrange
	s.recordEvent(1, 10, "click")

	// Act
	rec := s.do("POST", "/v1/journeys", map[string]any{
		"user_id":  1,
		"item_id":  10,
		"category": "reaction",
	})

	// Assert
	s.Equal(200, rec.Code)
	var reply service.RecordJourneyReply
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reply))
	s.True(reply.Attributed)
}

func (s *HTTPServerTestSuite) TestRecordJourney_NotAttributed() {
	// Act
	rec := s.do("POST", "/v1/journeys", map[string]any{
		"user_id":  1,
		"item_id":  10,
		"category": "comment",
	})

	// Assert
	s.Equal(200, rec.Code)
	var reply service.RecordJourneyReply
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reply))
	s.False(reply.Attributed)
}

func (s *HTTPServerTestSuite) TestRecordJourney_RejectsImpression() {
	// Act
	rec := s.do("POST", "/v1/journeys", map[string]any{
		"user_id":  1,
		"item_id":  10,
		"category": "impression",
	})

	// Assert
	s.Equal(400, rec.Code)
}

func (s *HTTPServerTestSuite) TestBulkRecomputeAndGetRollup() {
	// Arrange
	s.recordEvent(1, 10, "impression")
	s.recordEvent(1, 10, "click")

	// Act
	rec := s.do("POST", "/v1/rollups/recompute", map[string]any{
		"item_ids": []int64{10},
	})

	// Assert
	s.Equal(200, rec.Code)
	var bulkReply service.BulkRecomputeReply
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &bulkReply))
	s.Empty(bulkReply.FailedItemIDs)

	rec = s.do("GET", "/v1/rollup?item_id=10", nil)
	s.Equal(200, rec.Code)
	var reply service.GetRollupReply
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reply))
	s.True(reply.Found)
	s.Equal(int64(1), reply.Impressions)
	s.Equal(int64(1), reply.Clicks)
	s.InDelta(1.0, reply.SuccessScore, 1e-9)
}

func (s *HTTPServerTestSuite) TestGetRollup_NotFound() {
	// Act
	rec := s.do("GET", "/v1/rollup?item_id=99", nil)

	// Assert
	s.Equal(200, rec.Code)
	var reply service.GetRollupReply
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reply))
	s.False(reply.Found)
}

func (s *HTTPServerTestSuite) TestGetRollup_InvalidItemID() {
	// Act
	rec := s.do("GET", "/v1/rollup?item_id=abc", nil)

	// Assert
	s.Equal(400, rec.Code)
}
