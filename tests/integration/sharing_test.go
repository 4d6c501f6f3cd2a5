//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/di"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/config"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/tests/testutil"
)

// SharingTestSuite exercises the sharing API against PostgreSQL and Redis
type SharingTestSuite struct {
	suite.Suite
	server *testutil.TestServer
	redis  *miniredis.Miniredis
	owner  uuid.UUID
	token  string
}

func TestSharingSuite(t *testing.T) {
	suite.Run(t, new(SharingTestSuite))
}

// SetupSuite runs once before all tests
func (s *SharingTestSuite) SetupSuite() {
	s.redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	cfg := testutil.DefaultTestConfig()
	cfg.Storage.Backend = config.StorageBackendPostgres
	s.server = testutil.NewTestServerWithOptions(s.T(), cfg, di.Options{
		PostgresPool: testPool,
		RedisClient:  client,
	})
}

// SetupTest runs before each test
func (s *SharingTestSuite) SetupTest() {
	_, err := testPool.Exec(context.Background(),
		"TRUNCATE TABLE room_members, group_members, share_grants, share_links, entries CASCADE")
	s.Require().NoError(err)
	s.redis.FlushAll()

	s.owner = uuid.New()
	s.token = s.server.TokenFor(s.T(), s.owner)
}

// =============================================================================
// Helper Functions
// =============================================================================

func (s *SharingTestSuite) do(req testutil.HTTPRequest) *testutil.HTTPResponse {
	return s.server.Do(s.T(), req)
}

func (s *SharingTestSuite) createEntry(body map[string]any) string {
	resp := s.do(testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/v1/entries",
		Body:        body,
		AccessToken: s.token,
	}).AssertStatus(http.StatusCreated)
	return resp.GetJSONData()["id"].(string)
}

func (s *SharingTestSuite) setLink(entryID string, body map[string]any) map[string]any {
	resp := s.do(testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/entries/" + entryID + "/links",
		Body:        body,
		AccessToken: s.token,
	}).AssertStatus(http.StatusOK)
	return resp.GetJSONData()
}

// =============================================================================
// Tests
// =============================================================================

func (s *SharingTestSuite) TestReadiness() {
	s.do(testutil.HTTPRequest{Method: http.MethodGet, Path: "/readyz"}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("status", "ready").
		AssertJSONPath("services.redis.status", "healthy")
}

func (s *SharingTestSuite) TestFolderLinkInheritsRoomEntryPoint() {
	roomID := s.createEntry(map[string]any{"type": "room", "title": "Room", "roomType": "custom"})
	folderID := s.createEntry(map[string]any{"type": "folder", "title": "Docs", "parentId": roomID})
	fileID := s.createEntry(map[string]any{"type": "file", "title": "report.docx", "parentId": folderID})

	link := s.setLink(roomID, map[string]any{"access": "review"})["link"].(map[string]any)

	s.do(testutil.HTTPRequest{
		Method:    http.MethodGet,
		Path:      "/api/v1/entries/" + fileID + "/access",
		LinkToken: link["token"].(string),
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.entryId", fileID).
		AssertJSONPath("data.access", "review").
		AssertJSONPath("data.linkId", link["id"])
}

func (s *SharingTestSuite) TestPasswordSessionSurvivesInRedis() {
	roomID := s.createEntry(map[string]any{"type": "room", "title": "Room", "roomType": "custom"})
	link := s.setLink(roomID, map[string]any{"access": "read", "password": "s3cret"})["link"].(map[string]any)
	token := link["token"].(string)

	resp := s.do(testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/v1/share/" + token + "/unlock",
		Body:   map[string]any{"password": "s3cret"},
	}).AssertStatus(http.StatusOK)
	cookie := resp.GetCookie(s.server.Config.Sharing.SessionCookieName)
	s.Require().NotNil(cookie)

	s.do(testutil.HTTPRequest{
		Method:     http.MethodGet,
		Path:       "/api/v1/entries/" + roomID + "/access",
		LinkToken:  token,
		SessionKey: cookie.Value,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.access", "read")

	// changing the password invalidates existing sessions
	s.setLink(roomID, map[string]any{"linkId": link["id"], "password": "other"})

	s.do(testutil.HTTPRequest{
		Method:     http.MethodGet,
		Path:       "/api/v1/entries/" + roomID + "/access",
		LinkToken:  token,
		SessionKey: cookie.Value,
	}).AssertStatus(http.StatusUnauthorized).AssertJSONError("PASSWORD_REQUIRED", "")
}

func (s *SharingTestSuite) TestPasswordAttemptsAreRateLimited() {
	roomID := s.createEntry(map[string]any{"type": "room", "title": "Room", "roomType": "custom"})
	link := s.setLink(roomID, map[string]any{"access": "read", "password": "s3cret"})["link"].(map[string]any)
	path := "/api/v1/share/" + link["token"].(string) + "/unlock"

	for i := 0; i < 10; i++ {
		s.do(testutil.HTTPRequest{
			Method: http.MethodPost,
			Path:   path,
			Body:   map[string]any{"password": "wrong"},
		}).AssertStatus(http.StatusUnauthorized)
	}

	resp := s.do(testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   path,
		Body:   map[string]any{"password": "s3cret"},
	}).AssertStatus(http.StatusTooManyRequests).AssertJSONError("TOO_MANY_REQUESTS", "")
	s.NotEmpty(resp.Header().Get("Retry-After"))
}

func (s *SharingTestSuite) TestDeletingRoomPrimaryLinkPersistsReplacement() {
	roomID := s.createEntry(map[string]any{"type": "room", "title": "Room", "roomType": "custom"})

	primary := s.do(testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/links/primary",
		AccessToken: s.token,
	}).AssertStatus(http.StatusOK).GetJSONData()["link"].(map[string]any)

	out := s.setLink(roomID, map[string]any{"linkId": primary["id"], "access": "none"})
	s.Equal(true, out["deleted"])
	replacement := out["replacement"].(map[string]any)

	s.do(testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/links/primary",
		AccessToken: s.token,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.created", false).
		AssertJSONPath("data.link.id", replacement["id"])

	s.do(testutil.HTTPRequest{
		Method:    http.MethodGet,
		Path:      "/api/v1/entries/" + roomID + "/access",
		LinkToken: primary["token"].(string),
	}).AssertStatus(http.StatusForbidden)
}

func (s *SharingTestSuite) TestGroupGrantNotifiesMembers() {
	roomID := s.createEntry(map[string]any{"type": "room", "title": "Room", "roomType": "custom"})
	members := []uuid.UUID{uuid.New(), uuid.New()}

	resp := s.do(testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/v1/groups",
		AccessToken: s.token,
	}).AssertStatus(http.StatusCreated)
	groupID := resp.GetJSONData()["id"].(string)

	for _, m := range members {
		s.do(testutil.HTTPRequest{
			Method:      http.MethodPost,
			Path:        "/api/v1/groups/" + groupID + "/members",
			Body:        map[string]any{"userId": m.String()},
			AccessToken: s.token,
		}).AssertStatus(http.StatusNoContent)
	}

	s.do(testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/entries/" + roomID + "/grants",
		Body:        map[string]any{"subjectType": "group", "subjectId": groupID, "access": "comment"},
		AccessToken: s.token,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.notified", float64(len(members)))

	for _, m := range members {
		token := s.server.TokenFor(s.T(), m)
		s.do(testutil.HTTPRequest{
			Method:      http.MethodGet,
			Path:        "/api/v1/shared/new-count",
			AccessToken: token,
		}).AssertStatus(http.StatusOK).AssertJSONPath("data.count", float64(1))

		s.do(testutil.HTTPRequest{
			Method:      http.MethodGet,
			Path:        "/api/v1/entries/" + roomID + "/access",
			AccessToken: token,
		}).AssertStatus(http.StatusOK).AssertJSONPath("data.access", "comment")
	}

	s.do(testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/shared/new-count",
		AccessToken: s.token,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.count", float64(0))
}
