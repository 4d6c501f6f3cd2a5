package router_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/tests/testutil"
)

func createEntry(t *testing.T, srv *testutil.TestServer, token string, body map[string]any) string {
	t.Helper()
	resp := srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/v1/entries",
		Body:        body,
		AccessToken: token,
	}).AssertStatus(http.StatusCreated)

	id, ok := resp.GetJSONData()["id"].(string)
	require.True(t, ok)
	return id
}

func createRoom(t *testing.T, srv *testutil.TestServer, token, roomType string) string {
	t.Helper()
	return createEntry(t, srv, token, map[string]any{"type": "room", "title": "Room", "roomType": roomType})
}

func createGroup(t *testing.T, srv *testutil.TestServer, token string) string {
	t.Helper()
	resp := srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/v1/groups",
		AccessToken: token,
	}).AssertStatus(http.StatusCreated)

	id, ok := resp.GetJSONData()["id"].(string)
	require.True(t, ok)
	return id
}

func TestRouter_Health(t *testing.T) {
	srv := testutil.NewTestServer(t)

	srv.Do(t, testutil.HTTPRequest{Method: http.MethodGet, Path: "/healthz"}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("status", "ok")

	srv.Do(t, testutil.HTTPRequest{Method: http.MethodGet, Path: "/readyz"}).
		AssertStatus(http.StatusOK)
}

func TestRouter_Metrics(t *testing.T) {
	srv := testutil.NewTestServer(t)
	srv.Do(t, testutil.HTTPRequest{Method: http.MethodGet, Path: "/healthz"})

	resp := srv.Do(t, testutil.HTTPRequest{Method: http.MethodGet, Path: "/metrics"}).
		AssertStatus(http.StatusOK)

	assert.Contains(t, resp.Body.String(), "http_requests_total")
}

func TestRouter_CreateEntry(t *testing.T) {
	srv := testutil.NewTestServer(t)
	owner := uuid.New()
	token := srv.TokenFor(t, owner)

	t.Run("requires a user", func(t *testing.T) {
		srv.Do(t, testutil.HTTPRequest{
			Method: http.MethodPost,
			Path:   "/api/v1/entries",
			Body:   map[string]any{"type": "room", "title": "Room", "roomType": "custom"},
		}).AssertStatus(http.StatusUnauthorized)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodPost,
			Path:        "/api/v1/entries",
			Body:        map[string]any{"type": "drive", "title": "Room"},
			AccessToken: token,
		}).AssertStatus(http.StatusBadRequest).AssertJSONError("VALIDATION_ERROR", "")
	})

	t.Run("owner gets editing on nested entries", func(t *testing.T) {
		roomID := createRoom(t, srv, token, "custom")
		folderID := createEntry(t, srv, token, map[string]any{"type": "folder", "title": "Docs", "parentId": roomID})

		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodGet,
			Path:        "/api/v1/entries/" + folderID,
			AccessToken: token,
		}).
			AssertStatus(http.StatusOK).
			AssertJSONPath("data.parentId", roomID).
			AssertJSONPath("data.access.access", "editing").
			AssertJSONPath("data.access.channel", "principal")
	})
}

func TestRouter_PrimaryLinkAndLinkAccess(t *testing.T) {
	srv := testutil.NewTestServer(t)
	token := srv.TokenFor(t, uuid.New())
	roomID := createRoom(t, srv, token, "custom")

	resp := srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/links/primary",
		AccessToken: token,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.created", true).
		AssertJSONPath("data.link.access", "read").
		AssertJSONPath("data.link.primary", true)

	link := resp.GetJSONData()["link"].(map[string]any)
	linkToken := link["token"].(string)
	assert.True(t, strings.HasPrefix(link["url"].(string), "http://docs.test/s/"))

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/links/primary",
		AccessToken: token,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.created", false)

	srv.Do(t, testutil.HTTPRequest{
		Method:    http.MethodGet,
		Path:      "/api/v1/entries/" + roomID + "/access",
		LinkToken: linkToken,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.access", "read").
		AssertJSONPath("data.channel", "link").
		AssertJSONPath("data.linkId", link["id"])

	srv.Do(t, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/entries/" + roomID + "/access?share=" + linkToken,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.channel", "link")

	srv.Do(t, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/entries/" + roomID + "/access",
	}).AssertStatus(http.StatusForbidden)
}

func TestRouter_SetLinkLifecycle(t *testing.T) {
	srv := testutil.NewTestServer(t)
	token := srv.TokenFor(t, uuid.New())
	roomID := createRoom(t, srv, token, "custom")
	path := "/api/v1/entries/" + roomID + "/links"

	resp := srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		Body:        map[string]any{"access": "editing", "title": "Team"},
		AccessToken: token,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.link.access", "editing").
		AssertJSONPath("data.link.title", "Team").
		AssertJSONPath("data.deleted", false)
	link := resp.GetJSONData()["link"].(map[string]any)
	linkID := link["id"].(string)

	// editing through a link never grants resharing
	srv.Do(t, testutil.HTTPRequest{
		Method:    http.MethodGet,
		Path:      "/api/v1/entries/" + roomID + "/access",
		LinkToken: link["token"].(string),
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.access", "editing").
		AssertJSONPath("data.security.edit", true).
		AssertJSONPath("data.security.share", false)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		Body:        map[string]any{"linkId": linkID, "denyDownload": true},
		AccessToken: token,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.link.denyDownload", true).
		AssertJSONPath("data.link.access", "editing")

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		Body:        map[string]any{"linkId": linkID, "access": "owner"},
		AccessToken: token,
	}).AssertStatus(http.StatusBadRequest).AssertJSONError("VALIDATION_ERROR", "")

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        path,
		AccessToken: token,
	}).AssertStatus(http.StatusOK).AssertJSONPath("meta.total", float64(1))

	// the only link of a room is primary, deleting it issues a replacement
	resp = srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		Body:        map[string]any{"linkId": linkID, "access": "none"},
		AccessToken: token,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.deleted", true).
		AssertJSONPathExists("data.replacement.id")
	assert.NotEqual(t, linkID, resp.GetJSONData()["replacement"].(map[string]any)["id"])
}

func TestRouter_SetLink_RequiresManageRights(t *testing.T) {
	srv := testutil.NewTestServer(t)
	ownerToken := srv.TokenFor(t, uuid.New())
	roomID := createRoom(t, srv, ownerToken, "custom")

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/entries/" + roomID + "/links",
		Body:        map[string]any{"access": "read"},
		AccessToken: srv.TokenFor(t, uuid.New()),
	}).AssertStatus(http.StatusNotFound)
}

func TestRouter_PasswordGate(t *testing.T) {
	srv := testutil.NewTestServer(t)
	token := srv.TokenFor(t, uuid.New())
	roomID := createRoom(t, srv, token, "custom")

	resp := srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/entries/" + roomID + "/links",
		Body:        map[string]any{"access": "comment", "password": "s3cret"},
		AccessToken: token,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.link.hasPassword", true)
	linkToken := resp.GetJSONData()["link"].(map[string]any)["token"].(string)
	statusPath := "/api/v1/share/" + linkToken + "/status"
	accessPath := "/api/v1/entries/" + roomID + "/access"

	srv.Do(t, testutil.HTTPRequest{Method: http.MethodGet, Path: accessPath, LinkToken: linkToken}).
		AssertStatus(http.StatusUnauthorized).
		AssertJSONError("PASSWORD_REQUIRED", "")

	locked := srv.Do(t, testutil.HTTPRequest{Method: http.MethodGet, Path: statusPath}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.status", "RequiredPassword")
	_, hasEntry := locked.GetJSONData()["entryId"]
	assert.False(t, hasEntry)

	srv.Do(t, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    statusPath,
		Headers: map[string]string{"X-Link-Password": "wrong"},
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.status", "InvalidPassword")

	unlocked := srv.Do(t, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    statusPath,
		Headers: map[string]string{"X-Link-Password": "s3cret"},
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.status", "Ok").
		AssertJSONPath("data.entryId", roomID)

	cookie := unlocked.GetCookie(srv.Config.Sharing.SessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	srv.Do(t, testutil.HTTPRequest{
		Method:    http.MethodGet,
		Path:      accessPath,
		LinkToken: linkToken,
		Cookies:   []*http.Cookie{cookie},
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.access", "comment").
		AssertJSONPath("data.channel", "link")

	srv.Do(t, testutil.HTTPRequest{
		Method:     http.MethodGet,
		Path:       accessPath,
		LinkToken:  linkToken,
		SessionKey: cookie.Value,
	}).AssertStatus(http.StatusOK)
}

func TestRouter_Unlock(t *testing.T) {
	srv := testutil.NewTestServer(t)
	token := srv.TokenFor(t, uuid.New())
	roomID := createRoom(t, srv, token, "custom")

	resp := srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/entries/" + roomID + "/links",
		Body:        map[string]any{"access": "read", "password": "s3cret"},
		AccessToken: token,
	}).AssertStatus(http.StatusOK)
	unlockPath := "/api/v1/share/" + resp.GetJSONData()["link"].(map[string]any)["token"].(string) + "/unlock"

	srv.Do(t, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   unlockPath,
		Body:   map[string]any{"password": "wrong"},
	}).AssertStatus(http.StatusUnauthorized).AssertJSONError("INVALID_PASSWORD", "")

	srv.Do(t, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   unlockPath,
		Body:   map[string]any{},
	}).AssertStatus(http.StatusBadRequest)

	ok := srv.Do(t, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   unlockPath,
		Body:   map[string]any{"password": "s3cret"},
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.status", "Ok")
	assert.NotNil(t, ok.GetCookie(srv.Config.Sharing.SessionCookieName))

	srv.Do(t, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/v1/share/unknown-token/unlock",
		Body:   map[string]any{"password": "s3cret"},
	}).AssertStatus(http.StatusNotFound)
}

func TestRouter_GrantsAndSharedInbox(t *testing.T) {
	srv := testutil.NewTestServer(t)
	ownerToken := srv.TokenFor(t, uuid.New())
	recipient := uuid.New()
	recipientToken := srv.TokenFor(t, recipient)
	roomID := createRoom(t, srv, ownerToken, "custom")
	grantsPath := "/api/v1/entries/" + roomID + "/grants"

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        grantsPath,
		Body:        map[string]any{"subjectType": "user", "subjectId": recipient.String(), "access": "read"},
		AccessToken: ownerToken,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.grant.access", "read").
		AssertJSONPath("data.notified", float64(1))

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/shared/new-count",
		AccessToken: recipientToken,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.count", float64(1))

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/access",
		AccessToken: recipientToken,
	}).
		AssertStatus(http.StatusOK).
		AssertJSONPath("data.access", "read").
		AssertJSONPath("data.security.edit", false)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        grantsPath,
		AccessToken: recipientToken,
	}).AssertStatus(http.StatusForbidden)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/v1/shared/seen",
		AccessToken: recipientToken,
	}).AssertStatus(http.StatusNoContent)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/shared/new-count",
		AccessToken: recipientToken,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.count", float64(0))

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        grantsPath,
		Body:        map[string]any{"subjectType": "user", "subjectId": recipient.String(), "access": "none"},
		AccessToken: ownerToken,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.revoked", true)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/access",
		AccessToken: recipientToken,
	}).AssertStatus(http.StatusForbidden)
}

func TestRouter_GroupGrantAndRoomMember(t *testing.T) {
	srv := testutil.NewTestServer(t)
	ownerToken := srv.TokenFor(t, uuid.New())
	member := uuid.New()
	memberToken := srv.TokenFor(t, member)
	groupID := createGroup(t, srv, ownerToken)
	roomID := createRoom(t, srv, ownerToken, "custom")

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/v1/groups/" + groupID + "/members",
		Body:        map[string]any{"userId": member.String()},
		AccessToken: ownerToken,
	}).AssertStatus(http.StatusNoContent)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/entries/" + roomID + "/grants",
		Body:        map[string]any{"subjectType": "group", "subjectId": groupID, "access": "review"},
		AccessToken: ownerToken,
	}).AssertStatus(http.StatusOK)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/access",
		AccessToken: memberToken,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.access", "review")

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/rooms/" + roomID + "/members",
		Body:        map[string]any{"userId": member.String(), "access": "editing"},
		AccessToken: ownerToken,
	}).AssertStatus(http.StatusNoContent)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/" + roomID + "/access",
		AccessToken: memberToken,
	}).AssertStatus(http.StatusOK).AssertJSONPath("data.access", "editing")
}

func TestRouter_GroupMembership_RequiresManager(t *testing.T) {
	srv := testutil.NewTestServer(t)
	ownerToken := srv.TokenFor(t, uuid.New())
	member := uuid.New()
	memberToken := srv.TokenFor(t, member)
	stranger := uuid.New()
	strangerToken := srv.TokenFor(t, stranger)
	groupID := createGroup(t, srv, ownerToken)
	roomID := createRoom(t, srv, ownerToken, "custom")

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/v1/groups/" + groupID + "/members",
		Body:        map[string]any{"userId": member.String()},
		AccessToken: ownerToken,
	}).AssertStatus(http.StatusNoContent)

	srv.Do(t, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        "/api/v1/entries/" + roomID + "/grants",
		Body:        map[string]any{"subjectType": "group", "subjectId": groupID, "access": "editing"},
		AccessToken: ownerToken,
	}).AssertStatus(http.StatusOK)

	t.Run("outsider cannot join", func(t *testing.T) {
		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodPost,
			Path:        "/api/v1/groups/" + groupID + "/members",
			Body:        map[string]any{"userId": stranger.String()},
			AccessToken: strangerToken,
		}).AssertStatus(http.StatusForbidden).AssertJSONError("FORBIDDEN", "")

		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodGet,
			Path:        "/api/v1/entries/" + roomID + "/access",
			AccessToken: strangerToken,
		}).AssertStatus(http.StatusForbidden)

		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodGet,
			Path:        "/api/v1/entries/" + roomID + "/links/primary",
			AccessToken: strangerToken,
		}).AssertStatus(http.StatusNotFound)
	})

	t.Run("plain member cannot add others", func(t *testing.T) {
		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodPost,
			Path:        "/api/v1/groups/" + groupID + "/members",
			Body:        map[string]any{"userId": stranger.String()},
			AccessToken: memberToken,
		}).AssertStatus(http.StatusForbidden)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodPost,
			Path:        "/api/v1/groups/" + groupID + "/members",
			Body:        map[string]any{"userId": stranger.String(), "role": "owner"},
			AccessToken: ownerToken,
		}).AssertStatus(http.StatusBadRequest).AssertJSONError("VALIDATION_ERROR", "")
	})

	t.Run("promoted manager can add members", func(t *testing.T) {
		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodPost,
			Path:        "/api/v1/groups/" + groupID + "/members",
			Body:        map[string]any{"userId": member.String(), "role": "manager"},
			AccessToken: ownerToken,
		}).AssertStatus(http.StatusNoContent)

		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodPost,
			Path:        "/api/v1/groups/" + groupID + "/members",
			Body:        map[string]any{"userId": stranger.String()},
			AccessToken: memberToken,
		}).AssertStatus(http.StatusNoContent)

		srv.Do(t, testutil.HTTPRequest{
			Method:      http.MethodGet,
			Path:        "/api/v1/entries/" + roomID + "/access",
			AccessToken: strangerToken,
		}).AssertStatus(http.StatusOK).AssertJSONPath("data.access", "editing")
	})
}
