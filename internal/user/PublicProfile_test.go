package user

import (
	"fmt"
	"net/http"
	"testing"

	"noteshare/internal/svc"
	"noteshare/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicProfileRouter(s *svc.ServiceContext, viewerID uint) *gin.Engine {
	h := NewUserHandler(s)
	r := testutil.NewRouter()
	if viewerID > 0 {
		r.GET("/api/users/:id", testutil.AsUser(viewerID), h.PublicProfile)
	} else {
		r.GET("/api/users/:id", h.PublicProfile)
	}
	return r
}

func profileBody(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	return user
}

func TestPublicProfileCountsNotesAndFollowers(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	fan := testutil.SeedUser(t, s.DB, "fan")
	testutil.SeedNote(t, s.DB, store, author, "One")
	testutil.SeedNote(t, s.DB, store, author, "Two")

	fr := followRouter(s, fan.ID)
	w := testutil.DoJSON(t, fr, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", author.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	r := publicProfileRouter(s, 0)
	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", author.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := profileBody(t, testutil.Body(t, w))
	assert.Equal(t, "author", user["name"])
	assert.Equal(t, float64(2), user["notes_count"])
	assert.Equal(t, float64(1), user["followers_count"])
	assert.Equal(t, false, user["is_following"])
}

func TestPublicProfileIsFollowingIsRelativeToViewer(t *testing.T) {
	s, _ := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	fan := testutil.SeedUser(t, s.DB, "fan")
	stranger := testutil.SeedUser(t, s.DB, "stranger")

	fr := followRouter(s, fan.ID)
	w := testutil.DoJSON(t, fr, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", author.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, publicProfileRouter(s, fan.ID), http.MethodGet,
		fmt.Sprintf("/api/users/%d", author.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, profileBody(t, testutil.Body(t, w))["is_following"])

	w = testutil.DoJSON(t, publicProfileRouter(s, stranger.ID), http.MethodGet,
		fmt.Sprintf("/api/users/%d", author.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, profileBody(t, testutil.Body(t, w))["is_following"])
}

func TestPublicProfileUnknownUserIs404(t *testing.T) {
	s, _ := testutil.NewSvc(t)
	w := testutil.DoJSON(t, publicProfileRouter(s, 0), http.MethodGet, "/api/users/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
