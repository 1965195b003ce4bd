package user

import (
	"net/http"
	"testing"

	"noteshare/internal/models"
	"noteshare/internal/svc"
	"noteshare/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookmarksRouter(s *svc.ServiceContext, userID uint) *gin.Engine {
	h := NewUserHandler(s)
	r := testutil.NewRouter()
	r.GET("/api/users/bookmarks", testutil.AsUser(userID), h.Bookmarks)
	return r
}

func bookmark(t *testing.T, s *svc.ServiceContext, userID, noteID uint) {
	t.Helper()
	require.NoError(t, s.DB.Create(&models.Bookmark{UserID: userID, NoteID: noteID}).Error)
}

func TestBookmarksReturnedInSaveOrder(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	reader := testutil.SeedUser(t, s.DB, "reader")
	second := testutil.SeedNote(t, s.DB, store, author, "Saved Second")
	first := testutil.SeedNote(t, s.DB, store, author, "Saved First")
	bookmark(t, s, reader.ID, first.ID)
	bookmark(t, s, reader.ID, second.ID)

	r := bookmarksRouter(s, reader.ID)
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/users/bookmarks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 2)
	assert.Equal(t, "Saved First", data[0].(map[string]interface{})["title"])
	assert.Equal(t, "Saved Second", data[1].(map[string]interface{})["title"])
	for _, item := range data {
		assert.Equal(t, true, item.(map[string]interface{})["is_bookmarked"])
	}
}

func TestBookmarksSkipDeletedNotes(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	reader := testutil.SeedUser(t, s.DB, "reader")
	kept := testutil.SeedNote(t, s.DB, store, author, "Kept")
	gone := testutil.SeedNote(t, s.DB, store, author, "Gone")
	bookmark(t, s, reader.ID, kept.ID)
	bookmark(t, s, reader.ID, gone.ID)
	require.NoError(t, s.DB.Delete(&models.Note{}, gone.ID).Error)

	r := bookmarksRouter(s, reader.ID)
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/users/bookmarks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "Kept", data[0].(map[string]interface{})["title"])
}

func TestBookmarksAreScopedToCaller(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	reader := testutil.SeedUser(t, s.DB, "reader")
	other := testutil.SeedUser(t, s.DB, "other")
	note := testutil.SeedNote(t, s.DB, store, author, "Private Pick")
	bookmark(t, s, other.ID, note.ID)

	r := bookmarksRouter(s, reader.ID)
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/users/bookmarks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	assert.Empty(t, body["data"])
	assert.Equal(t, float64(0), body["total"])
}
