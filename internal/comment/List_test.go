package comment

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"noteshare/internal/models"
	"noteshare/internal/svc"
	"noteshare/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listRouter(s *svc.ServiceContext) *gin.Engine {
	h := NewCommentHandler(s)
	r := testutil.NewRouter()
	r.GET("/api/notes/:id/comments", h.List)
	return r
}

func TestListCommentsNewestFirstWithAuthors(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	commenter := testutil.SeedUser(t, s.DB, "commenter")
	note := testutil.SeedNote(t, s.DB, store, author, "Threaded")

	older := seedComment(t, s, author, note.ID, "first!")
	newer := seedComment(t, s, commenter, note.ID, "second!")
	base := time.Now()
	require.NoError(t, s.DB.Model(&older).Update("created_at", base.Add(-time.Minute)).Error)
	require.NoError(t, s.DB.Model(&newer).Update("created_at", base).Error)

	r := listRouter(s)
	w := testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notes/%d/comments", note.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "second!", first["content"])
	assert.Equal(t, "commenter", first["author"].(map[string]interface{})["name"])
	assert.Equal(t, float64(2), body["total"])
}

func TestListCommentsPaginates(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	note := testutil.SeedNote(t, s.DB, store, author, "Busy Thread")
	for i := 0; i < 7; i++ {
		seedComment(t, s, author, note.ID, fmt.Sprintf("comment %d", i))
	}

	r := listRouter(s)
	w := testutil.DoJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/notes/%d/comments?page=2&limit=5", note.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
	assert.Equal(t, float64(2), body["totalPages"])
	assert.Equal(t, float64(2), body["currentPage"])
}

func TestListCommentsSurvivesNoteDeletion(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	note := testutil.SeedNote(t, s.DB, store, author, "Ephemeral")
	seedComment(t, s, author, note.ID, "orphaned but readable")
	require.NoError(t, s.DB.Delete(&models.Note{}, note.ID).Error)

	r := listRouter(s)
	w := testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notes/%d/comments", note.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)
}
