package note

import (
	"fmt"
	"net/http"
	"testing"

	"noteshare/internal/middleware"
	"noteshare/internal/models"
	"noteshare/internal/svc"
	"noteshare/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateRouter(s *svc.ServiceContext, userID uint) *gin.Engine {
	h := NewNoteHandler(s)
	r := testutil.NewRouter()
	r.PUT("/api/notes/:id", testutil.AsUser(userID), middleware.NoteOwner(s.DB), h.Update)
	return r
}

func TestUpdateOnlyTouchesProvidedFields(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	note := testutil.SeedNote(t, s.DB, store, author, "Draft Title", "math")

	r := updateRouter(s, author.ID)
	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notes/%d", note.ID),
		map[string]string{"title": "Final Title"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.Note
	require.NoError(t, s.DB.Preload("Tags").First(&fresh, note.ID).Error)
	assert.Equal(t, "Final Title", fresh.Title)
	assert.Equal(t, note.Description, fresh.Description)
	require.Len(t, fresh.Tags, 1)
	assert.Equal(t, "math", fresh.Tags[0].Name)
}

func TestUpdateReplacesTagSet(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	note := testutil.SeedNote(t, s.DB, store, author, "Tagged", "math", "physics")

	r := updateRouter(s, author.ID)
	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notes/%d", note.ID),
		map[string]string{"tags": "chemistry"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.Note
	require.NoError(t, s.DB.Preload("Tags").First(&fresh, note.ID).Error)
	require.Len(t, fresh.Tags, 1)
	assert.Equal(t, "chemistry", fresh.Tags[0].Name)
}

func TestUpdateByNonAuthorIs403(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	intruder := testutil.SeedUser(t, s.DB, "intruder")
	note := testutil.SeedNote(t, s.DB, store, author, "Not Yours")

	r := updateRouter(s, intruder.ID)
	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notes/%d", note.ID),
		map[string]string{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var fresh models.Note
	require.NoError(t, s.DB.First(&fresh, note.ID).Error)
	assert.Equal(t, "Not Yours", fresh.Title)
}
