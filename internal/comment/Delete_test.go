package comment

import (
	"fmt"
	"net/http"
	"testing"

	"noteshare/internal/models"
	"noteshare/internal/svc"
	"noteshare/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deleteRouter(s *svc.ServiceContext, userID uint) *gin.Engine {
	h := NewCommentHandler(s)
	r := testutil.NewRouter()
	r.DELETE("/api/notes/:id/comments/:commentId", testutil.AsUser(userID), h.Delete)
	return r
}

func seedComment(t *testing.T, s *svc.ServiceContext, author models.User, noteID uint, content string) models.Comment {
	t.Helper()
	comment := models.Comment{NoteID: noteID, AuthorID: author.ID, Content: content}
	require.NoError(t, s.DB.Create(&comment).Error)
	return comment
}

func TestDeleteCommentByNonAuthorIs403(t *testing.T) {
	s, store := testutil.NewSvc(t)
	noteAuthor := testutil.SeedUser(t, s.DB, "note-author")
	commenter := testutil.SeedUser(t, s.DB, "commenter")
	note := testutil.SeedNote(t, s.DB, store, noteAuthor, "Debated")
	comment := seedComment(t, s, commenter, note.ID, "contested take")

	// 笔记作者也不能删别人的评论
	r := deleteRouter(s, noteAuthor.ID)
	w := testutil.DoJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/api/notes/%d/comments/%d", note.ID, comment.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	s.DB.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCommentByAuthorRemovesIt(t *testing.T) {
	s, store := testutil.NewSvc(t)
	noteAuthor := testutil.SeedUser(t, s.DB, "note-author")
	commenter := testutil.SeedUser(t, s.DB, "commenter")
	note := testutil.SeedNote(t, s.DB, store, noteAuthor, "Debated")
	comment := seedComment(t, s, commenter, note.ID, "never mind")

	r := deleteRouter(s, commenter.ID)
	w := testutil.DoJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/api/notes/%d/comments/%d", note.ID, comment.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	s.DB.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteMissingCommentIs404(t *testing.T) {
	s, _ := testutil.NewSvc(t)
	someone := testutil.SeedUser(t, s.DB, "someone")

	r := deleteRouter(s, someone.ID)
	w := testutil.DoJSON(t, r, http.MethodDelete, "/api/notes/1/comments/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
