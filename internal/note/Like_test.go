package note

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

func likeRouter(s *svc.ServiceContext, userID uint) *gin.Engine {
	h := NewNoteHandler(s)
	r := testutil.NewRouter()
	r.PUT("/api/notes/:id/like", testutil.AsUser(userID), h.ToggleLike)
	return r
}

func TestToggleLikeTwiceRestoresOriginalState(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	liker := testutil.SeedUser(t, s.DB, "liker")
	note := testutil.SeedNote(t, s.DB, store, author, "Algebra Basics")

	r := likeRouter(s, liker.ID)
	path := fmt.Sprintf("/api/notes/%d/like", note.ID)

	w := testutil.DoJSON(t, r, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.Body(t, w)
	assert.Equal(t, true, body["isLiked"])
	assert.Equal(t, float64(1), body["likesCount"])

	w = testutil.DoJSON(t, r, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = testutil.Body(t, w)
	assert.Equal(t, false, body["isLiked"])
	assert.Equal(t, float64(0), body["likesCount"])

	var remaining int64
	s.DB.Model(&models.NoteLike{}).Where("note_id = ?", note.ID).Count(&remaining)
	assert.Zero(t, remaining)
}

func TestLikeNotifiesAuthorOnceNeverOnUnlike(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	liker := testutil.SeedUser(t, s.DB, "liker")
	note := testutil.SeedNote(t, s.DB, store, author, "Geometry")

	r := likeRouter(s, liker.ID)
	path := fmt.Sprintf("/api/notes/%d/like", note.ID)

	// 点赞通知一次
	w := testutil.DoJSON(t, r, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), testutil.CountNotifications(t, s.DB, author.ID))

	// 取消赞不通知
	w = testutil.DoJSON(t, r, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), testutil.CountNotifications(t, s.DB, author.ID))
}

func TestLikeOwnNoteDoesNotNotify(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	note := testutil.SeedNote(t, s.DB, store, author, "Calculus")

	r := likeRouter(s, author.ID)
	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notes/%d/like", note.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Zero(t, testutil.CountNotifications(t, s.DB, author.ID))
}

func TestLikeSucceedsWhenNotificationInsertFails(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	liker := testutil.SeedUser(t, s.DB, "liker")
	note := testutil.SeedNote(t, s.DB, store, author, "Resilient")

	// 通知表没了，写通知必失败，但点赞本身不受影响
	require.NoError(t, s.DB.Migrator().DropTable(&models.Notification{}))

	r := likeRouter(s, liker.ID)
	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notes/%d/like", note.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.Body(t, w)
	assert.Equal(t, true, body["isLiked"])

	var likes int64
	s.DB.Model(&models.NoteLike{}).Where("note_id = ?", note.ID).Count(&likes)
	assert.Equal(t, int64(1), likes)
}

func TestLikeMembershipReadFailureIs500(t *testing.T) {
	s, store := testutil.NewSvc(t)
	author := testutil.SeedUser(t, s.DB, "author")
	liker := testutil.SeedUser(t, s.DB, "liker")
	note := testutil.SeedNote(t, s.DB, store, author, "Fragile")

	// 查不出当前状态时不能当成"没赞过"走写入
	require.NoError(t, s.DB.Migrator().DropTable(&models.NoteLike{}))

	r := likeRouter(s, liker.ID)
	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notes/%d/like", note.ID), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLikeMissingNoteIs404(t *testing.T) {
	s, _ := testutil.NewSvc(t)
	liker := testutil.SeedUser(t, s.DB, "liker")

	r := likeRouter(s, liker.ID)
	w := testutil.DoJSON(t, r, http.MethodPut, "/api/notes/9999/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
