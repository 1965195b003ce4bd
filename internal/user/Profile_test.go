package user

import (
	"net/http"
	"strings"
	"testing"

	"noteshare/internal/models"
	"noteshare/internal/svc"
	"noteshare/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRouter(s *svc.ServiceContext, userID uint) *gin.Engine {
	h := NewUserHandler(s)
	r := testutil.NewRouter()
	r.PUT("/api/users/profile", testutil.AsUser(userID), h.UpdateProfile)
	return r
}

func TestUpdateProfileChangesNameAndBio(t *testing.T) {
	s, _ := testutil.NewSvc(t)
	alice := testutil.SeedUser(t, s.DB, "alice")

	r := profileRouter(s, alice.ID)
	w := testutil.DoMultipart(t, r, http.MethodPut, "/api/users/profile",
		map[string]string{"name": "  Alice Prime  ", "bio": "I share study notes."},
		"", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	require.NoError(t, s.DB.First(&fresh, alice.ID).Error)
	assert.Equal(t, "Alice Prime", fresh.Name)
	assert.Equal(t, "I share study notes.", fresh.Bio)
}

func TestUpdateProfileUploadsAvatarAndDropsOldOne(t *testing.T) {
	s, store := testutil.NewSvc(t)
	alice := testutil.SeedUser(t, s.DB, "alice")

	r := profileRouter(s, alice.ID)

	w := testutil.DoMultipart(t, r, http.MethodPut, "/api/users/profile",
		nil, "avatar", "face.png", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	require.NoError(t, s.DB.First(&fresh, alice.ID).Error)
	firstAvatar := fresh.Avatar
	require.True(t, strings.HasPrefix(firstAvatar, "avatars/"))
	assert.True(t, store.Has(firstAvatar))

	w = testutil.DoMultipart(t, r, http.MethodPut, "/api/users/profile",
		nil, "avatar", "newface.jpg", []byte("jpg-bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, s.DB.First(&fresh, alice.ID).Error)
	assert.NotEqual(t, firstAvatar, fresh.Avatar)
	assert.True(t, store.Has(fresh.Avatar))
	assert.False(t, store.Has(firstAvatar))
}

func TestUpdateProfileWithNothingToChangeIsNoOp(t *testing.T) {
	s, _ := testutil.NewSvc(t)
	alice := testutil.SeedUser(t, s.DB, "alice")

	r := profileRouter(s, alice.ID)
	w := testutil.DoMultipart(t, r, http.MethodPut, "/api/users/profile", nil, "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	require.NoError(t, s.DB.First(&fresh, alice.ID).Error)
	assert.Equal(t, "alice", fresh.Name)
}
