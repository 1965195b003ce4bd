package note

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"noteshare/internal/models"
	"noteshare/internal/utils"
	"noteshare/internal/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".txt": true, ".rtf": true,
	".odt": true, ".ppt": true, ".pptx": true, ".xls": true, ".xlsx": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".svg": true,
	".zip": true, ".rar": true, ".7z": true,
}

// Create 上传笔记。文件必须有；入库失败要把已经传上去的对象删掉，
// 不留孤儿文件。成功后通知自己 + 给每个粉丝各发一条，粉丝通知单条
// 失败不影响其余粉丝，也不影响上传本身。
func (h *NoteHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req validators.CreateNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "title and description are required")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "File is required")
		return
	}
	if file.Size > maxUploadSize {
		utils.Error(c, http.StatusBadRequest, "file too large (max 10MB)")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		utils.Error(c, http.StatusBadRequest, "file type not supported")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	defer src.Close()

	objectName := "notes/" + uuid.NewString() + ext
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := h.svc.Storage.Put(c.Request.Context(), objectName, file.Size, src, contentType); err != nil {
		zap.L().Error("upload object failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	tags, err := upsertTags(h.svc.DB, splitTags(req.Tags))
	if err != nil {
		zap.L().Error("upsert tags failed", zap.Error(err))
		_ = h.svc.Storage.Remove(c.Request.Context(), objectName)
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	note := models.Note{
		AuthorID:    userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		FilePath:    objectName,
		FileType:    strings.ToUpper(strings.TrimPrefix(ext, ".")),
		FileSize:    file.Size,
		Tags:        tags,
	}
	if err := h.svc.DB.Create(&note).Error; err != nil {
		zap.L().Error("create note failed", zap.Error(err))
		// 记录没建成，把文件清掉
		_ = h.svc.Storage.Remove(c.Request.Context(), objectName)
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	h.svc.Notifier.Notify(c.Request.Context(), userID,
		fmt.Sprintf("Your note %q has been successfully uploaded.", note.Title))

	var author models.User
	if err := h.svc.DB.First(&author, userID).Error; err == nil {
		var followerIDs []uint
		err := h.svc.DB.Model(&models.UserFollow{}).
			Where("followed_id = ?", userID).
			Pluck("follower_id", &followerIDs).Error
		if err != nil {
			zap.L().Error("load followers for fan-out failed", zap.Error(err))
		}
		for _, followerID := range followerIDs {
			h.svc.Notifier.Notify(c.Request.Context(), followerID,
				fmt.Sprintf("%s has uploaded a new note: %q", author.Name, note.Title))
		}
	}

	view, err := h.noteView(note, userID)
	if err != nil {
		zap.L().Error("annotate note failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.Created(c, view)
}
