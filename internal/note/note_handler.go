package note

import (
	"strconv"
	"strings"

	"noteshare/internal/models"
	"noteshare/internal/svc"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NoteHandler struct {
	svc *svc.ServiceContext
}

func NewNoteHandler(svc *svc.ServiceContext) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// parsePagination 解析 page/limit，参数非法时回落默认值而不是报错
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// splitTags 拆逗号分隔的标签串，去掉空白项
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// upsertTags 按名字取或建标签
func upsertTags(db *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// truncateTitle 通知文案里的标题最多截30个字符
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= 30 {
		return title
	}
	return string(runes[:30]) + "..."
}
