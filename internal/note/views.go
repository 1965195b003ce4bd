package note

import (
	"noteshare/internal/models"
	"noteshare/internal/svc"
)

// Views 把笔记批量组装成带 viewer 标注的响应结构。
// viewerID 为 0 表示匿名，isLiked/isBookmarked 全 false。
// 点赞详情只用于算数量和"我赞过没有"，不会把别人的点赞人暴露出去。
func Views(s *svc.ServiceContext, notes []models.Note, viewerID uint) ([]models.NoteView, error) {
	if len(notes) == 0 {
		return []models.NoteView{}, nil
	}

	noteIDs := make([]uint, len(notes))
	authorIDs := make([]uint, 0, len(notes))
	seen := make(map[uint]bool)
	for i, n := range notes {
		noteIDs[i] = n.ID
		if !seen[n.AuthorID] {
			seen[n.AuthorID] = true
			authorIDs = append(authorIDs, n.AuthorID)
		}
	}

	var authors []models.User
	if err := s.DB.Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, err
	}
	authorByID := make(map[uint]models.User, len(authors))
	for _, a := range authors {
		authorByID[a.ID] = a
	}

	type likeRow struct {
		NoteID uint
		Cnt    int
	}
	var likeRows []likeRow
	err := s.DB.Model(&models.NoteLike{}).
		Select("note_id, COUNT(*) AS cnt").
		Where("note_id IN ?", noteIDs).
		Group("note_id").
		Scan(&likeRows).Error
	if err != nil {
		return nil, err
	}
	likesByNote := make(map[uint]int, len(likeRows))
	for _, r := range likeRows {
		likesByNote[r.NoteID] = r.Cnt
	}

	likedSet := make(map[uint]bool)
	bookmarkSet := make(map[uint]bool)
	if viewerID > 0 {
		var likedIDs []uint
		err = s.DB.Model(&models.NoteLike{}).
			Where("user_id = ? AND note_id IN ?", viewerID, noteIDs).
			Pluck("note_id", &likedIDs).Error
		if err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			likedSet[id] = true
		}

		var bookmarkedIDs []uint
		err = s.DB.Model(&models.Bookmark{}).
			Where("user_id = ? AND note_id IN ?", viewerID, noteIDs).
			Pluck("note_id", &bookmarkedIDs).Error
		if err != nil {
			return nil, err
		}
		for _, id := range bookmarkedIDs {
			bookmarkSet[id] = true
		}
	}

	views := make([]models.NoteView, len(notes))
	for i, n := range notes {
		author := authorByID[n.AuthorID]
		tagNames := make([]string, len(n.Tags))
		for j, t := range n.Tags {
			tagNames[j] = t.Name
		}
		views[i] = models.NoteView{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			FilePath:    s.Storage.PublicURL(n.FilePath),
			FileType:    n.FileType,
			FileSize:    n.FileSize,
			Author: models.AuthorBrief{
				ID:     author.ID,
				Name:   author.Name,
				Avatar: author.Avatar,
			},
			Tags:         tagNames,
			LikesCount:   likesByNote[n.ID],
			Downloads:    n.Downloads,
			IsLiked:      likedSet[n.ID],
			IsBookmarked: bookmarkSet[n.ID],
			CreatedAt:    n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:    n.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return views, nil
}

func (h *NoteHandler) noteViews(notes []models.Note, viewerID uint) ([]models.NoteView, error) {
	return Views(h.svc, notes, viewerID)
}

func (h *NoteHandler) noteView(note models.Note, viewerID uint) (models.NoteView, error) {
	views, err := h.noteViews([]models.Note{note}, viewerID)
	if err != nil {
		return models.NoteView{}, err
	}
	return views[0], nil
}
