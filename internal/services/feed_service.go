package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/feed"
	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("feed post not found")
	ErrNotAuthor    = errors.New("only the original author may modify this post")
	ErrInvalidDate  = errors.New("invalid date filter, expected YYYY-MM-DD")
)

// FeedService stores and retrieves categorized feed posts scoped by
// resident, with calendar-date filtering. Posts are mutable and deletable
// only by their original author.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// Post logs a new entry on the resident's feed. The category must be one
// of the fixed set. Body-map posts arriving in the legacy "text~x&y"
// encoding are split into text and a structured focal point before
// storage.
func (s *FeedService) Post(residentID, authorID uuid.UUID, req *dto.CreateFeedPostRequest) (*dto.FeedPostResponse, error) {
	category, err := feed.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	var resident models.Resident
	if err := s.db.First(&resident, "id = ?", residentID).Error; err != nil {
		return nil, ErrResidentNotFound
	}

	post := models.FeedPost{
		ID:         uuid.New(),
		ResidentID: residentID,
		AuthorID:   authorID,
		Category:   category.String(),
		Message:    req.Message,
	}

	switch category {
	case feed.CategoryBodyMap:
		point := req.Point
		if point == nil {
			post.Message, point = feed.DecodeBodyMap(req.Message)
		}
		if point != nil {
			v := datatypes.NewJSONType(*point)
			post.Point = &v
		}
	case feed.CategoryIncident:
		if req.Sections != nil && !req.Sections.Empty() {
			v := datatypes.NewJSONType(*req.Sections)
			post.Sections = &v
		}
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create feed post: %w", err)
	}

	if err := s.db.Preload("Author").First(&post, "id = ?", post.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load feed post: %w", err)
	}
	resp := postResponse(&post)
	return &resp, nil
}

// List returns the resident's feed newest first. Category and date
// filters, when present, are combined with AND; the date filter matches
// the UTC calendar date of creation.
func (s *FeedService) List(residentID uuid.UUID, category, date string) ([]dto.FeedPostResponse, error) {
	var resident models.Resident
	if err := s.db.First(&resident, "id = ?", residentID).Error; err != nil {
		return nil, ErrResidentNotFound
	}

	q := s.db.Preload("Author").Where("resident_id = ?", residentID)

	if category != "" {
		c, err := feed.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		q = q.Where("category = ?", c.String())
	}

	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			return nil, ErrInvalidDate
		}
		q = q.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
	}

	var posts []models.FeedPost
	if err := q.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list feed posts: %w", err)
	}

	result := make([]dto.FeedPostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, postResponse(&posts[i]))
	}
	return result, nil
}

// Update rewrites a post's message. Only the original author may edit, and
// only the message (plus the body-map point) — category, resident and
// created_at are immutable.
func (s *FeedService) Update(postID, editorID uuid.UUID, req *dto.UpdateFeedPostRequest) (*dto.FeedPostResponse, error) {
	var post models.FeedPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return nil, ErrPostNotFound
	}

	if post.AuthorID != editorID {
		return nil, ErrNotAuthor
	}

	post.Message = req.Message
	if post.Category == feed.CategoryBodyMap.String() {
		point := req.Point
		if point == nil {
			post.Message, point = feed.DecodeBodyMap(req.Message)
		}
		if point != nil {
			v := datatypes.NewJSONType(*point)
			post.Point = &v
		}
	}

	if err := s.db.Save(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to update feed post: %w", err)
	}

	if err := s.db.Preload("Author").First(&post, "id = ?", post.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load feed post: %w", err)
	}
	resp := postResponse(&post)
	return &resp, nil
}

// Delete removes a post; author only.
func (s *FeedService) Delete(postID, editorID uuid.UUID) error {
	var post models.FeedPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return ErrPostNotFound
	}

	if post.AuthorID != editorID {
		return ErrNotAuthor
	}

	return s.db.Delete(&post).Error
}

// postResponse folds the structured payloads back into the legacy wire
// message: body-map posts are rendered as "text~x&y", incident posts as
// the numbered-section flat text.
func postResponse(post *models.FeedPost) dto.FeedPostResponse {
	resp := dto.FeedPostResponse{
		ID:           post.ID,
		ResidentID:   post.ResidentID,
		Category:     post.Category,
		Message:      post.Message,
		PostedBy:     post.AuthorID,
		PostedByName: post.Author.FullName,
		PostedByRole: post.Author.Role,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}

	if post.Point != nil {
		p := post.Point.Data()
		resp.Point = &p
		resp.Message = feed.EncodeBodyMap(post.Message, p)
	}
	if post.Sections != nil {
		sections := post.Sections.Data()
		resp.Sections = &sections
		resp.Message = sections.Legacy()
	}
	return resp
}
