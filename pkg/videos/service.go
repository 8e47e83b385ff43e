package videos

import (
	"errors"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/JACK-Producer/endtime-loud-cry/pkg/models"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/youtube"
)

var (
	ErrInvalidLink = errors.New("invalid YouTube link")
	ErrNotFound    = errors.New("video not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create derives the video id and thumbnail from the link and persists
// a new record. Links matching neither recognized YouTube form are
// rejected.
func (s *Service) Create(title, link string) (*models.Video, error) {
	id := youtube.ExtractID(link)
	if id == "" {
		return nil, ErrInvalidLink
	}
	video := models.Video{
		Title:        title,
		YoutubeLink:  link,
		YoutubeID:    id,
		ThumbnailURL: youtube.ThumbnailURL(id),
		PublishedAt:  time.Now(),
	}
	if err := s.db.Create(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// ListNewestFirst returns every video ordered by publish time, newest
// first. The published flag is carried but not filtered on; the public
// and admin listings share this result.
func (s *Service) ListNewestFirst() ([]models.Video, error) {
	var videos []models.Video
	if err := s.db.Order("published_at desc").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *Service) ByID(id uint) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// Latest returns the most recently published video.
func (s *Service) Latest() (*models.Video, error) {
	var video models.Video
	if err := s.db.Order("published_at desc").First(&video).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// Update replaces title and link and re-derives the video id and
// thumbnail from the new link. Unlike Create it does not reject links
// the id cannot be extracted from; id and thumbnail stay in lockstep
// with whatever the link yields. ID and publish time are untouched.
func (s *Service) Update(id uint, title, link string) (*models.Video, error) {
	video, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	ytID := youtube.ExtractID(link)
	updates := map[string]interface{}{
		"title":         title,
		"youtube_link":  link,
		"youtube_id":    ytID,
		"thumbnail_url": youtube.ThumbnailURL(ytID),
	}
	if err := s.db.Model(video).Updates(updates).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (s *Service) Delete(id uint) error {
	video, err := s.ByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(video).Error
}
