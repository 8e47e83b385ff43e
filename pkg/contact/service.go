package contact

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/JACK-Producer/endtime-loud-cry/pkg/models"
)

var ErrNotFound = errors.New("message not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Submit stores a visitor message. No email-format validation is
// applied; the address is only ever used as a reply target.
func (s *Service) Submit(name, email, message string) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Service) ListNewestFirst() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.db.Order("created_at desc").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Service) Delete(id uint) error {
	var msg models.ContactMessage
	if err := s.db.First(&msg, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&msg).Error
}
