package repository

import (
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *model.Contact) error
	FindAll() ([]model.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		logger.Error("Failed to create contact in database", err, map[string]interface{}{
			"name":  contact.Name,
			"email": contact.Email,
		})
		return err
	}

	logger.Debug("Contact created in database", map[string]interface{}{
		"contact_id": contact.ID,
	})
	return nil
}

func (r *contactRepository) FindAll() ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Find(&contacts).Error; err != nil {
		logger.Error("Failed to list contacts in database", err)
		return nil, err
	}
	return contacts, nil
}
