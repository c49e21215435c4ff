package service

import (
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
)

type ContactService interface {
	CreateContact(name, email string) (*model.Contact, error)
	ListContacts() ([]model.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) CreateContact(name, email string) (*model.Contact, error) {
	contact := &model.Contact{
		Name:  name,
		Email: email,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	logger.Info("Contact created successfully", map[string]interface{}{
		"contact_id": contact.ID,
		"email":      contact.Email,
	})
	return contact, nil
}

func (s *contactService) ListContacts() ([]model.Contact, error) {
	return s.contactRepo.FindAll()
}
