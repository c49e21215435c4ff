package service

import (
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
)

type TagService interface {
	CreateTag(name string) (*model.Tag, error)
	ListTags() ([]model.Tag, error)
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(name string) (*model.Tag, error) {
	tag := &model.Tag{
		Name: name,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	logger.Info("Tag created successfully", map[string]interface{}{
		"tag_id": tag.ID,
	})
	return tag, nil
}

func (s *tagService) ListTags() ([]model.Tag, error) {
	return s.tagRepo.FindAll()
}
