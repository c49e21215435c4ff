package repository

import (
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *model.Tag) error
	FindAll() ([]model.Tag, error)
	FindByID(id uint) (*model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *model.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		logger.Error("Failed to create tag in database", err, map[string]interface{}{
			"name": tag.Name,
		})
		return err
	}

	logger.Debug("Tag created in database", map[string]interface{}{
		"tag_id": tag.ID,
	})
	return nil
}

func (r *tagRepository) FindAll() ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.Find(&tags).Error; err != nil {
		logger.Error("Failed to list tags in database", err)
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
