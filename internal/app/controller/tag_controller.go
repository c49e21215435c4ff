package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk-backend/internal/app/service"
	"github.com/orderdesk/orderdesk-backend/internal/errors"
	"github.com/orderdesk/orderdesk-backend/internal/middleware"
)

type TagController struct {
	tagService service.TagService
}

func NewTagController(tagService service.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTag creates a new tag
// POST /tag
func (ctrl *TagController) CreateTag(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create tag request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	tag, err := ctrl.tagService.CreateTag(req.Name)
	if err != nil {
		log.Error("Failed to create tag", err, map[string]interface{}{
			"name": req.Name,
		})
		errors.InternalError(c, err)
		return
	}

	log.Info("Tag created successfully", map[string]interface{}{
		"tag_id": tag.ID,
	})
	c.JSON(http.StatusOK, tag)
}

// GetTags returns all tags
// GET /tag
func (ctrl *TagController) GetTags(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	tags, err := ctrl.tagService.ListTags()
	if err != nil {
		log.Error("Failed to fetch tags", err)
		errors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}
