package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk-backend/internal/app/service"
	"github.com/orderdesk/orderdesk-backend/internal/errors"
	"github.com/orderdesk/orderdesk-backend/internal/middleware"
)

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

type CreateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// CreateContact creates a new contact
// POST /contact
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create contact request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	contact, err := ctrl.contactService.CreateContact(req.Name, req.Email)
	if err != nil {
		log.Error("Failed to create contact", err, map[string]interface{}{
			"email": req.Email,
		})
		errors.InternalError(c, err)
		return
	}

	log.Info("Contact created successfully", map[string]interface{}{
		"contact_id": contact.ID,
	})
	c.JSON(http.StatusOK, contact)
}

// GetContacts returns all contacts
// GET /contact
func (ctrl *ContactController) GetContacts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	contacts, err := ctrl.contactService.ListContacts()
	if err != nil {
		log.Error("Failed to fetch contacts", err)
		errors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}
