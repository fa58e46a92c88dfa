package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, _ := middleware.CurrentUser(c)
	company, err := h.Companies.Create(c.Request.Context(), userID, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, company)
}

// GET /companies/:slug
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.Companies.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, company)
}

// GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Companies.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, companies)
}
