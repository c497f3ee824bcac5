package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "washlane/database/repository/catalog"
	"washlane/models"
	"washlane/utils"
)

// CatalogHandler serves the read-only item catalog and service list.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// GetCatalogHandler lists catalog items, optionally filtered by category.
// An absent or "All" category returns the full catalog.
func (h *CatalogHandler) GetCatalogHandler(c *gin.Context) {
	category := models.Category(c.Query("category"))
	items, err := h.Repo.ListByCategory(c.Request.Context(), category)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load catalog", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetServicesHandler lists the bookable primary services.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.Repo.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
