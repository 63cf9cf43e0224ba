package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AldebertBarber/aldebert-api/internal/domain/catalog"
	"github.com/AldebertBarber/aldebert-api/internal/httpresp"
)

type ServicesHandler struct{}

func NewServicesHandler() *ServicesHandler {
	return &ServicesHandler{}
}

// List expõe o catálogo fixo de serviços e preços.
func (h *ServicesHandler) List(c *gin.Context) {
	httpresp.List(c, catalog.Services)
}
