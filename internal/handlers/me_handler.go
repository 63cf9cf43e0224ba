package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AldebertBarber/aldebert-api/internal/httperr"
	"github.com/AldebertBarber/aldebert-api/internal/middleware"
	"github.com/AldebertBarber/aldebert-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe devolve o perfil da identidade do token, admin ou usuário.
func (h *MeHandler) GetMe(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Credenciais inválidas.")
		return
	}

	if id.Role == middleware.RoleAdmin {
		var admin models.Admin
		if err := h.db.First(&admin, id.ID).Error; err != nil {
			httperr.NotFound(c, "admin_not_found", "Administrador não encontrado.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"role": middleware.RoleAdmin,
			"admin": gin.H{
				"id":    admin.ID,
				"name":  admin.Name,
				"email": admin.Email,
			},
		})
		return
	}

	var user models.User
	if err := h.db.First(&user, id.ID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role": middleware.RoleUser,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
	})
}
