package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AldebertBarber/aldebert-api/internal/audit"
	domain "github.com/AldebertBarber/aldebert-api/internal/domain/loyalty"
	"github.com/AldebertBarber/aldebert-api/internal/httperr"
	"github.com/AldebertBarber/aldebert-api/internal/httpresp"
	"github.com/AldebertBarber/aldebert-api/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type LoyaltyHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLoyaltyHandler(repo domain.Repository, dispatcher *audit.Dispatcher) *LoyaltyHandler {
	return &LoyaltyHandler{
		repo:  repo,
		audit: dispatcher,
	}
}

// ======================================================
// READS
// ======================================================

// Mine devolve o cartão do usuário logado; sem registro vale (0, false).
func (h *LoyaltyHandler) Mine(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Credenciais inválidas.")
		return
	}

	summary, err := h.repo.GetByUser(c.Request.Context(), id.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpresp.OK(c, gin.H{"cuts_completed": 0, "reward_claimed": false})
			return
		}
		httperr.Internal(c, "failed_to_get_loyalty", "Erro interno do servidor.")
		return
	}

	httpresp.OK(c, gin.H{
		"cuts_completed": summary.CutsCompleted,
		"reward_claimed": summary.RewardClaimed,
	})
}

// List devolve todos os clientes com o estado do cartão (left join),
// ordenados por nome.
func (h *LoyaltyHandler) List(c *gin.Context) {
	summaries, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_loyalty", "Erro interno do servidor.")
		return
	}

	httpresp.List(c, summaries)
}

// ======================================================
// MUTATIONS (admin)
// ======================================================

// AddCut registra um corte. Em cartão resgatado o punch abre ciclo novo
// via StartCycle — composição explícita das duas transições atômicas.
func (h *LoyaltyHandler) AddCut(c *gin.Context) {
	admin, userID, ok := h.adminAndTarget(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	rec, err := h.repo.AddCut(ctx, userID)
	action := audit.ActionLoyaltyCutAdded

	if errors.Is(err, domain.ErrCycleClaimed) {
		rec, err = h.repo.StartCycle(ctx, userID)
		action = audit.ActionLoyaltyCycleStarted
	}

	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	h.dispatch(admin, action, userID)
	httpresp.OK(c, gin.H{"loyalty": rec})
}

func (h *LoyaltyHandler) RemoveCut(c *gin.Context) {
	admin, userID, ok := h.adminAndTarget(c)
	if !ok {
		return
	}

	rec, err := h.repo.RemoveCut(c.Request.Context(), userID)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	h.dispatch(admin, audit.ActionLoyaltyCutRemoved, userID)
	httpresp.OK(c, gin.H{"loyalty": rec})
}

func (h *LoyaltyHandler) Claim(c *gin.Context) {
	admin, userID, ok := h.adminAndTarget(c)
	if !ok {
		return
	}

	rec, err := h.repo.Claim(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrThresholdNotMet) {
			httperr.BadRequest(c, "threshold_not_met", "Cliente não atingiu 10 cortes.")
			return
		}
		h.writeMutationError(c, err)
		return
	}

	h.dispatch(admin, audit.ActionLoyaltyClaimed, userID)
	httpresp.OK(c, gin.H{
		"loyalty": rec,
		"message": "Recompensa resgatada! Contador zerado.",
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *LoyaltyHandler) adminAndTarget(c *gin.Context) (*middleware.Identity, uint, bool) {
	admin, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Credenciais inválidas.")
		return nil, 0, false
	}

	raw, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Identificador inválido.")
		return nil, 0, false
	}

	return admin, uint(raw), true
}

func (h *LoyaltyHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "loyalty_not_found", "Registro de fidelidade não encontrado.")
	case errors.Is(err, domain.ErrUserUnknown):
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
	default:
		httperr.Write(c, http.StatusInternalServerError, "loyalty_error", "Erro interno do servidor.")
	}
}

func (h *LoyaltyHandler) dispatch(admin *middleware.Identity, action string, userID uint) {
	adminID := admin.ID
	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RoleAdmin,
		ActorID:   &adminID,
		Action:    action,
		Entity:    "loyalty",
		EntityID:  &userID,
	})
}
