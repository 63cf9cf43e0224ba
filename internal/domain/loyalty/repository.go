package loyalty

import (
	"context"
	"errors"
	"time"

	"github.com/AldebertBarber/aldebert-api/internal/models"
)

var (
	// ErrNotFound indica que o usuário não tem registro de fidelidade.
	ErrNotFound = errors.New("loyalty record not found")
	// ErrCycleClaimed indica que o cartão está resgatado e o corte só
	// entra via StartCycle.
	ErrCycleClaimed = errors.New("loyalty cycle already claimed")
	// ErrThresholdNotMet indica resgate antes dos 10 cortes.
	ErrThresholdNotMet = errors.New("loyalty threshold not met")
	// ErrUserUnknown indica punch para usuário inexistente.
	ErrUserUnknown = errors.New("user not found")
)

// Summary é a visão left-join usuário ⟕ fidelidade: usuários sem registro
// aparecem com 0/false.
type Summary struct {
	UserID        uint       `json:"user_id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	CutsCompleted int        `json:"cuts_completed"`
	RewardClaimed bool       `json:"reward_claimed"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// Repository executa cada transição como um único upsert/update
// condicional no store, nunca como read-then-write em duas idas.
type Repository interface {
	// AddCut faz o upsert com teto em RewardThreshold. Devolve
	// ErrCycleClaimed sem tocar a linha quando o cartão está resgatado.
	AddCut(ctx context.Context, userID uint) (*models.LoyaltyRecord, error)

	// StartCycle sai do estado resgatado para (1, false). Devolve
	// ErrNotFound quando não há linha resgatada para o usuário.
	StartCycle(ctx context.Context, userID uint) (*models.LoyaltyRecord, error)

	// RemoveCut decrementa com piso em zero. ErrNotFound sem registro.
	RemoveCut(ctx context.Context, userID uint) (*models.LoyaltyRecord, error)

	// Claim exige cuts >= RewardThreshold; ErrThresholdNotMet ou
	// ErrNotFound conforme o caso.
	Claim(ctx context.Context, userID uint) (*models.LoyaltyRecord, error)

	ListAll(ctx context.Context) ([]Summary, error)

	GetByUser(ctx context.Context, userID uint) (*Summary, error)
}
