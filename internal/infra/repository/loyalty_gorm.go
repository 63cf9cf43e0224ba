package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AldebertBarber/aldebert-api/internal/domain/loyalty"
	"github.com/AldebertBarber/aldebert-api/internal/models"
)

// LoyaltyGormRepository executa cada transição do cartão como um único
// statement condicional, de modo que dois admins mexendo no mesmo usuário
// ao mesmo tempo nunca percam atualização.
type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

// --------------------------------------------------
// Cuts
// --------------------------------------------------

func (r *LoyaltyGormRepository) AddCut(
	ctx context.Context,
	userID uint,
) (*models.LoyaltyRecord, error) {

	rec := models.LoyaltyRecord{
		UserID:        userID,
		CutsCompleted: 1,
	}

	// Upsert com teto: o DO UPDATE só dispara enquanto o cartão não
	// está resgatado; nesse caso RowsAffected fica em zero e o chamador
	// decide compor StartCycle.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("loyalty_records.reward_claimed = false"),
			}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"cuts_completed": gorm.Expr(
					"LEAST(loyalty_records.cuts_completed + 1, ?)",
					domain.RewardThreshold,
				),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}, clause.Returning{}).
		Create(&rec)

	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return nil, domain.ErrUserUnknown
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCycleClaimed
	}

	return &rec, nil
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func (r *LoyaltyGormRepository) StartCycle(
	ctx context.Context,
	userID uint,
) (*models.LoyaltyRecord, error) {

	var rec models.LoyaltyRecord
	res := r.db.WithContext(ctx).
		Model(&rec).
		Clauses(clause.Returning{}).
		Where("user_id = ? AND reward_claimed = true", userID).
		Updates(map[string]interface{}{
			"cuts_completed": 1,
			"reward_claimed": false,
			"updated_at":     gorm.Expr("NOW()"),
		})

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return &rec, nil
}

func (r *LoyaltyGormRepository) RemoveCut(
	ctx context.Context,
	userID uint,
) (*models.LoyaltyRecord, error) {

	var rec models.LoyaltyRecord
	res := r.db.WithContext(ctx).
		Model(&rec).
		Clauses(clause.Returning{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"cuts_completed": gorm.Expr("GREATEST(cuts_completed - 1, 0)"),
			"updated_at":     gorm.Expr("NOW()"),
		})

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return &rec, nil
}

// --------------------------------------------------
// Claim
// --------------------------------------------------

func (r *LoyaltyGormRepository) Claim(
	ctx context.Context,
	userID uint,
) (*models.LoyaltyRecord, error) {

	var rec models.LoyaltyRecord
	res := r.db.WithContext(ctx).
		Model(&rec).
		Clauses(clause.Returning{}).
		Where(
			"user_id = ? AND reward_claimed = false AND cuts_completed >= ?",
			userID, domain.RewardThreshold,
		).
		Updates(map[string]interface{}{
			"reward_claimed": true,
			"cuts_completed": 0,
			"updated_at":     gorm.Expr("NOW()"),
		})

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		var existing models.LoyaltyRecord
		err := r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrThresholdNotMet
	}

	return &rec, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *LoyaltyGormRepository) ListAll(
	ctx context.Context,
) ([]domain.Summary, error) {

	var summaries []domain.Summary
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id, u.name, u.email, u.phone,
			COALESCE(l.cuts_completed, 0) AS cuts_completed,
			COALESCE(l.reward_claimed, false) AS reward_claimed,
			l.updated_at`).
		Joins("LEFT JOIN loyalty_records l ON l.user_id = u.id").
		Order("u.name ASC").
		Scan(&summaries).Error

	if err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *LoyaltyGormRepository) GetByUser(
	ctx context.Context,
	userID uint,
) (*domain.Summary, error) {

	var summary domain.Summary
	res := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id, u.name, u.email, u.phone,
			COALESCE(l.cuts_completed, 0) AS cuts_completed,
			COALESCE(l.reward_claimed, false) AS reward_claimed,
			l.updated_at`).
		Joins("LEFT JOIN loyalty_records l ON l.user_id = u.id").
		Where("u.id = ?", userID).
		Scan(&summary)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return &summary, nil
}

// Compile-time check
var _ domain.Repository = (*LoyaltyGormRepository)(nil)
