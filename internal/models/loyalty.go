package models

import "time"

// LoyaltyRecord guarda o cartão fidelidade de 10 cortes. A ausência de
// registro equivale a (0, false); a linha nasce no primeiro corte.
type LoyaltyRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CutsCompleted int  `gorm:"not null;default:0" json:"cuts_completed"`
	RewardClaimed bool `gorm:"not null;default:false" json:"reward_claimed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
