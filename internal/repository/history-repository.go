package repository

import (
	"github.com/kanbanlab/board_service/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HistoryRepository interface {
	WithTx(tx *gorm.DB) HistoryRepository

	Append(entry *domain.CardHistory) error
	ListByCard(cardID uint) ([]domain.CardHistory, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) WithTx(tx *gorm.DB) HistoryRepository {
	return &historyRepository{db: tx}
}

func (r *historyRepository) Append(entry *domain.CardHistory) error {
	if err := r.db.Create(entry).Error; err != nil {
		zap.L().Error("append card history", zap.Uint("cardID", entry.CardID), zap.Error(err))
		return err
	}
	return nil
}

// ListByCard returns entries newest first. The id tiebreak keeps entries
// written in the same instant in reverse append order.
func (r *historyRepository) ListByCard(cardID uint) ([]domain.CardHistory, error) {
	entries := []domain.CardHistory{}
	err := r.db.Where("card_id = ?", cardID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		zap.L().Error("list card history", zap.Uint("cardID", cardID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}
