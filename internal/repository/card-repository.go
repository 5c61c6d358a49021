package repository

import (
	"errors"

	"github.com/kanbanlab/board_service/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CardRepository interface {
	// WithTx rebinds the repository to a transaction handle so card writes
	// and history writes can share one commit.
	WithTx(tx *gorm.DB) CardRepository

	Create(card *domain.Card) (*domain.Card, error)
	FindAll() ([]domain.Card, error)
	FindByColumn(columnID uint) ([]domain.Card, error)
	FindByID(id uint) (*domain.Card, error)
	Save(card *domain.Card) error
	Delete(card *domain.Card) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) WithTx(tx *gorm.DB) CardRepository {
	return &cardRepository{db: tx}
}

func (r *cardRepository) Create(card *domain.Card) (*domain.Card, error) {
	if err := r.db.Create(card).Error; err != nil {
		zap.L().Error("create card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *cardRepository) FindAll() ([]domain.Card, error) {
	cards := []domain.Card{}
	if err := r.db.Order("created_at").Find(&cards).Error; err != nil {
		zap.L().Error("list cards", zap.Error(err))
		return nil, err
	}
	return cards, nil
}

func (r *cardRepository) FindByColumn(columnID uint) ([]domain.Card, error) {
	cards := []domain.Card{}
	err := r.db.Where("column_id = ?", columnID).Order("created_at").Find(&cards).Error
	if err != nil {
		zap.L().Error("list cards by column", zap.Uint("columnID", columnID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

func (r *cardRepository) FindByID(id uint) (*domain.Card, error) {
	card := &domain.Card{}
	if err := r.db.First(card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "Card"}
		}
		zap.L().Error("find card", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *cardRepository) Save(card *domain.Card) error {
	if err := r.db.Save(card).Error; err != nil {
		zap.L().Error("save card", zap.Uint("id", card.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *cardRepository) Delete(card *domain.Card) error {
	if err := r.db.Delete(card).Error; err != nil {
		zap.L().Error("delete card", zap.Uint("id", card.ID), zap.Error(err))
		return err
	}
	return nil
}
