package repository

import (
	"errors"

	"github.com/kanbanlab/board_service/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ColumnRepository interface {
	Create(column *domain.Column) (*domain.Column, error)
	FindAll() ([]domain.Column, error)
	FindByBoard(boardID uint) ([]domain.Column, error)
	FindByID(id uint) (*domain.Column, error)
	Save(column *domain.Column) error
	Delete(column *domain.Column) error
}

type columnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepository{db: db}
}

func (r *columnRepository) Create(column *domain.Column) (*domain.Column, error) {
	if err := r.db.Create(column).Error; err != nil {
		zap.L().Error("create column", zap.Error(err))
		return nil, err
	}
	return column, nil
}

func (r *columnRepository) FindAll() ([]domain.Column, error) {
	columns := []domain.Column{}
	if err := r.db.Order("position").Find(&columns).Error; err != nil {
		zap.L().Error("list columns", zap.Error(err))
		return nil, err
	}
	return columns, nil
}

func (r *columnRepository) FindByBoard(boardID uint) ([]domain.Column, error) {
	columns := []domain.Column{}
	err := r.db.Where("board_id = ?", boardID).Order("position").Find(&columns).Error
	if err != nil {
		zap.L().Error("list columns by board", zap.Uint("boardID", boardID), zap.Error(err))
		return nil, err
	}
	return columns, nil
}

func (r *columnRepository) FindByID(id uint) (*domain.Column, error) {
	column := &domain.Column{}
	if err := r.db.First(column, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "Column"}
		}
		zap.L().Error("find column", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return column, nil
}

func (r *columnRepository) Save(column *domain.Column) error {
	if err := r.db.Save(column).Error; err != nil {
		zap.L().Error("save column", zap.Uint("id", column.ID), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the column and its cards in one transaction. Cards removed
// this way write no history, matching the board cascade lifecycle.
func (r *columnRepository) Delete(column *domain.Column) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_id = ?", column.ID).Delete(&domain.Card{}).Error; err != nil {
			return err
		}
		return tx.Delete(column).Error
	})
	if err != nil {
		zap.L().Error("delete column", zap.Uint("id", column.ID), zap.Error(err))
	}
	return err
}
