package repository

import (
	"errors"

	"github.com/kanbanlab/board_service/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BoardRepository interface {
	Create(board *domain.Board) (*domain.Board, error)
	FindAll() ([]domain.Board, error)
	FindByID(id uint) (*domain.Board, error)
	Save(board *domain.Board) error
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(board *domain.Board) (*domain.Board, error) {
	if err := r.db.Create(board).Error; err != nil {
		zap.L().Error("create board", zap.Error(err))
		return nil, err
	}
	return board, nil
}

func (r *boardRepository) FindAll() ([]domain.Board, error) {
	boards := []domain.Board{}
	if err := r.db.Order("created_at").Find(&boards).Error; err != nil {
		zap.L().Error("list boards", zap.Error(err))
		return nil, err
	}
	return boards, nil
}

func (r *boardRepository) FindByID(id uint) (*domain.Board, error) {
	board := &domain.Board{}
	if err := r.db.First(board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "Board"}
		}
		zap.L().Error("find board", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return board, nil
}

func (r *boardRepository) Save(board *domain.Board) error {
	if err := r.db.Save(board).Error; err != nil {
		zap.L().Error("save board", zap.Uint("id", board.ID), zap.Error(err))
		return err
	}
	return nil
}
