package services

import (
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/repository"
)

type ColumnService interface {
	Create(input dto.ColumnCreate) (*domain.Column, error)
	ListAll() ([]domain.Column, error)
	ListByBoard(boardID uint) ([]domain.Column, error)
	Update(id uint, input dto.ColumnUpdate) (*domain.Column, error)
	Delete(id uint) error
}

type columnService struct {
	columns repository.ColumnRepository
	boards  repository.BoardRepository
}

func NewColumnService(columns repository.ColumnRepository, boards repository.BoardRepository) ColumnService {
	return &columnService{columns: columns, boards: boards}
}

func (s *columnService) Create(input dto.ColumnCreate) (*domain.Column, error) {
	if _, err := s.boards.FindByID(input.BoardID); err != nil {
		return nil, err
	}

	position := 0
	if input.Position != nil {
		position = *input.Position
	}
	column := &domain.Column{
		Title:    input.Title,
		Position: position,
		BoardID:  input.BoardID,
		Color:    input.Color,
	}
	return s.columns.Create(column)
}

func (s *columnService) ListAll() ([]domain.Column, error) {
	return s.columns.FindAll()
}

func (s *columnService) ListByBoard(boardID uint) ([]domain.Column, error) {
	if _, err := s.boards.FindByID(boardID); err != nil {
		return nil, err
	}
	return s.columns.FindByBoard(boardID)
}

func (s *columnService) Update(id uint, input dto.ColumnUpdate) (*domain.Column, error) {
	column, err := s.columns.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		column.Title = *input.Title
	}
	if input.Position != nil {
		column.Position = *input.Position
	}
	if input.BoardID != nil {
		column.BoardID = *input.BoardID
	}
	if input.Color != nil {
		column.Color = input.Color
	}
	if err := s.columns.Save(column); err != nil {
		return nil, err
	}
	return column, nil
}

func (s *columnService) Delete(id uint) error {
	column, err := s.columns.FindByID(id)
	if err != nil {
		return err
	}
	return s.columns.Delete(column)
}
