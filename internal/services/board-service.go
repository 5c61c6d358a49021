package services

import (
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/repository"
)

type BoardService interface {
	Create(input dto.BoardCreate) (*domain.Board, error)
	List() ([]domain.Board, error)
	Get(id uint) (*domain.Board, error)
	Update(id uint, input dto.BoardUpdate) (*domain.Board, error)
}

type boardService struct {
	boards repository.BoardRepository
}

func NewBoardService(boards repository.BoardRepository) BoardService {
	return &boardService{boards: boards}
}

func (s *boardService) Create(input dto.BoardCreate) (*domain.Board, error) {
	board := &domain.Board{
		Name:  input.Name,
		Color: input.Color,
	}
	return s.boards.Create(board)
}

func (s *boardService) List() ([]domain.Board, error) {
	return s.boards.FindAll()
}

func (s *boardService) Get(id uint) (*domain.Board, error) {
	return s.boards.FindByID(id)
}

func (s *boardService) Update(id uint, input dto.BoardUpdate) (*domain.Board, error) {
	board, err := s.boards.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		board.Name = *input.Name
	}
	if input.Color != nil {
		board.Color = input.Color
	}
	if err := s.boards.Save(board); err != nil {
		return nil, err
	}
	return board, nil
}
