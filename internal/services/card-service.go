package services

import (
	"encoding/json"

	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/interfaces"
	"github.com/kanbanlab/board_service/internal/repository"
	"github.com/kanbanlab/board_service/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// diffOrder is the fixed order in which changed fields are written to the
// history, so an update always produces entries in the same sequence.
var diffOrder = []string{
	"title",
	"description",
	"due_date",
	"column_id",
	"color",
	"assignee_id",
	"link",
}

type CardService interface {
	Create(input dto.CardCreate, actorID *uint) (*domain.Card, error)
	List() ([]domain.Card, error)
	ListByColumn(columnID uint) ([]domain.Card, error)
	Update(cardID uint, input dto.CardUpdate, actorID *uint) (*domain.Card, error)
	Delete(cardID uint, actorID *uint) error
	History(cardID uint) ([]domain.CardHistory, error)
}

type cardService struct {
	db       *gorm.DB
	cards    repository.CardRepository
	columns  repository.ColumnRepository
	users    repository.UserRepository
	history  repository.HistoryRepository
	producer interfaces.ProducerHandler
}

func NewCardService(
	db *gorm.DB,
	cards repository.CardRepository,
	columns repository.ColumnRepository,
	users repository.UserRepository,
	history repository.HistoryRepository,
	producer interfaces.ProducerHandler,
) CardService {
	return &cardService{
		db:       db,
		cards:    cards,
		columns:  columns,
		users:    users,
		history:  history,
		producer: producer,
	}
}

func (s *cardService) Create(input dto.CardCreate, actorID *uint) (*domain.Card, error) {
	if _, err := s.columns.FindByID(input.ColumnID); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(input.AssigneeID); err != nil {
		return nil, err
	}

	card := &domain.Card{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		ColumnID:    input.ColumnID,
		Color:       input.Color,
		AssigneeID:  input.AssigneeID,
		Link:        input.Link,
	}

	var entries []*domain.CardHistory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.cards.WithTx(tx).Create(card); err != nil {
			return err
		}
		entry := &domain.CardHistory{
			CardID:   card.ID,
			UserID:   actorID,
			Action:   domain.HistoryActionCreate,
			NewValue: utils.StringPtr(card.Title),
		}
		if err := s.history.WithTx(tx).Append(entry); err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(entries)
	return card, nil
}

func (s *cardService) List() ([]domain.Card, error) {
	return s.cards.FindAll()
}

func (s *cardService) ListByColumn(columnID uint) ([]domain.Card, error) {
	return s.cards.FindByColumn(columnID)
}

func (s *cardService) Update(cardID uint, input dto.CardUpdate, actorID *uint) (*domain.Card, error) {
	if err := s.checkAssignee(input.AssigneeID); err != nil {
		return nil, err
	}

	var card *domain.Card
	var entries []*domain.CardHistory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cards := s.cards.WithTx(tx)

		c, err := cards.FindByID(cardID)
		if err != nil {
			return err
		}

		before := snapshot(c)
		applyUpdate(c, input)
		if err := cards.Save(c); err != nil {
			return err
		}
		after := snapshot(c)

		history := s.history.WithTx(tx)
		for _, field := range diffOrder {
			if equalValue(before[field], after[field]) {
				continue
			}
			entry := &domain.CardHistory{
				CardID:   c.ID,
				UserID:   actorID,
				Action:   domain.HistoryActionUpdate,
				Field:    utils.StringPtr(field),
				OldValue: before[field],
				NewValue: after[field],
			}
			if err := history.Append(entry); err != nil {
				return err
			}
			entries = append(entries, entry)
		}

		card = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(entries)
	return card, nil
}

func (s *cardService) Delete(cardID uint, actorID *uint) error {
	var entries []*domain.CardHistory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cards := s.cards.WithTx(tx)

		c, err := cards.FindByID(cardID)
		if err != nil {
			return err
		}
		titleBefore := c.Title

		if err := cards.Delete(c); err != nil {
			return err
		}

		entry := &domain.CardHistory{
			CardID:   cardID,
			UserID:   actorID,
			Action:   domain.HistoryActionDelete,
			OldValue: utils.StringPtr(titleBefore),
		}
		if err := s.history.WithTx(tx).Append(entry); err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(entries)
	return nil
}

func (s *cardService) History(cardID uint) ([]domain.CardHistory, error) {
	return s.history.ListByCard(cardID)
}

// checkAssignee resolves a non-absent assignee reference before the mutation
// runs; the mutation itself trusts the reference.
func (s *cardService) checkAssignee(assigneeID *uint) error {
	if assigneeID == nil {
		return nil
	}
	if _, err := s.users.FindByID(*assigneeID); err != nil {
		if domain.IsNotFound(err) {
			return &domain.NotFoundError{Entity: "Assignee"}
		}
		return err
	}
	return nil
}

// snapshot renders the seven mutable fields as text so before/after states
// compare exactly regardless of type.
func snapshot(c *domain.Card) map[string]*string {
	return map[string]*string{
		"title":       utils.StringPtr(c.Title),
		"description": c.Description,
		"due_date":    utils.TimeString(c.DueDate),
		"column_id":   utils.StringPtr(utils.UintString(c.ColumnID)),
		"color":       c.Color,
		"assignee_id": utils.UintPtrString(c.AssigneeID),
		"link":        c.Link,
	}
}

func applyUpdate(c *domain.Card, input dto.CardUpdate) {
	if input.Title != nil {
		c.Title = *input.Title
	}
	if input.Description != nil {
		c.Description = input.Description
	}
	if input.DueDate != nil {
		c.DueDate = input.DueDate
	}
	if input.ColumnID != nil {
		c.ColumnID = *input.ColumnID
	}
	if input.Color != nil {
		c.Color = input.Color
	}
	if input.AssigneeID != nil {
		c.AssigneeID = input.AssigneeID
	}
	if input.Link != nil {
		c.Link = input.Link
	}
}

func equalValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// publish mirrors committed history entries onto the event stream. Best
// effort: a broker failure never fails the request.
func (s *cardService) publish(entries []*domain.CardHistory) {
	if s.producer == nil {
		return
	}
	for _, e := range entries {
		event := dto.CardHistoryEvent{
			HistoryID: e.ID,
			CardID:    e.CardID,
			UserID:    e.UserID,
			Action:    e.Action,
			Field:     e.Field,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			CreatedAt: e.CreatedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			zap.L().Error("marshal history event", zap.Error(err))
			continue
		}
		key := []byte(utils.UintString(e.CardID))
		if err := s.producer.PublishMessage(key, payload); err != nil {
			zap.L().Warn("publish history event", zap.Uint("cardID", e.CardID), zap.Error(err))
		}
	}
}
