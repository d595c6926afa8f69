package creatives

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/logging"
	"github.com/adcreativex/adcreativex/internal/models"
	"github.com/adcreativex/adcreativex/internal/session"
)

// Service exposes creative-catalog operations scoped to the session's user.
type Service struct {
	repo     Repository
	sessions *session.Manager
	log      logging.Logger
}

func NewService(repo Repository, sessions *session.Manager, log logging.Logger) *Service {
	return &Service{repo: repo, sessions: sessions, log: log}
}

func (s *Service) currentUserID() (string, error) {
	user := s.sessions.CurrentUser()
	if user == nil {
		return "", common.ErrNotLoggedIn
	}
	return user.ID, nil
}

// Add registers a new draft creative for the logged-in user.
func (s *Service) Add(ctx context.Context, title, format string) (*models.Creative, error) {
	userID, err := s.currentUserID()
	if err != nil {
		return nil, err
	}
	if title == "" || format == "" {
		return nil, common.ErrMissingInput
	}

	c := &models.Creative{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Format:    format,
		Status:    models.CreativeStatusDraft,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "creative added", "creative_id", c.ID, "user_id", userID)
	return c, nil
}

// ListMine returns the logged-in user's creatives, oldest first.
func (s *Service) ListMine(ctx context.Context) ([]models.Creative, error) {
	userID, err := s.currentUserID()
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// SetStatus moves one of the logged-in user's creatives to status. A
// creative that does not exist or belongs to someone else yields
// common.ErrorNotFound.
func (s *Service) SetStatus(ctx context.Context, id string, status models.CreativeStatus) error {
	userID, err := s.currentUserID()
	if err != nil {
		return err
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return common.ErrorNotFound
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
