package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vkravets/tsekh/internal/db"
	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/repository"
)

type sectionService struct {
	sections repository.SectionRepo
	uow      db.UnitOfWork
}

func NewSectionService(sections repository.SectionRepo, uow db.UnitOfWork) SectionService {
	return &sectionService{sections: sections, uow: uow}
}

// Create writes the section row and its operation type labels in one
// transaction.
func (s *sectionService) Create(ctx context.Context, sec *domain.Section) error {
	if sec.ID == "" {
		sec.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sec.CreatedAt = now
	sec.UpdatedAt = now
	if err := sec.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSectionRepo(tx).Create(ctx, sec)
	})
}

func (s *sectionService) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	return s.sections.GetByID(ctx, id)
}

func (s *sectionService) GetByName(ctx context.Context, name string) (*domain.Section, error) {
	return s.sections.GetByName(ctx, name)
}

func (s *sectionService) List(ctx context.Context) ([]*domain.Section, error) {
	return s.sections.List(ctx)
}

// Update replaces the row and the label set atomically; a failed label
// write must not leave the section half updated.
func (s *sectionService) Update(ctx context.Context, sec *domain.Section) error {
	if err := sec.Validate(); err != nil {
		return err
	}
	sec.UpdatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSectionRepo(tx).Update(ctx, sec)
	})
}

func (s *sectionService) Delete(ctx context.Context, id string) error {
	return s.sections.Delete(ctx, id)
}
