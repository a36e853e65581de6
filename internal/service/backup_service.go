package service

import (
	"context"
	"time"

	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
)

const (
	backupVersion = "3.0"
	backupSystem  = "Omicron POS"
)

// BackupService assembles the full-database export served as a download.
type BackupService interface {
	Export(ctx context.Context) (*dto.BackupDocument, error)
}

type backupService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	tickets  repository.TicketRepository
	repairs  repository.RepairRepository
}

func NewBackupService(
	users repository.UserRepository,
	products repository.ProductRepository,
	tickets repository.TicketRepository,
	repairs repository.RepairRepository,
) BackupService {
	return &backupService{users: users, products: products, tickets: tickets, repairs: repairs}
}

func (s *backupService) Export(ctx context.Context) (*dto.BackupDocument, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx, "")
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	repairs, err := s.repairs.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.BackupDocument{
		Metadata: dto.BackupMetadata{
			Date:    time.Now().UTC(),
			Version: backupVersion,
			System:  backupSystem,
		},
		Collections: dto.BackupCollections{
			Users:    users,
			Products: products,
			Tickets:  tickets,
			Repairs:  repairs,
		},
	}, nil
}
