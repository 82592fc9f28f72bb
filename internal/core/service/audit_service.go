package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-system/internal/core/domain"
	"github.com/contactdesk/contacts-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation that persists
// mutation records to the audit repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	event := &domain.AuditEvent{
		Entity:    in.Entity,
		EntityID:  in.EntityID,
		Action:    in.Action,
		ActorID:   in.ActorID,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	s.log.Debug().
		Str("entity", in.Entity).
		Str("entity_id", in.EntityID).
		Str("action", string(in.Action)).
		Msg("audit event persisted")

	return nil
}
