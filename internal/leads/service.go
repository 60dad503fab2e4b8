// internal/leads/service.go
package leads

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	stderrors "quote-engine/internal/common/errors"
	"quote-engine/internal/common/logger"
	"quote-engine/internal/common/metrics"
	"quote-engine/internal/notify"
	"quote-engine/internal/quote"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Indexer mirrors the search-side persistence, optional at runtime.
type Indexer interface {
	Index(ctx context.Context, index, docID string, body []byte) error
}

// Notifier dispatches sales-team notifications, optional at runtime.
type Notifier interface {
	Dispatch(ctx context.Context, notificationType string, input *notify.Input) (*notify.Result, error)
}

type Service struct {
	config   *Config
	db       *sql.DB
	redis    *redis.Client
	indexer  Indexer
	notifier Notifier
	logger   logger.Logger
}

func NewService(config *Config, db *sql.DB, rdb *redis.Client, indexer Indexer, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		config:   config,
		db:       db,
		redis:    rdb,
		indexer:  indexer,
		notifier: notifier,
		logger:   log.WithFields(map[string]interface{}{"component": "leads"}),
	}
}

// Create scores the configuration, enforces submission dedup, persists the
// lead, and fans out the supporting writes. Search indexing, audit logging,
// and notifications are non-fatal.
func (s *Service) Create(ctx context.Context, input *CreateInput) (*Lead, error) {
	cmp := quote.Compare(input.Configuration)
	score := quote.Score(input.Configuration, cmp)
	priority := s.priorityFor(score)

	if err := s.checkDuplicate(ctx, input); err != nil {
		return nil, err
	}

	lead := &Lead{
		ID:            uuid.New().String(),
		Contact:       input.Contact,
		Configuration: input.Configuration,
		Comparison:    cmp,
		Score:         score,
		Priority:      priority,
		Status:        StatusSubmitted,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.insertLead(ctx, lead); err != nil {
		return nil, err
	}

	s.writeAuditLog(ctx, lead)
	s.indexLead(ctx, lead)
	s.notifyLead(ctx, lead)

	metrics.LeadsCreated.WithLabelValues(priority).Inc()

	s.logger.Info("lead created", map[string]interface{}{
		"leadId":   lead.ID,
		"score":    lead.Score,
		"priority": lead.Priority,
	})

	return lead, nil
}

func (s *Service) priorityFor(score int) string {
	switch {
	case score >= s.config.HighPriorityMin:
		return PriorityHigh
	case score >= s.config.MediumPriorityMin:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// checkDuplicate rejects repeat submissions of the same email and project type
// within the dedup window. A cache outage does not block lead capture.
func (s *Service) checkDuplicate(ctx context.Context, input *CreateInput) error {
	if s.redis == nil {
		return nil
	}

	key := fmt.Sprintf("lead:dedup:%s:%s",
		strings.ToLower(strings.TrimSpace(input.Contact.Email)),
		input.Configuration.ProjectType,
	)

	set, err := s.redis.SetNX(ctx, key, "1", s.config.DedupTTL).Result()
	if err != nil {
		s.logger.Warn("dedup check failed, accepting lead", map[string]interface{}{
			"error": err,
		})
		return nil
	}
	if !set {
		metrics.LeadsDuplicate.Inc()
		return stderrors.NewDuplicateLeadError(input.Contact.Email)
	}
	return nil
}

func (s *Service) insertLead(ctx context.Context, lead *Lead) error {
	configJSON, err := json.Marshal(lead.Configuration)
	if err != nil {
		return stderrors.NewDatabaseInsertFailedError(fmt.Errorf("marshal configuration: %w", err))
	}
	comparisonJSON, err := json.Marshal(lead.Comparison)
	if err != nil {
		return stderrors.NewDatabaseInsertFailedError(fmt.Errorf("marshal comparison: %w", err))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO leads (
			id, name, email, company, phone, message,
			configuration, comparison, score, priority, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`,
		lead.ID,
		lead.Contact.Name,
		lead.Contact.Email,
		lead.Contact.Company,
		lead.Contact.Phone,
		lead.Contact.Message,
		configJSON,
		comparisonJSON,
		lead.Score,
		lead.Priority,
		lead.Status,
		lead.CreatedAt,
	)
	if err != nil {
		return stderrors.NewDatabaseInsertFailedError(err)
	}
	return nil
}

// writeAuditLog records the creation event; failures are logged, not returned.
func (s *Service) writeAuditLog(ctx context.Context, lead *Lead) {
	detailsJSON, err := json.Marshal(map[string]interface{}{
		"email":    lead.Contact.Email,
		"score":    lead.Score,
		"priority": lead.Priority,
	})
	if err != nil {
		s.logger.Warn("failed to marshal audit log details", map[string]interface{}{
			"error": err,
		})
		detailsJSON = []byte("{}")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_log (event_type, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		"lead_created",
		"lead",
		lead.ID,
		detailsJSON,
		lead.CreatedAt,
	)
	if err != nil {
		s.logger.Warn("audit log insert failed", map[string]interface{}{
			"error":  err,
			"leadId": lead.ID,
		})
	}
}

func (s *Service) indexLead(ctx context.Context, lead *Lead) {
	if s.indexer == nil || !s.config.IndexingEnabled {
		return
	}

	doc, err := json.Marshal(lead)
	if err != nil {
		s.logger.Warn("failed to marshal lead for indexing", map[string]interface{}{
			"error":  err,
			"leadId": lead.ID,
		})
		return
	}

	if err := s.indexer.Index(ctx, s.config.SearchIndex, lead.ID, doc); err != nil {
		s.logger.Warn("lead indexing failed", map[string]interface{}{
			"error":  err,
			"leadId": lead.ID,
		})
	}
}

func (s *Service) notifyLead(ctx context.Context, lead *Lead) {
	if s.notifier == nil {
		return
	}

	_, err := s.notifier.Dispatch(ctx, notify.TypeNewLead, &notify.Input{
		LeadID:      lead.ID,
		ContactName: lead.Contact.Name,
		Email:       lead.Contact.Email,
		Priority:    lead.Priority,
		Score:       lead.Score,
	})
	if err != nil {
		s.logger.Warn("lead notification failed", map[string]interface{}{
			"error":  err,
			"leadId": lead.ID,
		})
	}
}
