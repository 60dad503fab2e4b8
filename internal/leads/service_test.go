// internal/leads/service_test.go
package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"quote-engine/internal/common/logger"
	"quote-engine/internal/notify"
	"quote-engine/internal/quote"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Implementations
// ==========================

type MockIndexer struct {
	IndexFunc func(ctx context.Context, index, docID string, body []byte) error
	calls     int
}

func (m *MockIndexer) Index(ctx context.Context, index, docID string, body []byte) error {
	m.calls++
	if m.IndexFunc != nil {
		return m.IndexFunc(ctx, index, docID, body)
	}
	return nil
}

type MockNotifier struct {
	DispatchFunc func(ctx context.Context, notificationType string, input *notify.Input) (*notify.Result, error)
	lastInput    *notify.Input
}

func (m *MockNotifier) Dispatch(ctx context.Context, notificationType string, input *notify.Input) (*notify.Result, error) {
	m.lastInput = input
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, notificationType, input)
	}
	return &notify.Result{Status: notify.StatusSent}, nil
}

// ==========================
// Test Helper Functions
// ==========================

func createTestServiceConfig() *Config {
	return &Config{
		HighPriorityMin:   30,
		MediumPriorityMin: 15,
		DedupTTL:          24 * time.Hour,
		SearchIndex:       "leads",
		IndexingEnabled:   true,
	}
}

func createTestConfiguration(t *testing.T) quote.ProjectConfiguration {
	t.Helper()
	cfg, errs := quote.Validate(quote.RawConfiguration{
		ProjectType: quote.ProjectWebApp,
		Design: quote.Design{
			Level:          quote.DesignCustom,
			PageCountBand:  quote.Pages1To5,
			Responsiveness: quote.ResponsiveDesktopOnly,
			UXComplexity:   quote.UXStandard,
		},
		Quality: quote.Quality{
			SEO:           quote.SEONone,
			Performance:   quote.PerfStandard,
			Security:      quote.SecurityStandard,
			Testing:       quote.TestingBasic,
			Accessibility: quote.A11yNone,
		},
		Timeline: quote.Timeline{
			ProjectStart: quote.StartFlexible,
			Maintenance:  quote.MaintenanceNone,
		},
	})
	require.Empty(t, errs)
	return cfg
}

func createTestInput(t *testing.T) *CreateInput {
	t.Helper()
	return &CreateInput{
		Contact: Contact{
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Company: "Example GmbH",
		},
		Configuration: createTestConfiguration(t),
	}
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func expectLeadInsert(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`INSERT INTO leads`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO audit_log`).
		WillReturnResult(sqlmock.NewResult(1, 1))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestService_Create_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectLeadInsert(mock)

	indexer := &MockIndexer{}
	notifier := &MockNotifier{}

	svc := NewService(createTestServiceConfig(), db, newTestRedis(t), indexer, notifier, logger.NewTestLogger(t))

	lead, err := svc.Create(context.Background(), createTestInput(t))

	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, StatusSubmitted, lead.Status)
	assert.Equal(t, "jane@example.com", lead.Contact.Email)
	assert.GreaterOrEqual(t, lead.Score, 0)
	assert.Contains(t, []string{PriorityHigh, PriorityMedium, PriorityLow}, lead.Priority)

	// Comparison is computed, not copied in
	assert.Equal(t, quote.ProviderHeadon, lead.Comparison.Headon.Provider)
	assert.Positive(t, lead.Comparison.Headon.PriceAvg)

	assert.Equal(t, 1, indexer.calls)
	require.NotNil(t, notifier.lastInput)
	assert.Equal(t, lead.ID, notifier.lastInput.LeadID)
	assert.Equal(t, lead.Priority, notifier.lastInput.Priority)

	_, err = time.Parse(time.RFC3339, lead.CreatedAt)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicateRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectLeadInsert(mock)

	rdb := newTestRedis(t)
	svc := NewService(createTestServiceConfig(), db, rdb, nil, nil, logger.NewTestLogger(t))

	_, err = svc.Create(context.Background(), createTestInput(t))
	require.NoError(t, err)

	// Same email and project type within the dedup window
	lead, err := svc.Create(context.Background(), createTestInput(t))
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.Contains(t, err.Error(), "DUPLICATE_LEAD")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DedupKeyIncludesProjectType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectLeadInsert(mock)
	expectLeadInsert(mock)

	rdb := newTestRedis(t)
	svc := NewService(createTestServiceConfig(), db, rdb, nil, nil, logger.NewTestLogger(t))

	_, err = svc.Create(context.Background(), createTestInput(t))
	require.NoError(t, err)

	// Same email but a different project type is a distinct submission
	other := createTestInput(t)
	other.Configuration.ProjectType = quote.ProjectEcommerce
	_, err = svc.Create(context.Background(), other)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO leads`).
		WillReturnError(errors.New("connection reset"))

	svc := NewService(createTestServiceConfig(), db, newTestRedis(t), nil, nil, logger.NewTestLogger(t))

	lead, err := svc.Create(context.Background(), createTestInput(t))

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.Contains(t, err.Error(), "DATABASE_INSERT_FAILED")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_AuditFailureIsNonFatal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO leads`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO audit_log`).
		WillReturnError(errors.New("audit table missing"))

	svc := NewService(createTestServiceConfig(), db, newTestRedis(t), nil, nil, logger.NewTestLogger(t))

	lead, err := svc.Create(context.Background(), createTestInput(t))

	assert.NoError(t, err)
	assert.NotNil(t, lead)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_IndexFailureIsNonFatal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectLeadInsert(mock)

	indexer := &MockIndexer{
		IndexFunc: func(ctx context.Context, index, docID string, body []byte) error {
			return errors.New("elasticsearch unreachable")
		},
	}

	svc := NewService(createTestServiceConfig(), db, newTestRedis(t), indexer, nil, logger.NewTestLogger(t))

	lead, err := svc.Create(context.Background(), createTestInput(t))

	assert.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, 1, indexer.calls)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_NotifyFailureIsNonFatal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectLeadInsert(mock)

	notifier := &MockNotifier{
		DispatchFunc: func(ctx context.Context, notificationType string, input *notify.Input) (*notify.Result, error) {
			return nil, errors.New("SES unavailable")
		},
	}

	svc := NewService(createTestServiceConfig(), db, newTestRedis(t), nil, notifier, logger.NewTestLogger(t))

	lead, err := svc.Create(context.Background(), createTestInput(t))

	assert.NoError(t, err)
	assert.NotNil(t, lead)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_NilRedisSkipsDedup(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectLeadInsert(mock)
	expectLeadInsert(mock)

	svc := NewService(createTestServiceConfig(), db, nil, nil, nil, logger.NewTestLogger(t))

	_, err = svc.Create(context.Background(), createTestInput(t))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createTestInput(t))
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Unit Tests
// ==========================

func TestService_PriorityFor(t *testing.T) {
	svc := NewService(createTestServiceConfig(), nil, nil, nil, nil, logger.NewNoOpLogger())

	tests := []struct {
		score    int
		expected string
	}{
		{score: 0, expected: PriorityLow},
		{score: 14, expected: PriorityLow},
		{score: 15, expected: PriorityMedium},
		{score: 29, expected: PriorityMedium},
		{score: 30, expected: PriorityHigh},
		{score: 55, expected: PriorityHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, svc.priorityFor(tt.score), "score %d", tt.score)
	}
}
