package taegis

import (
	"context"
	"fmt"

	tgerrors "github.com/areino/validate-taegis-parser/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
// Pages holds the scripted result pages: the first is returned by
// SubmitEventQuery and each subsequent page is returned by FetchEventPage,
// which verifies the caller presented the preceding page's Next token.
type MockClient struct {
	// Scripted responses
	Pages            []EventPage
	ValidationResult *ParserValidationResult

	// Error to return from any call
	Err error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool

	// Track calls for verification
	SubmitCalls   int
	PageCalls     int
	ValidateCalls int
	LastQuery     string
	LastTenant    string
	LastOpts      QueryOptions
	LastPageIDs   []string
	LastInput     UnvalidatedParserInput

	next int
}

// SubmitEventQuery implements the Client interface
func (m *MockClient) SubmitEventQuery(ctx context.Context, query, tenantID string, opts QueryOptions) (*EventPage, error) {
	m.SubmitCalls++
	m.LastQuery = query
	m.LastTenant = tenantID
	m.LastOpts = opts

	if err := m.fail(ctx); err != nil {
		return nil, err
	}

	if len(m.Pages) == 0 {
		return &EventPage{}, nil
	}

	m.next = 1
	page := m.Pages[0]
	return &page, nil
}

// FetchEventPage implements the Client interface
func (m *MockClient) FetchEventPage(ctx context.Context, pageID string) (*EventPage, error) {
	m.PageCalls++
	m.LastPageIDs = append(m.LastPageIDs, pageID)

	if err := m.fail(ctx); err != nil {
		return nil, err
	}

	if m.next <= 0 || m.next >= len(m.Pages) {
		return nil, fmt.Errorf("unexpected page request %q", pageID)
	}
	if want := m.Pages[m.next-1].Next; pageID != want {
		return nil, fmt.Errorf("page token mismatch: got %q, want %q", pageID, want)
	}

	page := m.Pages[m.next]
	m.next++
	return &page, nil
}

// ValidateParser implements the Client interface
func (m *MockClient) ValidateParser(ctx context.Context, input UnvalidatedParserInput) (*ParserValidationResult, error) {
	m.ValidateCalls++
	m.LastInput = input

	if err := m.fail(ctx); err != nil {
		return nil, err
	}

	if m.ValidationResult != nil {
		return m.ValidationResult, nil
	}
	return &ParserValidationResult{Ok: true}, nil
}

// fail returns the configured error condition, if any.
func (m *MockClient) fail(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", tgerrors.ErrAuthFailed)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", tgerrors.ErrNetworkFailure)
	}
	return m.Err
}
