package taegis

import "context"

// Client defines the interface for interacting with the Taegis API.
// This interface allows for easy mocking in tests.
type Client interface {
	// SubmitEventQuery submits a new event query for the given tenant and
	// returns the first page of results. The returned page's Next field is
	// the continuation token for FetchEventPage; empty means the query
	// completed within a single page.
	SubmitEventQuery(ctx context.Context, query, tenantID string, opts QueryOptions) (*EventPage, error)

	// FetchEventPage retrieves the next page of a previously submitted
	// query using its continuation token.
	FetchEventPage(ctx context.Context, pageID string) (*EventPage, error)

	// ValidateParser submits a parser definition for server-side
	// validation and returns the verdict.
	ValidateParser(ctx context.Context, input UnvalidatedParserInput) (*ParserValidationResult, error)
}
