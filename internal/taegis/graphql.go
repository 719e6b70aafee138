package taegis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shurcooL/graphql"
	"golang.org/x/oauth2"

	"github.com/areino/validate-taegis-parser/internal/apierror"
	tgerrors "github.com/areino/validate-taegis-parser/internal/errors"
)

// userAgent identifies these tools to the API.
const userAgent = "taegis-parser-tools/0.1.0"

// maxResponseBytes limits how large a single API response may be.
const maxResponseBytes = 10 * 1024 * 1024

// callerName is sent with each event query so server-side logs can
// attribute the traffic.
const callerName = "export-unparsed-events"

// EventQueryOptions mirrors the API's query option input object.
type EventQueryOptions struct {
	TimestampAscending bool `json:"timestampAscending"`
	PageSize           int  `json:"pageSize"`
	MaxRows            int  `json:"maxRows"`
	SkipCache          bool `json:"skipCache"`
	AggregationOff     bool `json:"aggregationOff"`
}

// JSONObject is the API's free-form metadata input object.
type JSONObject map[string]string

// GraphQLClient implements the Client interface against the Taegis GraphQL
// API. The client is tenant-scoped: every request carries the tenant context
// header it was constructed with.
type GraphQLClient struct {
	client    *graphql.Client
	tenantID  string
	inspector apierror.Inspector
}

// NewGraphQLClient creates a Taegis GraphQL client for the given endpoint.
// Requests are authenticated with tokens drawn from ts, carry the tenant
// context header when tenantID is non-empty, and have their response bodies
// size-limited to guard against runaway payloads.
func NewGraphQLClient(endpoint, tenantID string, ts oauth2.TokenSource) *GraphQLClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &apiTransport{
			tenantID: tenantID,
			base: &oauth2.Transport{
				Source: ts,
				Base:   transport,
			},
		},
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		tenantID:  tenantID,
		inspector: apierror.NewErrorChainInspector(apierror.NewInspector()),
	}
}

// eventResult is the shape shared by eventQuery and eventPage responses.
// The server returns a list of result fragments; rows may be split across
// them, and at most one carries a non-empty next-page token.
type eventResult struct {
	Result struct {
		Rows json.RawMessage
	}
	Next graphql.String
}

// SubmitEventQuery submits an event query and returns the first page.
func (c *GraphQLClient) SubmitEventQuery(ctx context.Context, query, tenantID string, opts QueryOptions) (*EventPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var q struct {
		EventQuery []eventResult `graphql:"eventQuery(query: $query, options: $options, metadata: $metadata)"`
	}

	variables := map[string]interface{}{
		"query": graphql.String(query),
		"options": EventQueryOptions{
			TimestampAscending: true,
			PageSize:           pageSize,
			MaxRows:            opts.MaxRows,
			SkipCache:          true,
			AggregationOff:     false,
		},
		"metadata": JSONObject{"callerName": callerName},
	}

	slog.Debug("submitting event query", "tenant", tenantID, "query", query)

	if err := c.client.Query(ctx, &q, variables); err != nil {
		return nil, c.mapError(err)
	}

	return collectResults(q.EventQuery)
}

// FetchEventPage retrieves the next page of results for a continuation token.
func (c *GraphQLClient) FetchEventPage(ctx context.Context, pageID string) (*EventPage, error) {
	var q struct {
		EventPage []eventResult `graphql:"eventPage(id: $id)"`
	}

	variables := map[string]interface{}{
		"id": graphql.ID(pageID),
	}

	slog.Debug("fetching event page", "page_id", pageID)

	if err := c.client.Query(ctx, &q, variables); err != nil {
		return nil, c.mapError(err)
	}

	return collectResults(q.EventPage)
}

// ValidateParser submits a parser definition to the Roadrunner service.
func (c *GraphQLClient) ValidateParser(ctx context.Context, input UnvalidatedParserInput) (*ParserValidationResult, error) {
	var q struct {
		ValidateParser struct {
			Ok      graphql.Boolean
			Message graphql.String
		} `graphql:"validateParser(input: $input)"`
	}

	variables := map[string]interface{}{
		"input": input,
	}

	if err := c.client.Query(ctx, &q, variables); err != nil {
		return nil, c.mapError(err)
	}

	return &ParserValidationResult{
		Ok:      bool(q.ValidateParser.Ok),
		Message: string(q.ValidateParser.Message),
	}, nil
}

// collectResults flattens a list of result fragments into one EventPage,
// preserving row arrival order. The next-page token is taken from the first
// fragment that carries one, matching how the server splits results.
func collectResults(results []eventResult) (*EventPage, error) {
	page := &EventPage{}
	for _, r := range results {
		events, err := DecodeEvents(r.Result.Rows)
		if err != nil {
			return nil, err
		}
		page.Events = append(page.Events, events...)
		if page.Next == "" && r.Next != "" {
			page.Next = string(r.Next)
		}
	}
	return page, nil
}

// mapError maps transport and API errors to sentinel errors with
// actionable one-line messages.
func (c *GraphQLClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("taegis API rate limit exceeded, wait before retrying: %w", tgerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("taegis API authentication failed, check CLIENT_ID and CLIENT_SECRET: %w", tgerrors.ErrAuthFailed)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("tenant %q not found or not accessible: %w", c.tenantID, tgerrors.ErrTenantNotFound)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to the taegis API: %w", tgerrors.ErrNetworkFailure)
	}

	return fmt.Errorf("%w: %v", tgerrors.ErrQueryFailed, err)
}

// limitedReader wraps a ReadCloser with a size limit.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// apiTransport adds identification headers, tenant scoping, and response
// size limits to API requests. Authentication is handled by the wrapped
// oauth2 transport.
type apiTransport struct {
	tenantID string
	base     http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("User-Agent", userAgent)
	if t.tenantID != "" {
		req.Header.Set("X-Tenant-Context", t.tenantID)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseBytes,
		}
	}

	return resp, nil
}
