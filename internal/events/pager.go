package events

import (
	"context"

	"github.com/areino/validate-taegis-parser/internal/metadata"
	"github.com/areino/validate-taegis-parser/internal/taegis"
)

// FetchAll submits the query and follows continuation tokens until the
// server stops producing pages, accumulating every row in arrival order.
// MaxRows is enforced server-side; the pager only follows cursors. Any
// fetch error propagates unmodified to the caller, with no partial result.
//
// tracker may be nil if no run accounting is wanted.
func FetchAll(ctx context.Context, client taegis.Client, query, tenantID string, opts taegis.QueryOptions, tracker *metadata.Tracker) ([]taegis.Event, error) {
	page, err := client.SubmitEventQuery(ctx, query, tenantID, opts)
	if err != nil {
		return nil, err
	}
	record(tracker, page)

	all := append([]taegis.Event(nil), page.Events...)

	for page.Next != "" {
		page, err = client.FetchEventPage(ctx, page.Next)
		if err != nil {
			return nil, err
		}
		record(tracker, page)
		all = append(all, page.Events...)
	}

	return all, nil
}

func record(tracker *metadata.Tracker, page *taegis.EventPage) {
	if tracker == nil {
		return
	}
	tracker.IncrementAPICall()
	tracker.AddPage(len(page.Events))
}
