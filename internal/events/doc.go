// Package events holds the in-memory event processing used by the export
// tool: accumulating all pages of a query (pager), grouping events by their
// originating log source (aggregator), and ordering the sources for
// presentation (ranker).
package events
