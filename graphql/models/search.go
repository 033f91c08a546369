package models

// SearchResult carries one search response over GraphQL. Records are
// JSON-encoded because the row shape depends on the requested kind.
type SearchResult struct {
	Count   int32
	Records string
}
