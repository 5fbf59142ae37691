package domain

// ListQuery scopes paginated lookups. Limit <= 0 means unrestricted; Search
// is a case-insensitive substring match on the entity name. Results are
// always ordered by (created_at, id) so windows stay stable and disjoint.
type ListQuery struct {
	Limit  int
	Offset int
	Search string
}
