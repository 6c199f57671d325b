package shared

// Filter carries pagination, ordering, and search terms from list endpoints
// down to the repositories. Repositories validate OrderBy against their own
// column whitelists before interpolating it.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}
