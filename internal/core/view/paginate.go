package view

// Paginate returns the pageSize-sized slice for the 1-based page, plus the
// total page count (ceiling of len(items)/pageSize). Pages before the first
// clamp to page 1; pages past the end yield an empty slice. A non-positive
// pageSize returns everything as a single page.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	if pageSize <= 0 {
		return items, 1
	}
	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
