package utils

const MAX_ITEMS_PER_QUERY = 10

// NumberOfPages returns how many pages of perPage items cover total items.
func NumberOfPages(total int64, perPage int) int64 {
	if total <= 0 {
		return 0
	}
	if perPage <= 0 {
		return 1
	}

	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return pages
}

// Offset converts a 1-based page number into a row offset. Pages below 1 are read as 1.
func Offset(page int, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
