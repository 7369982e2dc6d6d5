package pagination

// CalculateOffset calculates the database OFFSET value based on page number and
// page size. Page numbers are zero-based, so page 0 has offset 0.
//
// Formula: offset = page * size
//
// Examples:
//   - Page 0, Size 10 -> Offset 0
//   - Page 1, Size 10 -> Offset 10
//   - Page 3, Size 10 -> Offset 30
func CalculateOffset(page, size int) int {
	return page * size
}

// CalculateTotalPages calculates the total number of pages based on total items
// and page size. Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < size, returns 1
//   - Otherwise, returns ceil(total / size)
//
// Examples:
//   - Total 0, Size 10 -> 1 page
//   - Total 10, Size 10 -> 1 page
//   - Total 15, Size 10 -> 2 pages
func CalculateTotalPages(total int64, size int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	// Ceiling division: (total + size - 1) / size
	return int((total + int64(size) - 1) / int64(size))
}
