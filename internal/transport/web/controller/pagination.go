package controller

import (
	"net/url"
	"strconv"

	"github.com/jbeshir/feed-ranking/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// parsePagination reads page and page_size, falling back to defaults. Range
// checks happen in the query layer so every surface rejects the same values.
func parsePagination(q url.Values) (page, pageSize int, err error) {
	page, err = parseIntParam(q, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}

	pageSize, err = parseIntParam(q, "page_size", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}

	return page, pageSize, nil
}

func parseIntParam(q url.Values, name string, fallback int) (int, error) {
	if !q.Has(name) {
		return fallback, nil
	}

	v, err := strconv.ParseInt(q.Get(name), 10, 32)
	if err != nil {
		return 0, domain.InvalidInputError{Field: name, Reason: "must be an integer"}
	}
	return int(v), nil
}

func parseSeed(q url.Values) (uint64, error) {
	if !q.Has("seed") {
		return 0, nil
	}

	v, err := strconv.ParseUint(q.Get("seed"), 10, 64)
	if err != nil {
		return 0, domain.InvalidInputError{Field: "seed", Reason: "must be a non-negative integer"}
	}
	return v, nil
}
