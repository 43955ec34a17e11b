package controller

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

var errInvalidQuery = errors.New("invalid query")

func wantsPagination(q url.Values) bool {
	return q.Has("page") || q.Has("page_size")
}

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page = defaultPage
	pageSize = defaultPageSize

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: unable to parse page: %w", errInvalidQuery, err)
		}
		if p < 1 {
			return 0, 0, fmt.Errorf("%w: invalid page value [%d]", errInvalidQuery, p)
		}
		page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: unable to parse page size: %w", errInvalidQuery, err)
		}
		if ps > maxPageSize {
			return 0, 0, fmt.Errorf("%w: page size [%d] exceeds limit [%d]", errInvalidQuery, ps, maxPageSize)
		}
		if ps < 1 {
			return 0, 0, fmt.Errorf("%w: invalid page size value [%d]", errInvalidQuery, ps)
		}
		pageSize = int(ps)
	}

	return page, pageSize, nil
}

// pageOf returns the 1-indexed page of items, empty past the end.
func pageOf[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
