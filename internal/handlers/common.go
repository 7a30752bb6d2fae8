package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// page is the list envelope: total count plus absolute next/previous URLs.
type page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func pageParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func newPage(c echo.Context, count int64, limit, offset int, results interface{}) page {
	p := page{Count: count, Results: results}
	if int64(offset+limit) < count {
		p.Next = pageURL(c, limit, offset+limit)
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		p.Previous = pageURL(c, limit, prev)
	}
	return p
}

func pageURL(c echo.Context, limit, offset int) *string {
	u := *c.Request().URL
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

// parseID parses a numeric path parameter. A non-numeric id can never name
// a resource, so it maps to NotFound rather than a validation failure.
func parseID(c echo.Context, name, what string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.NotFound(what + " not found")
	}
	return uint(v), nil
}
