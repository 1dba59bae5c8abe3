package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultRangeDays = 30

// parseTimeParam accepts RFC3339 or a bare YYYY-MM-DD date. The zero
// time is returned when the parameter is absent.
func parseTimeParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid %s format, use RFC3339 or YYYY-MM-DD", name)
}

// parseRange reads from/to query parameters, defaulting to the last 30
// days ending now. The range is half-open: [from, to).
func parseRange(c *gin.Context) (from, to time.Time, err error) {
	from, err = parseTimeParam(c, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = parseTimeParam(c, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultRangeDays)
	}

	return from, to, nil
}

// anchorTime reads the optional "date" parameter used by the dashboard
// and review endpoints, falling back to now.
func anchorTime(c *gin.Context) (time.Time, error) {
	t, err := parseTimeParam(c, "date")
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t, nil
}
