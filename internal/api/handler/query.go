package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/scope"
)

const dateLayout = "2006-01-02"

// filterFromQuery parses the shared stats query parameters
// (scope, player_id, hand, date_from, date_to) into a scope.Filter.
// Scope validation itself happens in scope.Resolve; this only rejects
// dates that do not parse.
func filterFromQuery(r *http.Request) (scope.Filter, error) {
	q := r.URL.Query()

	f := scope.Filter{
		Scope:    scope.Scope(q.Get("scope")),
		PlayerID: model.PlayerID(q.Get("player_id")),
		Hand:     q.Get("hand"),
	}

	if raw := q.Get("date_from"); raw != "" {
		from, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return scope.Filter{}, NewInvalidRequestError("date_from must be formatted as YYYY-MM-DD")
		}
		f.From = from
	}
	if raw := q.Get("date_to"); raw != "" {
		to, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return scope.Filter{}, NewInvalidRequestError("date_to must be formatted as YYYY-MM-DD")
		}
		f.To = to
	}

	return f, nil
}

// limitFromQuery parses an optional positive limit parameter,
// returning def when absent.
func limitFromQuery(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, NewInvalidRequestError("limit must be a positive integer")
	}
	return limit, nil
}
