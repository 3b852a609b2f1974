// Package core implements the classification and cost-estimation engine.
package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/bluefalconink/chad/schema"
)

// ErrInvalidTimestamp is returned when a repo's last-push timestamp is
// missing or unparseable. A guessed date would silently classify the repo
// DEAD, so the error is surfaced instead.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// EvaluateStaleness converts a last-push timestamp into an age bucket
// relative to now. Pure function; the thresholds live in schema.
func EvaluateStaleness(pushedAt string, now time.Time) (schema.StalenessResult, error) {
	if pushedAt == "" {
		return schema.StalenessResult{}, fmt.Errorf("%w: empty pushed_at", ErrInvalidTimestamp)
	}

	lastPush, err := time.Parse(time.RFC3339, pushedAt)
	if err != nil {
		return schema.StalenessResult{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}

	days := int(now.Sub(lastPush).Hours() / 24)
	if days < 0 {
		days = 0 // clock skew: a push "from the future" is simply fresh
	}

	var status schema.StalenessStatus
	switch {
	case days > schema.DeadDays:
		status = schema.DeadStaleness
	case days > schema.StaleDays:
		status = schema.StaleStaleness
	case days > schema.DormantDays:
		status = schema.DormantStaleness
	default:
		status = schema.ActiveStaleness
	}

	return schema.StalenessResult{
		LastPush:       pushedAt,
		DaysSincePush:  days,
		Status:         status,
		Recommendation: schema.StalenessRecommendations[status],
	}, nil
}

// UnknownStaleness builds the placeholder result recorded for a repo whose
// timestamp failed to parse. Days are zero and the status is UNKNOWN; the
// repo is surfaced in the summary's timestamp_errors list.
func UnknownStaleness(pushedAt string) schema.StalenessResult {
	return schema.StalenessResult{
		LastPush:       pushedAt,
		DaysSincePush:  0,
		Status:         schema.UnknownStaleness,
		Recommendation: schema.StalenessRecommendations[schema.UnknownStaleness],
	}
}
