package providers

import (
	"context"

	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	strs "proplink/pkg/platform/strings"
)

// matchText reports whether value satisfies a substring filter, ignoring
// case. An unset filter always matches. A set filter against an absent value
// matches only when lenient.
func matchText(value, filter string, lenient bool) bool {
	if filter == "" {
		return true
	}
	if value == "" {
		return lenient
	}
	return strs.ContainsFold(value, filter)
}

// matchAny is matchText over a list of values.
func matchAny(values []string, filter string) bool {
	if filter == "" {
		return true
	}
	for _, v := range values {
		if v != "" && strs.ContainsFold(v, filter) {
			return true
		}
	}
	return false
}

func notFound(msg string, params map[string]string) *dErrors.Error {
	details := make(map[string]any, len(params))
	for k, v := range params {
		details[k] = v
	}
	return dErrors.New(dErrors.CodeNotFound, msg).WithDetails(details)
}

const noPropertyMessage = "No property found with the provided details"

// single returns the lone match as an object and several matches as a list.
func single[T any](matches []T) any {
	if len(matches) == 1 {
		return matches[0]
	}
	return matches
}

// checkContext aborts a scan once the fetch deadline has passed.
func checkContext(ctx context.Context, source sources.Name) error {
	if err := ctx.Err(); err != nil {
		return contextError(source, err)
	}
	return nil
}
