package valz

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/soracane/valz/i18n"
)

// ErrorMap formats a human-readable message for an issue. The Message field
// of the issue passed in is not yet populated.
type ErrorMap func(Issue) string

var (
	errMapMu sync.RWMutex
	errMap   ErrorMap = DefaultErrorMap
)

// SetErrorMap replaces the process-wide error map. A nil map restores the
// built-in default.
func SetErrorMap(m ErrorMap) {
	if m == nil {
		m = DefaultErrorMap
	}
	errMapMu.Lock()
	errMap = m
	errMapMu.Unlock()
}

// CurrentErrorMap returns the process-wide error map.
func CurrentErrorMap() ErrorMap {
	errMapMu.RLock()
	defer errMapMu.RUnlock()
	return errMap
}

// ResetErrorMap restores the built-in default map. Tests that call
// SetErrorMap must reset between cases.
func ResetErrorMap() { SetErrorMap(DefaultErrorMap) }

// DefaultErrorMap resolves messages through the i18n translator using the
// issue's kind-specific details as template parameters.
func DefaultErrorMap(iss Issue) string {
	params := map[string]string{}
	if iss.Expected != "" {
		params["expected"] = iss.Expected
	}
	if iss.Received != "" {
		params["received"] = iss.Received
	}
	if iss.Min != nil {
		params["min"] = formatBound(*iss.Min)
	}
	if iss.Max != nil {
		params["max"] = formatBound(*iss.Max)
	}
	if len(iss.Options) > 0 {
		opts := make([]string, 0, len(iss.Options))
		for _, o := range iss.Options {
			opts = append(opts, fmt.Sprintf("%v", o))
		}
		params["options"] = strings.Join(opts, ", ")
	}
	if len(iss.Keys) > 0 {
		params["keys"] = strings.Join(iss.Keys, ", ")
	}
	if iss.Format != "" {
		params["format"] = iss.Format
	}
	return i18n.T(iss.Code, params)
}

func formatBound(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
