package dsl

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	valz "github.com/soracane/valz"
)

// Format labels attached by the built-in format presets and recognized by
// the JSON Schema bridge.
const (
	FormatEmail    = "email"
	FormatUUID     = "uuid"
	FormatDate     = "date"
	FormatDateTime = "date-time"
)

// emailPattern is the preset behind Email. It checks the common
// local@domain.tld shape without attempting full RFC 5322 coverage.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// StringCheck is a named custom predicate with its own failure message.
// Checks run after the built-in constraints, in registration order.
type StringCheck struct {
	Name    string
	Fn      func(string) bool
	Message string
}

// StringSchema validates textual values. The zero configuration accepts any
// string. Length bounds are counted in runes.
type StringSchema struct {
	minLen  *int
	maxLen  *int
	pattern *regexp.Regexp
	format  string
	checks  []StringCheck
	msg     string
}

// String returns a strict string schema.
func String() *StringSchema { return &StringSchema{} }

func (s *StringSchema) clone() *StringSchema {
	c := *s
	c.checks = append([]StringCheck(nil), s.checks...)
	return &c
}

// Min sets the inclusive minimum length. Last write wins.
func (s *StringSchema) Min(n int) *StringSchema {
	c := s.clone()
	c.minLen = &n
	return c
}

// Max sets the inclusive maximum length. Last write wins.
func (s *StringSchema) Max(n int) *StringSchema {
	c := s.clone()
	c.maxLen = &n
	return c
}

// Length constrains the value to exactly n runes (min = max = n).
func (s *StringSchema) Length(n int) *StringSchema {
	c := s.clone()
	c.minLen = &n
	c.maxLen = &n
	return c
}

// Pattern constrains the value to match expr. It panics on an invalid
// expression, which is a schema-definition-time bug.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	c := s.clone()
	c.pattern = regexp.MustCompile(expr)
	return c
}

// Email applies the mail-address pattern preset and tags the schema with the
// "email" format label.
func (s *StringSchema) Email() *StringSchema {
	c := s.clone()
	c.pattern = emailPattern
	c.format = FormatEmail
	return c
}

// UUID constrains the value to the canonical UUID text form and tags the
// schema with the "uuid" format label.
func (s *StringSchema) UUID() *StringSchema {
	c := s.clone()
	c.format = FormatUUID
	return c
}

// Date constrains the value to an ISO 8601 calendar date (2006-01-02).
func (s *StringSchema) Date() *StringSchema {
	c := s.clone()
	c.format = FormatDate
	return c
}

// DateTime constrains the value to an RFC 3339 date-time.
func (s *StringSchema) DateTime() *StringSchema {
	c := s.clone()
	c.format = FormatDateTime
	return c
}

// Check registers a named custom predicate with its own failure message.
func (s *StringSchema) Check(name string, fn func(string) bool, message string) *StringSchema {
	c := s.clone()
	c.checks = append(c.checks, StringCheck{Name: name, Fn: fn, Message: message})
	return c
}

// Message sets a per-node message override for issues this schema reports.
func (s *StringSchema) Message(msg string) *StringSchema {
	c := s.clone()
	c.msg = msg
	return c
}

// ---- configuration views (read by the JSON Schema bridge) ----

// MinLen reports the minimum length bound.
func (s *StringSchema) MinLen() (int, bool) {
	if s.minLen == nil {
		return 0, false
	}
	return *s.minLen, true
}

// MaxLen reports the maximum length bound.
func (s *StringSchema) MaxLen() (int, bool) {
	if s.maxLen == nil {
		return 0, false
	}
	return *s.maxLen, true
}

// PatternString reports the configured pattern, or "" when unset.
func (s *StringSchema) PatternString() string {
	if s.pattern == nil {
		return ""
	}
	return s.pattern.String()
}

// Format reports the format label, or "" when unset.
func (s *StringSchema) Format() string { return s.format }

// Checks returns the registered custom predicates.
func (s *StringSchema) Checks() []StringCheck {
	return append([]StringCheck(nil), s.checks...)
}

func (s *StringSchema) Kind() valz.Kind { return valz.KindString }

func (s *StringSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	sv, ok := v.(string)
	if !ok {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "string",
			Received: valz.TypeName(v),
		}, s.msg)}
	}
	n := utf8.RuneCountInString(sv)
	if s.minLen != nil && n < *s.minLen {
		min := float64(*s.minLen)
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:      valz.CodeTooSmall,
			Min:       &min,
			Inclusive: true,
			Received:  "string",
		}, s.msg)}
	}
	if s.maxLen != nil && n > *s.maxLen {
		max := float64(*s.maxLen)
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:      valz.CodeTooBig,
			Max:       &max,
			Inclusive: true,
			Received:  "string",
		}, s.msg)}
	}
	if s.pattern != nil && !s.pattern.MatchString(sv) {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:   valz.CodeInvalidString,
			Format: s.format,
		}, s.msg)}
	}
	if !s.formatOK(sv) {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:   valz.CodeInvalidString,
			Format: s.format,
		}, s.msg)}
	}
	for _, ck := range s.checks {
		if !ck.Fn(sv) {
			msg := ck.Message
			if msg == "" {
				msg = s.msg
			}
			return nil, valz.Issues{ctx.NewIssue(valz.Issue{
				Code:   valz.CodeCustom,
				Format: ck.Name,
			}, msg)}
		}
	}
	return sv, nil
}

// formatOK runs the non-pattern format presets. Email is pattern-backed and
// already handled above.
func (s *StringSchema) formatOK(sv string) bool {
	switch s.format {
	case FormatUUID:
		return uuid.Validate(sv) == nil
	case FormatDate:
		_, err := time.Parse("2006-01-02", sv)
		return err == nil
	case FormatDateTime:
		_, err := time.Parse(time.RFC3339, sv)
		return err == nil
	default:
		return true
	}
}
