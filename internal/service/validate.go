package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/model"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tag rules and reports the first failing field.
func validateStruct(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apierror.New(apierror.InvalidInput, "invalid input", err)
	}

	fe := verrs[0]
	return apierror.NewErrInvalidInput(fe.Field(), describeRule(fe))
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url", "startswith":
		return "must be an http(s) URL"
	default:
		return "is invalid"
	}
}

// parseID parses an identifier that already passed the uuid rule.
func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apierror.NewErrInvalidInput(field, "must be a valid UUID")
	}
	return id, nil
}

// parseOptionalID treats nil and "" as no value.
func parseOptionalID(field string, value *string) (*uuid.UUID, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	id, err := parseID(field, strings.TrimSpace(*value))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseMemberIDs parses and deduplicates member ids, keeping first-seen order.
func parseMemberIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	seen := make(map[uuid.UUID]struct{}, len(values))
	for i, v := range values {
		id, err := parseID(fmt.Sprintf("memberIds[%d]", i), v)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDeadline accepts a calendar date or an RFC 3339 timestamp and returns UTC.
// A calendar date maps to midnight UTC of that day.
func parseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, apierror.NewErrInvalidInput("deadline", "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}

// parseOptionalDeadline treats nil and "" as no deadline.
func parseOptionalDeadline(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseDeadline(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// normalizeTags trims every tag and drops empty ones. The result is never nil.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// storeError maps store sentinels to typed API errors. Anything else is wrapped as is.
func storeError(err error, resource, op string) error {
	switch {
	case errors.Is(err, model.ErrReferenceNotFound):
		return apierror.New(apierror.NotFound, fmt.Sprintf("%s references a missing user or project", resource), err)
	case errors.Is(err, model.ErrNotFound):
		return apierror.NewErrNotFound(resource, err)
	case errors.Is(err, model.ErrConflict):
		return apierror.NewErrConflict(fmt.Sprintf("%s conflicts with existing data", resource), err)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, resource, err)
	}
}
