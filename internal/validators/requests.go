package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/parts-registry/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of a request.
const (
	// FieldSelection targets the selection descriptor of a request.
	FieldSelection = "selection"

	// FieldFilters targets the filter pipeline of a request.
	FieldFilters = "filters"

	// FieldVisibility targets the requested visibility of a visibility update.
	FieldVisibility = "visibility"
)

// RequestValidator validates the request bodies of the entry selection
// endpoints. Struct tags are checked by go-playground/validator with the
// registry's custom tags (entry_type, query_operator, visibility); rules that
// span several fields are checked by hand.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = validate.RegisterValidation("entry_type", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseEntryType(fl.Field().String())
		return ok
	})
	_ = validate.RegisterValidation("query_operator", func(fl validator.FieldLevel) bool {
		return models.QueryOperator(fl.Field().String()).Known()
	})
	_ = validate.RegisterValidation("visibility", func(fl validator.FieldLevel) bool {
		return models.Visibility(fl.Field().Int()).IsKnown()
	})

	return &RequestValidator{validate: validate}
}

// Validate dispatches validation on the dynamic type of obj. Both value and
// pointer forms of each request are accepted.
//
// Supported types:
//   - models.SelectionRequest
//   - models.VisibilityRequest
//   - models.FilterRequest
//   - models.SelectionContext
//   - models.QueryFilter
//
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SelectionRequest:
		return v.validateSelectionRequest(ctx, value, fields...)
	case *models.SelectionRequest:
		return v.validateSelectionRequest(ctx, *value, fields...)

	case models.VisibilityRequest:
		return v.validateVisibilityRequest(ctx, value, fields...)
	case *models.VisibilityRequest:
		return v.validateVisibilityRequest(ctx, *value, fields...)

	case models.FilterRequest:
		return v.validateFilters(ctx, value.Filters)
	case *models.FilterRequest:
		return v.validateFilters(ctx, value.Filters)

	case models.SelectionContext:
		return v.validateSelection(ctx, value)
	case *models.SelectionContext:
		return v.validateSelection(ctx, *value)

	case models.QueryFilter:
		return v.validateFilter(ctx, value)
	case *models.QueryFilter:
		return v.validateFilter(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSelectionRequest(ctx context.Context, req models.SelectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSelection, FieldFilters}
	}

	for _, f := range fields {
		switch f {
		case FieldSelection:
			if err := v.validateSelection(ctx, req.Selection); err != nil {
				return err
			}
		case FieldFilters:
			if err := v.validateFilters(ctx, req.Filters); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateVisibilityRequest(ctx context.Context, req models.VisibilityRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSelection, FieldFilters, FieldVisibility}
	}

	var selectionFields []string
	for _, f := range fields {
		if f != FieldVisibility {
			selectionFields = append(selectionFields, f)
			continue
		}
		if err := v.validate.VarCtx(ctx, req.Visibility, "visibility"); err != nil {
			return fmt.Errorf("%w: %d", ErrInvalidVisibility, req.Visibility)
		}
	}

	if len(selectionFields) == 0 {
		return nil
	}
	return v.validateSelectionRequest(ctx, req.SelectionRequest, selectionFields...)
}

func (v *RequestValidator) validateSelection(ctx context.Context, sel models.SelectionContext) error {
	if err := v.structCtx(ctx, sel); err != nil {
		return err
	}

	if sel.HasExplicitEntries() {
		for _, id := range sel.Entries {
			if id <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidEntryID, id)
			}
		}
		return nil
	}

	switch sel.Kind {
	case models.SelectionFolder:
		if strings.TrimSpace(sel.FolderID) == "" {
			return ErrMissingFolderID
		}
	case models.SelectionSearch:
		if sel.SearchQuery == nil {
			return ErrMissingSearchQuery
		}
	}

	return nil
}

func (v *RequestValidator) validateFilters(ctx context.Context, filters []models.QueryFilter) error {
	for i, f := range filters {
		if err := v.validateFilter(ctx, f); err != nil {
			return fmt.Errorf("filter #%d: %w", i, err)
		}
	}
	return nil
}

func (v *RequestValidator) validateFilter(ctx context.Context, f models.QueryFilter) error {
	if err := v.structCtx(ctx, f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	if len(f.Params) == 0 && f.SearchType == "" {
		return fmt.Errorf("%w: either a type or params are required", ErrInvalidFilter)
	}
	return nil
}

// structCtx runs the tag rules on s and flattens validator.ValidationErrors
// into a single ErrInvalidRequest naming every failed field.
func (v *RequestValidator) structCtx(ctx context.Context, s any) error {
	err := v.validate.StructCtx(ctx, s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	failed := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		failed = append(failed, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(failed, "; "))
}
