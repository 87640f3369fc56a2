package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/parts-registry/models"
)

// attributeFilter maps a filter type onto a column of a predicate source.
type attributeFilter struct {
	from      string
	selection string
	fields    []string
	parse     func(operand string) (any, error)
}

// existenceFilters test whether an entry has at least one associated row.
var existenceFilters = map[models.SearchFilterType]string{
	models.FilterHasAttachment: "attachments",
	models.FilterHasSample:     "samples",
	models.FilterHasSequence:   "sequences",
}

var attributeFilters = map[models.SearchFilterType]attributeFilter{
	models.FilterNameOrAlias:     {from: "entries", selection: "id", fields: []string{"name", "alias"}},
	models.FilterPartID:          {from: "entries", selection: "id", fields: []string{"part_number"}},
	models.FilterOwner:           {from: "entries", selection: "id", fields: []string{"owner_email"}},
	models.FilterCreator:         {from: "entries", selection: "id", fields: []string{"creator_email"}},
	models.FilterStatus:          {from: "entries", selection: "id", fields: []string{"status"}},
	models.FilterKeywords:        {from: "entries", selection: "id", fields: []string{"keywords"}},
	models.FilterSummary:         {from: "entries", selection: "id", fields: []string{"short_description"}},
	models.FilterEntryType:       {from: "entries", selection: "id", fields: []string{"record_type"}, parse: parseEntryTypeOperand},
	models.FilterBioSafetyLevel:  {from: "entries", selection: "id", fields: []string{"bio_safety_level"}, parse: parseIntOperand},
	models.FilterSelectionMarker: {from: "selection_markers", selection: "entry_id", fields: []string{"name"}},
}

var operatorComparators = map[models.QueryOperator]models.Comparator{
	models.OperatorEquals:         models.CompareEqual,
	models.OperatorNotEquals:      models.CompareNotEqual,
	models.OperatorContains:       models.CompareContains,
	models.OperatorDoesNotContain: models.CompareNotContains,
	models.OperatorStartsWith:     models.CompareStartsWith,
	models.OperatorGreaterThan:    models.CompareGreaterThan,
	models.OperatorLessThan:       models.CompareLessThan,
}

// filterParams derives the predicate paths of a filter that arrived without
// explicit params.
//
// Existence filters only accept the BOOLEAN operator. A BOOLEAN attribute
// filter tests whether the column holds a value; any other operator compares
// the column against the operand. Filters over several columns yield one
// param per column, which the evaluator unions.
func filterParams(filter models.QueryFilter) ([]models.QueryFilterParams, error) {
	if from, ok := existenceFilters[filter.SearchType]; ok {
		if filter.Operator != models.OperatorBoolean {
			return nil, fmt.Errorf("%w: %s only supports the %s operator", ErrInvalidArgument, filter.SearchType, models.OperatorBoolean)
		}
		return []models.QueryFilterParams{{Selection: "entry_id", From: from}}, nil
	}

	attr, ok := attributeFilters[filter.SearchType]
	if !ok {
		return nil, fmt.Errorf("%w: filter type %q has no params", ErrInvalidArgument, filter.SearchType)
	}

	params := make([]models.QueryFilterParams, 0, len(attr.fields))

	if filter.Operator == models.OperatorBoolean {
		for _, field := range attr.fields {
			params = append(params, models.QueryFilterParams{
				Selection: attr.selection,
				From:      attr.from,
				Criterion: models.Leaf(field, models.CompareNotNull, nil),
			})
		}
		return params, nil
	}

	cmp, ok := operatorComparators[filter.Operator]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported operator %q", ErrInvalidArgument, filter.Operator)
	}

	var value any = filter.Operand
	if attr.parse != nil {
		parsed, err := attr.parse(filter.Operand)
		if err != nil {
			return nil, fmt.Errorf("%w: %s operand: %w", ErrInvalidArgument, filter.SearchType, err)
		}
		value = parsed
	}

	for _, field := range attr.fields {
		params = append(params, models.QueryFilterParams{
			Selection: attr.selection,
			From:      attr.from,
			Criterion: models.Leaf(field, cmp, value),
		})
	}

	return params, nil
}

func parseEntryTypeOperand(operand string) (any, error) {
	entryType, ok := models.ParseEntryType(operand)
	if !ok {
		return nil, fmt.Errorf("unknown entry type %q", operand)
	}
	return string(entryType), nil
}

func parseIntOperand(operand string) (any, error) {
	return strconv.Atoi(strings.TrimSpace(operand))
}
