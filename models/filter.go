package models

// QueryOperator is the operator a [QueryFilter] applies to its operand.
// Only [OperatorBoolean] evaluates a universe complement; every other
// operator unions the predicate sets of the filter's params.
type QueryOperator string

const (
	OperatorBoolean        QueryOperator = "BOOLEAN"
	OperatorEquals         QueryOperator = "EQUALS"
	OperatorNotEquals      QueryOperator = "NOT_EQUALS"
	OperatorContains       QueryOperator = "CONTAINS"
	OperatorDoesNotContain QueryOperator = "DOES_NOT_CONTAIN"
	OperatorStartsWith     QueryOperator = "STARTS_WITH"
	OperatorGreaterThan    QueryOperator = "GREATER_THAN"
	OperatorLessThan       QueryOperator = "LESS_THAN"
)

// Known reports whether op is a supported operator.
func (op QueryOperator) Known() bool {
	switch op {
	case OperatorBoolean, OperatorEquals, OperatorNotEquals, OperatorContains,
		OperatorDoesNotContain, OperatorStartsWith, OperatorGreaterThan, OperatorLessThan:
		return true
	}
	return false
}

// SearchFilterType names the attribute or association a filter tests.
type SearchFilterType string

const (
	FilterHasAttachment   SearchFilterType = "HAS_ATTACHMENT"
	FilterHasSample       SearchFilterType = "HAS_SAMPLE"
	FilterHasSequence     SearchFilterType = "HAS_SEQUENCE"
	FilterNameOrAlias     SearchFilterType = "NAME_OR_ALIAS"
	FilterPartID          SearchFilterType = "PART_ID"
	FilterOwner           SearchFilterType = "OWNER"
	FilterCreator         SearchFilterType = "CREATOR"
	FilterStatus          SearchFilterType = "STATUS"
	FilterKeywords        SearchFilterType = "KEYWORDS"
	FilterSummary         SearchFilterType = "SUMMARY"
	FilterEntryType       SearchFilterType = "ENTRY_TYPE"
	FilterBioSafetyLevel  SearchFilterType = "BIO_SAFETY_LEVEL"
	FilterSelectionMarker SearchFilterType = "SELECTION_MARKER"
	// FilterCustom carries caller-built params and has no default mapping.
	FilterCustom SearchFilterType = "CUSTOM"
)

// QueryFilter is one atomic filter criterion. When Params is empty the
// params are derived from SearchType, Operator and Operand.
type QueryFilter struct {
	SearchType SearchFilterType    `json:"type"`
	Operator   QueryOperator       `json:"operator" validate:"required,query_operator"`
	Operand    string              `json:"operand"`
	Params     []QueryFilterParams `json:"params,omitempty" validate:"dive"`
}

// QueryFilterParams is a single predicate path: the distinct Selection
// column of the From source, optionally restricted by Criterion.
type QueryFilterParams struct {
	Selection string      `json:"selection" validate:"required"`
	From      string      `json:"from" validate:"required"`
	Criterion *Expression `json:"criterion,omitempty"`
}

// Comparator is the comparison a leaf [Expression] performs.
type Comparator string

const (
	CompareEqual          Comparator = "eq"
	CompareNotEqual       Comparator = "neq"
	CompareContains       Comparator = "contains"
	CompareNotContains    Comparator = "not_contains"
	CompareStartsWith     Comparator = "starts_with"
	CompareGreaterThan    Comparator = "gt"
	CompareGreaterOrEqual Comparator = "gte"
	CompareLessThan       Comparator = "lt"
	CompareLessOrEqual    Comparator = "lte"
	CompareIn             Comparator = "in"
	CompareIsNull         Comparator = "is_null"
	CompareNotNull        Comparator = "not_null"
)

// Expression is a typed predicate tree scoped to one predicate source.
// A node is either a leaf (Field, Comparator, Value) or a composite with
// And or Or children; a composite node ignores its leaf fields.
type Expression struct {
	Field      string       `json:"field,omitempty"`
	Comparator Comparator   `json:"cmp,omitempty"`
	Value      any          `json:"value,omitempty"`
	And        []Expression `json:"and,omitempty"`
	Or         []Expression `json:"or,omitempty"`
}

// IsLeaf reports whether e is a single comparison.
func (e Expression) IsLeaf() bool {
	return len(e.And) == 0 && len(e.Or) == 0
}

// Leaf builds a single-comparison expression.
func Leaf(field string, cmp Comparator, value any) *Expression {
	return &Expression{Field: field, Comparator: cmp, Value: value}
}
