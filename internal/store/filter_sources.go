package store

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/parts-registry/models"
	sq "github.com/Masterminds/squirrel"
)

// sourceAlias qualifies predicate source columns so that the same table can
// appear both in the outer universe query and in the anti-join subquery.
const sourceAlias = "src"

// predicateSource is a table filter params may project entry ids from.
// Only the listed fields may appear in a criterion.
type predicateSource struct {
	table     string
	selection string
	fields    map[string]struct{}
}

func newPredicateSource(table, selection string, fields ...string) predicateSource {
	src := predicateSource{table: table, selection: selection, fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		src.fields[f] = struct{}{}
	}
	return src
}

// predicateSources is the whitelist of filter param roots, keyed by the
// params' From value.
var predicateSources = map[string]predicateSource{
	"entries": newPredicateSource("entries", "id",
		"name", "alias", "part_number", "owner_email", "creator_email", "status",
		"keywords", "short_description", "record_type", "bio_safety_level", "visibility"),
	"attachments":       newPredicateSource("attachments", "entry_id", "file_name", "description"),
	"samples":           newPredicateSource("samples", "entry_id", "label", "notes"),
	"sequences":         newPredicateSource("sequences", "entry_id", "format", "fwd_hash"),
	"selection_markers": newPredicateSource("selection_markers", "entry_id", "name"),
	"links":             newPredicateSource("links", "entry_id", "link", "url"),
	"parameters":        newPredicateSource("parameters", "entry_id", "key", "value"),
}

// lookupSource validates params against the whitelist.
func lookupSource(params models.QueryFilterParams) (predicateSource, error) {
	src, ok := predicateSources[params.From]
	if !ok {
		return predicateSource{}, fmt.Errorf("%w: unknown source %q", ErrInvalidPredicate, params.From)
	}
	if params.Selection != src.selection {
		return predicateSource{}, fmt.Errorf("%w: source %q cannot project %q", ErrInvalidPredicate, params.From, params.Selection)
	}
	return src, nil
}

func (src predicateSource) column(field string) (string, error) {
	if _, ok := src.fields[field]; !ok {
		return "", fmt.Errorf("%w: unknown field %q for source %q", ErrInvalidPredicate, field, src.table)
	}
	return sourceAlias + "." + field, nil
}

// from returns the aliased FROM clause of the source.
func (src predicateSource) from() string {
	return src.table + " AS " + sourceAlias
}

// idColumn returns the aliased id projection column.
func (src predicateSource) idColumn() string {
	return sourceAlias + "." + src.selection
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// compileExpression turns a criterion tree into a squirrel predicate whose
// values are always bound as parameters.
func (src predicateSource) compileExpression(expr models.Expression) (sq.Sqlizer, error) {
	if !expr.IsLeaf() {
		if len(expr.And) > 0 && len(expr.Or) > 0 {
			return nil, fmt.Errorf("%w: node mixes and/or children", ErrInvalidPredicate)
		}

		children := expr.And
		if len(expr.Or) > 0 {
			children = expr.Or
		}

		parts := make([]sq.Sqlizer, 0, len(children))
		for _, child := range children {
			part, err := src.compileExpression(child)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}

		if len(expr.Or) > 0 {
			return sq.Or(parts), nil
		}
		return sq.And(parts), nil
	}

	col, err := src.column(expr.Field)
	if err != nil {
		return nil, err
	}

	switch expr.Comparator {
	case models.CompareIsNull:
		return sq.Eq{col: nil}, nil
	case models.CompareNotNull:
		return sq.NotEq{col: nil}, nil
	}

	if expr.Value == nil {
		return nil, fmt.Errorf("%w: comparator %q on %q needs a value", ErrInvalidPredicate, expr.Comparator, expr.Field)
	}

	switch expr.Comparator {
	case models.CompareEqual:
		return sq.Eq{col: expr.Value}, nil
	case models.CompareNotEqual:
		return sq.NotEq{col: expr.Value}, nil
	case models.CompareContains:
		return sq.ILike{col: "%" + likeEscaper.Replace(fmt.Sprint(expr.Value)) + "%"}, nil
	case models.CompareNotContains:
		return sq.NotILike{col: "%" + likeEscaper.Replace(fmt.Sprint(expr.Value)) + "%"}, nil
	case models.CompareStartsWith:
		return sq.ILike{col: likeEscaper.Replace(fmt.Sprint(expr.Value)) + "%"}, nil
	case models.CompareGreaterThan:
		return sq.Gt{col: expr.Value}, nil
	case models.CompareGreaterOrEqual:
		return sq.GtOrEq{col: expr.Value}, nil
	case models.CompareLessThan:
		return sq.Lt{col: expr.Value}, nil
	case models.CompareLessOrEqual:
		return sq.LtOrEq{col: expr.Value}, nil
	case models.CompareIn:
		kind := reflect.ValueOf(expr.Value).Kind()
		if kind != reflect.Slice && kind != reflect.Array {
			return nil, fmt.Errorf("%w: comparator %q on %q needs a list", ErrInvalidPredicate, expr.Comparator, expr.Field)
		}
		return sq.Eq{col: expr.Value}, nil
	default:
		return nil, fmt.Errorf("%w: unknown comparator %q", ErrInvalidPredicate, expr.Comparator)
	}
}

// positiveQuery builds "SELECT DISTINCT src.<selection> FROM <table> AS src
// [WHERE criterion]".
func positiveQuery(params models.QueryFilterParams) (sq.SelectBuilder, error) {
	src, err := lookupSource(params)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	query := psql.Select(src.idColumn()).Distinct().From(src.from())
	if params.Criterion != nil {
		where, err := src.compileExpression(*params.Criterion)
		if err != nil {
			return sq.SelectBuilder{}, err
		}
		query = query.Where(where)
	}

	return query, nil
}

// complementQuery builds the anti-join of the entry universe against the
// positive predicate:
//
//	SELECT e.id FROM entries AS e
//	WHERE NOT EXISTS (SELECT 1 FROM <table> AS src WHERE src.<selection> = e.id [AND criterion])
func complementQuery(params models.QueryFilterParams) (sq.SelectBuilder, error) {
	src, err := lookupSource(params)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	sub := sq.Select("1").From(src.from()).Where(src.idColumn() + " = e.id")
	if params.Criterion != nil {
		where, err := src.compileExpression(*params.Criterion)
		if err != nil {
			return sq.SelectBuilder{}, err
		}
		sub = sub.Where(where)
	}

	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return sq.SelectBuilder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return psql.Select("e.id").
		From("entries AS e").
		Where(sq.Expr("NOT EXISTS ("+subSQL+")", subArgs...)).
		OrderBy("e.id"), nil
}
