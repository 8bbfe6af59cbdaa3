package postgres

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/studentportal/internal/pkg/query"
)

// likeEscaper escapes LIKE wildcards; backslash is the default escape character in PostgreSQL
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// sqlFilter renders a predicate as a WHERE clause. columns maps canonical field names to column names.
func sqlFilter(pred query.Predicate, columns map[string]string) (squirrel.Sqlizer, error) {
	switch p := pred.(type) {
	case nil:
		return squirrel.And{}, nil
	case query.And:
		children, err := sqlChildren(p, columns)
		if err != nil {
			return nil, err
		}
		return squirrel.And(children), nil
	case query.Or:
		children, err := sqlChildren(p, columns)
		if err != nil {
			return nil, err
		}
		return squirrel.Or(children), nil
	case query.Eq:
		col, err := column(columns, p.Field)
		if err != nil {
			return nil, err
		}
		return squirrel.Eq{col: p.Value}, nil
	case query.Ne:
		col, err := column(columns, p.Field)
		if err != nil {
			return nil, err
		}
		return squirrel.Or{squirrel.NotEq{col: p.Value}, squirrel.Eq{col: nil}}, nil
	case query.ContainsFold:
		col, err := column(columns, p.Field)
		if err != nil {
			return nil, err
		}
		return squirrel.ILike{col: "%" + likeEscaper.Replace(p.Substr) + "%"}, nil
	default:
		return nil, fmt.Errorf("unsupported predicate %T", pred)
	}
}

func sqlChildren(preds []query.Predicate, columns map[string]string) ([]squirrel.Sqlizer, error) {
	children := make([]squirrel.Sqlizer, 0, len(preds))
	for _, child := range preds {
		s, err := sqlFilter(child, columns)
		if err != nil {
			return nil, err
		}
		children = append(children, s)
	}
	return children, nil
}

// sqlOrderBy renders a sort order for SelectBuilder.OrderBy
func sqlOrderBy(order query.Sort, columns map[string]string) ([]string, error) {
	if order.Field == "" {
		return nil, nil
	}
	col, err := column(columns, order.Field)
	if err != nil {
		return nil, err
	}
	if order.Descending {
		return []string{col + " DESC"}, nil
	}
	return []string{col + " ASC"}, nil
}

func column(columns map[string]string, field string) (string, error) {
	col, ok := columns[field]
	if !ok {
		return "", fmt.Errorf("unknown field %q", field)
	}
	return col, nil
}
