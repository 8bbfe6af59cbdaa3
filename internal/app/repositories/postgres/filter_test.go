package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentportal/internal/pkg/query"
)

func TestSQLFilter_EmptyMatchesAll(t *testing.T) {
	where, err := sqlFilter(query.Build(query.Params{}), studentColumns)
	require.NoError(t, err)

	sql, args, err := where.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(1=1)", sql)
	assert.Empty(t, args)
}

func TestSQLFilter_StudentList(t *testing.T) {
	pred := query.Build(query.Params{
		Equals:       []query.Condition{{Field: "status", Value: "Pending"}},
		Exclude:      []query.Condition{{Field: "disabled", Value: true}},
		Search:       "50%_off",
		SearchFields: []string{"fullName", "nic"},
	})

	where, err := sqlFilter(pred, studentColumns)
	require.NoError(t, err)

	sql, args, err := where.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"((disabled <> ? OR disabled IS NULL) AND status = ? AND (full_name ILIKE ? OR nic ILIKE ?))",
		sql)
	assert.Equal(t, []interface{}{true, "Pending", `%50\%\_off%`, `%50\%\_off%`}, args)
}

func TestSQLFilter_DollarPlaceholders(t *testing.T) {
	where, err := sqlFilter(query.And{query.Eq{Field: "status", Value: "Approved"}}, studentColumns)
	require.NoError(t, err)

	sql, args, err := statementBuilder.Select("id").From("students").Where(where).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM students WHERE (status = $1)", sql)
	assert.Equal(t, []interface{}{"Approved"}, args)
}

func TestSQLFilter_EmptyOrMatchesNothing(t *testing.T) {
	where, err := sqlFilter(query.Or{}, studentColumns)
	require.NoError(t, err)

	sql, _, err := where.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(1=0)", sql)
}

func TestSQLFilter_UnknownField(t *testing.T) {
	_, err := sqlFilter(query.Eq{Field: "password", Value: "x"}, studentColumns)
	assert.Error(t, err)
}

func TestSQLOrderBy(t *testing.T) {
	orderBy, err := sqlOrderBy(query.Sort{Field: "appliedDate", Descending: true}, studentColumns)
	require.NoError(t, err)
	assert.Equal(t, []string{"applied_date DESC"}, orderBy)

	orderBy, err = sqlOrderBy(query.Sort{Field: "uploadDate"}, certificateColumns)
	require.NoError(t, err)
	assert.Equal(t, []string{"upload_date ASC"}, orderBy)

	orderBy, err = sqlOrderBy(query.Sort{}, studentColumns)
	require.NoError(t, err)
	assert.Nil(t, orderBy)
}
