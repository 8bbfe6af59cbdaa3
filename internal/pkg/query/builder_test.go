package query

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type record map[string]interface{}

func (r record) Field(name string) (interface{}, bool) {
	v, ok := r[name]
	return v, ok
}

var searchFields = []string{"fullName", "selectedCourse", "preferredStudyCenter", "nic", "email"}

func TestBuild_EmptyMatchesAll(t *testing.T) {
	pred := Build(Params{})
	assert.Equal(t, And{}, pred)
	assert.True(t, pred.Match(record{}))
	assert.True(t, pred.Match(record{"status": "Rejected", "disabled": true}))
}

func TestBuild_SkipsAbsentParameters(t *testing.T) {
	pred := Build(Params{
		Equals:       []Condition{{Field: "status", Value: ""}, {Field: "nic", Value: nil}},
		Exclude:      []Condition{{Field: "disabled", Value: nil}},
		Search:       "   ",
		SearchFields: searchFields,
	})
	assert.Equal(t, And{}, pred)
}

func TestBuild_Structure(t *testing.T) {
	pred := Build(Params{
		Equals:       []Condition{{Field: "status", Value: "Pending"}},
		Exclude:      []Condition{{Field: "disabled", Value: true}},
		Search:       " alice ",
		SearchFields: []string{"fullName", "email"},
	})

	want := And{
		Ne{Field: "disabled", Value: true},
		Eq{Field: "status", Value: "Pending"},
		Or{
			ContainsFold{Field: "fullName", Substr: "alice"},
			ContainsFold{Field: "email", Substr: "alice"},
		},
	}
	assert.Equal(t, want, pred)
}

func TestPredicate_Match(t *testing.T) {
	alice := record{"fullName": "Alice Perera", "selectedCourse": "Nursing", "preferredStudyCenter": "Kandy",
		"nic": "991234567V", "email": "ap@example.com", "status": "Pending", "disabled": false}
	bob := record{"fullName": "Bob", "selectedCourse": "Web Development", "preferredStudyCenter": "Colombo",
		"nic": "ALICE-01", "email": "bob@example.com", "status": "Approved", "disabled": true}
	carol := record{"fullName": "Carol", "selectedCourse": "Accounting", "preferredStudyCenter": "Galle",
		"nic": "200012345678", "email": "carol@alice.org", "status": "Pending"}

	tests := []struct {
		name   string
		params Params
		want   []bool
	}{
		{
			name:   "status equality",
			params: Params{Equals: []Condition{{Field: "status", Value: "Pending"}}},
			want:   []bool{true, false, true},
		},
		{
			name:   "exclude disabled treats missing field as not disabled",
			params: Params{Exclude: []Condition{{Field: "disabled", Value: true}}},
			want:   []bool{true, false, true},
		},
		{
			name:   "search is a case-insensitive OR across fields",
			params: Params{Search: "ALICE", SearchFields: searchFields},
			want:   []bool{true, true, true},
		},
		{
			name:   "search term is literal",
			params: Params{Search: "a.*", SearchFields: searchFields},
			want:   []bool{false, false, false},
		},
		{
			name: "search ANDs with status",
			params: Params{
				Equals:       []Condition{{Field: "status", Value: "Pending"}},
				Search:       "colombo",
				SearchFields: searchFields,
			},
			want: []bool{false, false, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := Build(tt.params)
			got := []bool{pred.Match(alice), pred.Match(bob), pred.Match(carol)}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPredicate_EmptyOrMatchesNothing(t *testing.T) {
	assert.False(t, Or{}.Match(record{"a": "b"}))
}

func TestEq_Time(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	pred := Eq{Field: "appliedDate", Value: ts.In(time.FixedZone("x", 3600))}
	assert.True(t, pred.Match(record{"appliedDate": ts}))
}

func TestSort_Less(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []record{
		{"id": "a", "appliedDate": base},
		{"id": "b", "appliedDate": base.Add(2 * time.Hour)},
		{"id": "c"},
		{"id": "d", "appliedDate": base.Add(time.Hour)},
	}

	s := Sort{Field: "appliedDate", Descending: true}
	sort.SliceStable(records, func(i, j int) bool { return s.Less(records[i], records[j]) })

	var ids []string
	for _, r := range records {
		ids = append(ids, r["id"].(string))
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}
