package shortcut_test

import (
	"testing"

	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
	"github.com/stretchr/testify/assert"
)

func Test_BuildSearchQuery(t *testing.T) {
	me := &shortcut.Member{ID: "user1", Name: "Test User", MentionName: "testuser"}
	id := int64(42)
	emptyID := (*int64)(nil)
	name := "Sprint 1"
	yes := true

	tcases := []struct {
		name  string
		terms []shortcut.SearchTerm
		user  *shortcut.Member
		exp   string
	}{
		{
			name: "empty",
			exp:  "",
		},
		{
			name: "strings",
			terms: []shortcut.SearchTerm{
				{Key: "name", Value: "alpha"},
				{Key: "description", Value: "has spaces"},
				{Key: "team", Value: ""},
			},
			exp: `name:alpha description:"has spaces"`,
		},
		{
			name: "snake case keys",
			terms: []shortcut.SearchTerm{
				{Key: "startDate", Value: "2023-01-01"},
				{Key: "endDate", Value: "2023-01-14"},
			},
			exp: "start_date:2023-01-01 end_date:2023-01-14",
		},
		{
			name: "pointers",
			terms: []shortcut.SearchTerm{
				{Key: "id", Value: &id},
				{Key: "id", Value: emptyID},
				{Key: "name", Value: &name},
			},
			exp: `id:42 name:"Sprint 1"`,
		},
		{
			name: "booleans and prefixes",
			terms: []shortcut.SearchTerm{
				{Key: "isArchived", Value: false},
				{Key: "hasOwner", Value: &yes},
				{Key: "issue", Value: "x"},
			},
			exp: "!is:archived has:owner issue:x",
		},
		{
			name: "numbers",
			terms: []shortcut.SearchTerm{
				{Key: "estimate", Value: 3},
				{Key: "ratio", Value: 0.5},
			},
			exp: "estimate:3 ratio:0.5",
		},
		{
			name: "identity me",
			terms: []shortcut.SearchTerm{
				{Key: "owner", Value: "me"},
				{Key: "requester", Value: "@jane"},
			},
			user: me,
			exp:  "owner:testuser requester:jane",
		},
		{
			name: "identity me without user",
			terms: []shortcut.SearchTerm{
				{Key: "owner", Value: "me"},
			},
			exp: "owner:me",
		},
		{
			name: "nil value",
			terms: []shortcut.SearchTerm{
				{Key: "name", Value: nil},
				{Key: "", Value: "orphan"},
			},
			exp: "",
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, shortcut.BuildSearchQuery(tc.terms, tc.user))
		})
	}
}
