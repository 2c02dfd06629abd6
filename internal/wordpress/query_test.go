package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostsQueryValues(t *testing.T) {
	tests := []struct {
		name     string
		query    PostsQuery
		expected map[string]string
		absent   []string
	}{
		{
			name:     "ZeroQuerySendsOnlyEmbed",
			query:    PostsQuery{},
			expected: map[string]string{"_embed": embedFields},
			absent:   []string{"page", "per_page", "categories", "tags", "author", "search", "orderby", "order", "slug", "exclude", "sticky"},
		},
		{
			name: "AllFiltersSet",
			query: PostsQuery{
				Page:       2,
				PerPage:    20,
				Categories: []int{3, 7},
				Tags:       []int{11},
				Author:     5,
				Search:     "bitcoin",
				OrderBy:    OrderByRelevance,
				Order:      OrderDesc,
				Exclude:    []int{42, 43},
			},
			expected: map[string]string{
				"_embed":     embedFields,
				"page":       "2",
				"per_page":   "20",
				"categories": "3,7",
				"tags":       "11",
				"author":     "5",
				"search":     "bitcoin",
				"orderby":    "relevance",
				"order":      "desc",
				"exclude":    "42,43",
			},
			absent: []string{"slug", "sticky"},
		},
		{
			name:     "StickyOnly",
			query:    PostsQuery{Sticky: true, PerPage: 5},
			expected: map[string]string{"_embed": embedFields, "sticky": "true", "per_page": "5"},
			absent:   []string{"page", "search"},
		},
		{
			name:     "SlugFilter",
			query:    PostsQuery{Slug: "market-rally"},
			expected: map[string]string{"_embed": embedFields, "slug": "market-rally"},
			absent:   []string{"page", "per_page"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.query.Values()

			for key, want := range tt.expected {
				assert.Equal(t, want, v.Get(key), "param %q", key)
			}
			for _, key := range tt.absent {
				assert.False(t, v.Has(key), "param %q should be omitted", key)
			}
		})
	}
}

func TestCategoriesQueryValues(t *testing.T) {
	t.Run("DefaultsHideEmpty", func(t *testing.T) {
		v := CategoriesQuery{}.Values()
		assert.Equal(t, "true", v.Get("hide_empty"))
		assert.Equal(t, "100", v.Get("per_page"))
		assert.False(t, v.Has("slug"))
	})

	t.Run("SlugLookupShowsEmpty", func(t *testing.T) {
		v := CategoriesQuery{Slug: "tech", ShowEmpty: true}.Values()
		assert.Equal(t, "tech", v.Get("slug"))
		assert.False(t, v.Has("hide_empty"))
	})

	t.Run("ParentFilter", func(t *testing.T) {
		parent := 0
		v := CategoriesQuery{Parent: &parent}.Values()
		assert.Equal(t, "0", v.Get("parent"))
	})
}

func TestUsersQueryValues(t *testing.T) {
	v := UsersQuery{Who: "authors"}.Values()
	assert.Equal(t, "authors", v.Get("who"))
	assert.Equal(t, "100", v.Get("per_page"))

	v = UsersQuery{Slug: "jane-doe"}.Values()
	assert.Equal(t, "jane-doe", v.Get("slug"))
	assert.False(t, v.Has("who"))
}
