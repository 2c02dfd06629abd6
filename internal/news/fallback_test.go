package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCorpusShape(t *testing.T) {
	f := NewFallback()

	categories := f.Categories()
	require.Len(t, categories, 6)

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Business", "Technology", "Crypto", "Sports", "Entertainment", "Politics"}, names)

	all := f.Articles(1, 100)
	require.Len(t, all.Data, 60)
	assert.Equal(t, 60, all.Pagination.TotalItems)

	perCategory := map[string]int{}
	for _, a := range all.Data {
		perCategory[a.Category.Slug]++
		assert.Equal(t, StatusPublished, a.Status)
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.FeaturedImage)
		assert.GreaterOrEqual(t, a.ReadTime, 3)
		assert.GreaterOrEqual(t, a.Views, 500)
	}
	for _, c := range categories {
		assert.Equal(t, 10, perCategory[c.Slug], "category %s", c.Slug)
	}
}

func TestFallbackFeatured(t *testing.T) {
	f := NewFallback()

	featured := f.Featured(6)
	require.Len(t, featured, 6)

	// One flagship per category, in category order.
	for i, a := range featured {
		assert.Equal(t, f.Categories()[i].Slug, a.Category.Slug)
	}

	assert.Len(t, f.Featured(0), DefaultFeaturedLimit)
	assert.Len(t, f.Featured(3), 3)
}

func TestFallbackTrendingSortedByViews(t *testing.T) {
	f := NewFallback()

	trending := f.Trending(0)
	require.Len(t, trending, DefaultTrendingLimit)
	for i := 1; i < len(trending); i++ {
		assert.GreaterOrEqual(t, trending[i-1].Views, trending[i].Views)
	}
}

func TestFallbackLatestSortedByDate(t *testing.T) {
	f := NewFallback()

	latest := f.Latest(0)
	require.Len(t, latest, 12)
	for i := 1; i < len(latest); i++ {
		assert.False(t, latest[i-1].PublishedAt.Before(latest[i].PublishedAt))
	}
}

func TestFallbackPagination(t *testing.T) {
	f := NewFallback()

	first := f.Articles(1, 25)
	assert.Len(t, first.Data, 25)
	assert.Equal(t, Pagination{
		Page: 1, PageSize: 25, TotalPages: 3, TotalItems: 60,
		HasNext: true, HasPrevious: false,
	}, first.Pagination)

	last := f.Articles(3, 25)
	assert.Len(t, last.Data, 10)
	assert.False(t, last.Pagination.HasNext)
	assert.True(t, last.Pagination.HasPrevious)

	beyond := f.Articles(9, 25)
	assert.Empty(t, beyond.Data)
}

func TestFallbackByCategory(t *testing.T) {
	f := NewFallback()

	result := f.ByCategory("crypto", 1, 10)
	require.Len(t, result.Data, 10)
	for _, a := range result.Data {
		assert.Equal(t, "Crypto", a.Category.Name)
	}

	result = f.ByCategory("gardening", 1, 10)
	assert.Empty(t, result.Data)
	assert.Zero(t, result.Pagination.TotalItems)
	assert.False(t, result.Pagination.HasNext)
}

func TestFallbackSearch(t *testing.T) {
	f := NewFallback()

	result := f.Search("bitcoin", 1, 10)
	require.NotEmpty(t, result.Data)
	for _, a := range result.Data {
		assert.Contains(t, a.Title+a.Excerpt, "Bitcoin")
	}

	assert.Empty(t, f.Search("", 1, 10).Data)
	assert.Empty(t, f.Search("zzzzzz", 1, 10).Data)
}

func TestFallbackLookups(t *testing.T) {
	f := NewFallback()

	category := f.CategoryBySlug("sports")
	require.NotNil(t, category)
	assert.Equal(t, "Sports", category.Name)
	assert.Nil(t, f.CategoryBySlug("nope"))

	authors := f.Authors()
	require.Len(t, authors, 5)

	author := f.AuthorBySlug(authors[0].Slug)
	require.NotNil(t, author)
	assert.Equal(t, authors[0].Name, author.Name)
	assert.Nil(t, f.AuthorBySlug("ghost-writer"))

	byAuthor := f.ByAuthor(authors[0].Slug, 1, 100)
	assert.NotEmpty(t, byAuthor.Data)

	article := f.ArticleBySlug("bitcoin-surges-past-100-000-mark-for-first-time")
	require.NotNil(t, article)
	assert.Equal(t, "Crypto", article.Category.Name)
	assert.Nil(t, f.ArticleBySlug("not-a-slug"))
}

func TestFallbackTags(t *testing.T) {
	f := NewFallback()

	tags := f.Tags()
	// Six category tags plus the shared "news" tag per category id.
	assert.Len(t, tags, 12)

	byTag := f.ByTag("news", 1, 100)
	assert.Len(t, byTag.Data, 60)

	byTag = f.ByTag("technology", 1, 100)
	assert.Len(t, byTag.Data, 10)

	assert.Empty(t, f.ByTag("missing", 1, 10).Data)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Stock Market Hits All-Time High Amid Economic Optimism", "stock-market-hits-all-time-high-amid-economic-optimism"},
		{"Bitcoin Surges Past $100,000 Mark for First Time", "bitcoin-surges-past-100-000-mark-for-first-time"},
		{"  Spaced  Out  ", "spaced-out"},
		{"John Smith", "john-smith"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.input))
		})
	}
}
