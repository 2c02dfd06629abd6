package wordpress

import (
	"net/url"
	"strconv"
	"strings"
)

// embedFields lists the sub-resources requested inline on every post call,
// saving the separate author/media/term round trips.
const embedFields = "author,wp:featuredmedia,wp:term"

// Sort options recognized by the posts endpoint.
const (
	OrderByDate      = "date"
	OrderByTitle     = "title"
	OrderByRelevance = "relevance"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// PostsQuery enumerates the recognized filters for the posts collection.
// Zero-valued options are omitted from the query string entirely.
type PostsQuery struct {
	Page       int
	PerPage    int
	Categories []int
	Tags       []int
	Author     int
	Search     string
	OrderBy    string
	Order      string
	Slug       string
	Exclude    []int
	Sticky     bool
}

// Values builds the wire query string, always requesting embedded
// sub-resources.
func (q PostsQuery) Values() url.Values {
	v := url.Values{}
	v.Set("_embed", embedFields)

	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if len(q.Categories) > 0 {
		v.Set("categories", joinInts(q.Categories))
	}
	if len(q.Tags) > 0 {
		v.Set("tags", joinInts(q.Tags))
	}
	if q.Author > 0 {
		v.Set("author", strconv.Itoa(q.Author))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.OrderBy != "" {
		v.Set("orderby", q.OrderBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Slug != "" {
		v.Set("slug", q.Slug)
	}
	if len(q.Exclude) > 0 {
		v.Set("exclude", joinInts(q.Exclude))
	}
	if q.Sticky {
		v.Set("sticky", "true")
	}

	return v
}

// CategoriesQuery filters the categories collection. HideEmpty defaults to
// true to match the site's navigation, which only shows populated
// categories.
type CategoriesQuery struct {
	Slug      string
	ShowEmpty bool
	Parent    *int
	PerPage   int
}

func (q CategoriesQuery) Values() url.Values {
	v := url.Values{}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	v.Set("per_page", strconv.Itoa(perPage))

	if q.Slug != "" {
		v.Set("slug", q.Slug)
	}
	if !q.ShowEmpty {
		v.Set("hide_empty", "true")
	}
	if q.Parent != nil {
		v.Set("parent", strconv.Itoa(*q.Parent))
	}

	return v
}

type TagsQuery struct {
	ShowEmpty bool
	PerPage   int
}

func (q TagsQuery) Values() url.Values {
	v := url.Values{}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	v.Set("per_page", strconv.Itoa(perPage))

	if !q.ShowEmpty {
		v.Set("hide_empty", "true")
	}

	return v
}

// UsersQuery filters the users collection. Who narrows the result to users
// with published posts when set to "authors".
type UsersQuery struct {
	Slug    string
	Who     string
	PerPage int
}

func (q UsersQuery) Values() url.Values {
	v := url.Values{}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	v.Set("per_page", strconv.Itoa(perPage))

	if q.Slug != "" {
		v.Set("slug", q.Slug)
	}
	if q.Who != "" {
		v.Set("who", q.Who)
	}

	return v
}

type CommentsQuery struct {
	Post    int
	Page    int
	PerPage int
}

func (q CommentsQuery) Values() url.Values {
	v := url.Values{}

	if q.Post > 0 {
		v.Set("post", strconv.Itoa(q.Post))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}

	return v
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
