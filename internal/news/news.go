package news

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Akungapaul/apexheadlines-frontend/internal/wordpress"
)

const (
	DefaultPageSize      = 10
	DefaultFeaturedLimit = 5
	DefaultTrendingLimit = 10
	DefaultRelatedLimit  = 4
)

// Manager composes gateway calls into the operations the pages actually
// need. Every operation is a short deterministic pipeline; by-slug and
// by-id lookups report "not found" as a nil result with a nil error, so
// callers can tell it apart from a transport failure.
type Manager struct {
	wp *wordpress.Client
}

func NewManager(wp *wordpress.Client) *Manager {
	return &Manager{wp: wp}
}

// ArticleFilter narrows and orders an article listing. Zero values mean
// "unset" and are normalized before hitting the gateway.
type ArticleFilter struct {
	Page       int
	PageSize   int
	Categories []int
	Tags       []int
	Author     int
	Search     string
	OrderBy    string
	Order      string
}

// Articles lists articles matching the filter. An empty result set is a
// valid outcome, not an error.
func (m *Manager) Articles(ctx context.Context, f ArticleFilter) (PaginatedResponse[Article], error) {
	page, pageSize := normalizePage(f.Page, f.PageSize)

	posts, meta, err := m.wp.Posts(ctx, wordpress.PostsQuery{
		Page:       page,
		PerPage:    pageSize,
		Categories: f.Categories,
		Tags:       f.Tags,
		Author:     f.Author,
		Search:     f.Search,
		OrderBy:    f.OrderBy,
		Order:      f.Order,
	})
	if err != nil {
		return PaginatedResponse[Article]{}, fmt.Errorf("fetch articles: %w", err)
	}

	return PaginatedResponse[Article]{
		Data:       NewArticles(posts),
		Pagination: NewPagination(page, pageSize, meta.TotalItems, meta.TotalPages),
	}, nil
}

// ArticleBySlug fetches a single article. A nil result with nil error
// means no article carries that slug.
func (m *Manager) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	posts, _, err := m.wp.Posts(ctx, wordpress.PostsQuery{Slug: slug})
	if err != nil {
		return nil, fmt.Errorf("fetch article by slug: %w", err)
	}
	if len(posts) == 0 {
		return nil, nil
	}

	article := NewArticle(&posts[0], nil, nil)
	return &article, nil
}

// ArticleByID fetches a single article by its upstream numeric id in
// string form. Unknown or non-numeric ids resolve to nil, nil.
func (m *Manager) ArticleByID(ctx context.Context, id string) (*Article, error) {
	numID, err := strconv.Atoi(id)
	if err != nil {
		return nil, nil
	}

	post, err := m.wp.PostByID(ctx, numID)
	if err != nil {
		if wordpress.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch article by id: %w", err)
	}

	article := NewArticle(post, nil, nil)
	return &article, nil
}

// FeaturedArticles returns sticky posts, substituting the latest posts
// when none are sticky so the featured rail is never empty while any
// posts exist.
func (m *Manager) FeaturedArticles(ctx context.Context, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	posts, _, err := m.wp.Posts(ctx, wordpress.PostsQuery{Sticky: true, PerPage: limit})
	if err != nil {
		return nil, fmt.Errorf("fetch sticky posts: %w", err)
	}

	if len(posts) == 0 {
		posts, _, err = m.wp.Posts(ctx, wordpress.PostsQuery{PerPage: limit})
		if err != nil {
			return nil, fmt.Errorf("fetch latest posts: %w", err)
		}
	}

	return NewArticles(posts), nil
}

// TrendingArticles approximates trending with the latest posts by date.
// The upstream exposes no popularity signal to sort on; this is a
// documented substitution, not a defect.
func (m *Manager) TrendingArticles(ctx context.Context, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	posts, _, err := m.wp.Posts(ctx, wordpress.PostsQuery{
		PerPage: limit,
		OrderBy: wordpress.OrderByDate,
		Order:   wordpress.OrderDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch trending posts: %w", err)
	}

	return NewArticles(posts), nil
}

// RelatedArticles returns up to limit articles sharing the source
// article's category. One extra post is requested and the source id is
// filtered out afterwards: the category query may return the source even
// with the exclude parameter set.
func (m *Manager) RelatedArticles(ctx context.Context, articleID string, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	source, err := m.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return []Article{}, nil
	}

	q := wordpress.PostsQuery{PerPage: limit + 1}
	if numID, err := strconv.Atoi(articleID); err == nil {
		q.Exclude = []int{numID}
	}
	if catID, err := strconv.Atoi(source.Category.ID); err == nil {
		q.Categories = []int{catID}
	}

	posts, _, err := m.wp.Posts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch related posts: %w", err)
	}

	related := make([]Article, 0, limit)
	for i := range posts {
		if strconv.Itoa(posts[i].ID) == articleID {
			continue
		}
		related = append(related, NewArticle(&posts[i], nil, nil))
		if len(related) == limit {
			break
		}
	}

	return related, nil
}

// ArticlesByCategory resolves the category slug first, then lists its
// articles. An unresolved slug yields an empty page, not an error.
func (m *Manager) ArticlesByCategory(ctx context.Context, slug string, page, pageSize int) (PaginatedResponse[Article], error) {
	_, pageSize = normalizePage(page, pageSize)

	category, err := m.CategoryBySlug(ctx, slug)
	if err != nil {
		return PaginatedResponse[Article]{}, err
	}
	if category == nil {
		return EmptyPage[Article](pageSize), nil
	}

	catID, err := strconv.Atoi(category.ID)
	if err != nil {
		return EmptyPage[Article](pageSize), nil
	}

	return m.Articles(ctx, ArticleFilter{Page: page, PageSize: pageSize, Categories: []int{catID}})
}

// ArticlesByAuthor mirrors ArticlesByCategory for author slugs.
func (m *Manager) ArticlesByAuthor(ctx context.Context, slug string, page, pageSize int) (PaginatedResponse[Article], error) {
	_, pageSize = normalizePage(page, pageSize)

	author, err := m.AuthorBySlug(ctx, slug)
	if err != nil {
		return PaginatedResponse[Article]{}, err
	}
	if author == nil {
		return EmptyPage[Article](pageSize), nil
	}

	authorID, err := strconv.Atoi(author.ID)
	if err != nil {
		return EmptyPage[Article](pageSize), nil
	}

	return m.Articles(ctx, ArticleFilter{Page: page, PageSize: pageSize, Author: authorID})
}

// ArticlesByTag resolves the tag by scanning the full tag collection; the
// upstream tags endpoint has no slug filter in this deployment, unlike
// categories and authors.
func (m *Manager) ArticlesByTag(ctx context.Context, slug string, page, pageSize int) (PaginatedResponse[Article], error) {
	_, pageSize = normalizePage(page, pageSize)

	tags, err := m.wp.Tags(ctx, wordpress.TagsQuery{})
	if err != nil {
		return PaginatedResponse[Article]{}, fmt.Errorf("fetch tags: %w", err)
	}

	for i := range tags {
		if tags[i].Slug != slug {
			continue
		}
		return m.Articles(ctx, ArticleFilter{Page: page, PageSize: pageSize, Tags: []int{tags[i].ID}})
	}

	return EmptyPage[Article](pageSize), nil
}

// SearchArticles lists articles matching a text query, most relevant
// first.
func (m *Manager) SearchArticles(ctx context.Context, query string, page, pageSize int) (PaginatedResponse[Article], error) {
	return m.Articles(ctx, ArticleFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   query,
		OrderBy:  wordpress.OrderByRelevance,
	})
}

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.wp.Categories(ctx, wordpress.CategoriesQuery{})
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	list, err := m.wp.Categories(ctx, wordpress.CategoriesQuery{Slug: slug, ShowEmpty: true})
	if err != nil {
		return nil, fmt.Errorf("fetch category by slug: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}

	category := NewCategory(&list[0])
	return &category, nil
}

func (m *Manager) Authors(ctx context.Context) ([]Author, error) {
	list, err := m.wp.Users(ctx, wordpress.UsersQuery{Who: "authors"})
	if err != nil {
		return nil, fmt.Errorf("fetch authors: %w", err)
	}

	return NewAuthors(list), nil
}

func (m *Manager) AuthorBySlug(ctx context.Context, slug string) (*Author, error) {
	list, err := m.wp.Users(ctx, wordpress.UsersQuery{Slug: slug})
	if err != nil {
		return nil, fmt.Errorf("fetch author by slug: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}

	author := NewAuthor(&list[0])
	return &author, nil
}

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.wp.Tags(ctx, wordpress.TagsQuery{})
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}

	return NewTags(list), nil
}

// Comments lists approved comments for an article.
func (m *Manager) Comments(ctx context.Context, articleID string, page, pageSize int) (PaginatedResponse[Comment], error) {
	page, pageSize = normalizePage(page, pageSize)

	numID, err := strconv.Atoi(articleID)
	if err != nil {
		return EmptyPage[Comment](pageSize), nil
	}

	comments, meta, err := m.wp.Comments(ctx, wordpress.CommentsQuery{
		Post:    numID,
		Page:    page,
		PerPage: pageSize,
	})
	if err != nil {
		return PaginatedResponse[Comment]{}, fmt.Errorf("fetch comments: %w", err)
	}

	return PaginatedResponse[Comment]{
		Data:       NewComments(comments),
		Pagination: NewPagination(page, pageSize, meta.TotalItems, meta.TotalPages),
	}, nil
}

// PostComment submits a comment upstream for moderation. Fire-and-forget:
// no retries, and the created record is not returned.
func (m *Manager) PostComment(ctx context.Context, articleID, name, email, content string, parentID string) error {
	numID, err := strconv.Atoi(articleID)
	if err != nil {
		return fmt.Errorf("invalid article id %q", articleID)
	}

	in := wordpress.NewComment{
		Post:        numID,
		AuthorName:  name,
		AuthorEmail: email,
		Content:     content,
	}
	if parent, err := strconv.Atoi(parentID); err == nil {
		in.Parent = parent
	}

	if err := m.wp.CreateComment(ctx, in); err != nil {
		return fmt.Errorf("post comment: %w", err)
	}

	return nil
}

// IncrementViews is a documented no-op: view counters are owned by the
// upstream analytics plugin, and fabricating local increments would only
// desync from it.
func (m *Manager) IncrementViews(ctx context.Context, articleID string) error {
	return nil
}

// LikeArticle is a documented no-op for the same reason as
// IncrementViews; there is no upstream store for likes.
func (m *Manager) LikeArticle(ctx context.Context, articleID string) (int, error) {
	return 0, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}
