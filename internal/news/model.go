// Package news holds the presentation-facing domain model, the mapping
// from WordPress wire records into it, and the service operations the
// site's pages are built from.
package news

import "time"

// Status is an article's lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Article is the canonical content unit. Slug is the externally
// addressable key; ID is the string form of the upstream numeric id and
// is only used for joins. Articles are value objects and are never
// mutated after mapping.
type Article struct {
	ID               string
	Title            string
	Slug             string
	Excerpt          string
	Content          string
	FeaturedImage    string
	FeaturedImageAlt string
	Category         Category
	Tags             []Tag
	Author           Author
	PublishedAt      time.Time
	UpdatedAt        time.Time
	ReadTime         int
	Views            int
	Likes            int
	CommentsCount    int
	Status           Status
}

type Category struct {
	ID           string
	Name         string
	Slug         string
	Description  string
	Color        string
	ArticleCount int
}

type Author struct {
	ID     string
	Name   string
	Slug   string
	Bio    string
	Avatar string
	Social *SocialLinks
}

type SocialLinks struct {
	Twitter  string
	LinkedIn string
	Website  string
}

type Tag struct {
	ID   string
	Name string
	Slug string
}

type Comment struct {
	ID        string
	ArticleID string
	ParentID  string
	Author    string
	Avatar    string
	Content   string
	CreatedAt time.Time
	Status    string
}

// Pagination describes one page of a list result. HasNext and HasPrevious
// are derived in NewPagination and must never be set by hand.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

func NewPagination(page, pageSize, totalItems, totalPages int) Pagination {
	return Pagination{
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// PaginatedResponse is the uniform contract for every list-returning
// operation, live or fallback.
type PaginatedResponse[T any] struct {
	Data       []T
	Pagination Pagination
}

// EmptyPage is the canonical result for a resolution miss: a valid,
// empty first page rather than an error.
func EmptyPage[T any](pageSize int) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Data:       []T{},
		Pagination: NewPagination(1, pageSize, 0, 0),
	}
}
