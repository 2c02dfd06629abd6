package rest

import "time"

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Color        string `json:"color,omitempty"`
	ArticleCount int    `json:"articleCount"`
}

type Author struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Slug   string       `json:"slug"`
	Bio    string       `json:"bio,omitempty"`
	Avatar string       `json:"avatar,omitempty"`
	Social *SocialLinks `json:"social,omitempty"`
}

type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Article is the full representation served on detail pages, raw HTML
// body included.
type Article struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Excerpt          string    `json:"excerpt"`
	Content          string    `json:"content"`
	FeaturedImage    string    `json:"featuredImage"`
	FeaturedImageAlt string    `json:"featuredImageAlt"`
	Category         Category  `json:"category"`
	Tags             []Tag     `json:"tags"`
	Author           Author    `json:"author"`
	PublishedAt      time.Time `json:"publishedAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	ReadTime         int       `json:"readTime"`
	Views            int       `json:"views"`
	Likes            int       `json:"likes"`
	CommentsCount    int       `json:"commentsCount"`
	Status           string    `json:"status"`
}

// ArticleSummary is the list representation: everything but the body.
type ArticleSummary struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Excerpt          string    `json:"excerpt"`
	FeaturedImage    string    `json:"featuredImage"`
	FeaturedImageAlt string    `json:"featuredImageAlt"`
	Category         Category  `json:"category"`
	Tags             []Tag     `json:"tags"`
	Author           Author    `json:"author"`
	PublishedAt      time.Time `json:"publishedAt"`
	ReadTime         int       `json:"readTime"`
	Views            int       `json:"views"`
	Status           string    `json:"status"`
}

type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

type ArticleList struct {
	Data       []ArticleSummary `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	ParentID  string    `json:"parentId,omitempty"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}

type CommentList struct {
	Data       []Comment  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Home aggregates everything the front page needs in one response.
type Home struct {
	Featured   []ArticleSummary `json:"featured"`
	Trending   []ArticleSummary `json:"trending"`
	Latest     []ArticleSummary `json:"latest"`
	Categories []Category       `json:"categories"`
}
