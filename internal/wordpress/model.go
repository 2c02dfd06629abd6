package wordpress

import "encoding/json"

// Wire types for the WordPress REST API (wp/v2). Fields the upstream may
// omit are pointers so the mapper can check presence instead of guessing.

// Rendered is WordPress's {"rendered": "..."} wrapper for text fields.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Content wraps rendered HTML plus the protected flag on content/excerpt.
type Content struct {
	Rendered  string `json:"rendered"`
	Protected bool   `json:"protected"`
}

type Post struct {
	ID            int       `json:"id"`
	Date          string    `json:"date"`
	DateGMT       string    `json:"date_gmt"`
	Modified      string    `json:"modified"`
	ModifiedGMT   string    `json:"modified_gmt"`
	Slug          string    `json:"slug"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	Link          string    `json:"link"`
	Title         Rendered  `json:"title"`
	Content       Content   `json:"content"`
	Excerpt       Content   `json:"excerpt"`
	Author        int       `json:"author"`
	FeaturedMedia int       `json:"featured_media"`
	Sticky        bool      `json:"sticky"`
	Categories    []int     `json:"categories"`
	Tags          []int     `json:"tags"`
	Meta          *PostMeta `json:"meta,omitempty"`
	Embedded      *Embedded `json:"_embedded,omitempty"`
}

// PostMeta carries plugin-populated metadata. The view counter comes from
// the Independent Analytics plugin when installed.
type PostMeta struct {
	TotalViews int `json:"iawp_total_views"`
}

// UnmarshalJSON tolerates the empty-array form WordPress emits for posts
// without meta, which would otherwise fail to decode into a struct.
func (m *PostMeta) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	type plain PostMeta
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return nil
	}
	*m = PostMeta(p)
	return nil
}

// Embedded holds the sub-resources inlined by the _embed query parameter.
type Embedded struct {
	Author        []Author `json:"author"`
	FeaturedMedia []Media  `json:"wp:featuredmedia"`
	Terms         [][]Term `json:"wp:term"`
}

// Term is a taxonomy term as embedded into a post. Categories and tags
// share this shape and are told apart by the Taxonomy field
// ("category" vs "post_tag").
type Term struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Taxonomy    string `json:"taxonomy"`
	Parent      int    `json:"parent"`
}

type Category struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Taxonomy    string `json:"taxonomy"`
	Parent      int    `json:"parent"`
}

type Tag struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Taxonomy    string `json:"taxonomy"`
}

type Author struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	URL         string            `json:"url"`
	Description string            `json:"description"`
	Link        string            `json:"link"`
	Slug        string            `json:"slug"`
	AvatarURLs  map[string]string `json:"avatar_urls"`
}

type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

type Comment struct {
	ID               int               `json:"id"`
	Post             int               `json:"post"`
	Parent           int               `json:"parent"`
	AuthorName       string            `json:"author_name"`
	AuthorAvatarURLs map[string]string `json:"author_avatar_urls"`
	Date             string            `json:"date"`
	Content          Rendered          `json:"content"`
	Status           string            `json:"status"`
}

// NewComment is the payload for creating a comment on a post.
type NewComment struct {
	Post        int    `json:"post"`
	Parent      int    `json:"parent,omitempty"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
}
