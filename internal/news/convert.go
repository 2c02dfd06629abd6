package news

import (
	"slices"
	"strconv"
	"time"

	"github.com/Akungapaul/apexheadlines-frontend/internal/wordpress"
)

const placeholderImage = "/images/placeholder.jpg"

// Wire taxonomy names for embedded terms.
const (
	taxonomyCategory = "category"
	taxonomyTag      = "post_tag"
)

// Synthetic identities used when a post resolves to no category or author.
var (
	uncategorized = Category{ID: "1", Name: "Uncategorized", Slug: "uncategorized"}
	houseAuthor   = Author{ID: "1", Name: "Apex Headlines", Slug: "apex-headlines"}
)

// NewArticle maps one wire post to an Article. Category and author resolve
// from embedded terms first, then from the caller-supplied fallback lists,
// then to synthetic defaults; tags come from embedded terms only. The
// function is total: any syntactically valid post maps without error.
func NewArticle(p *wordpress.Post, categories []wordpress.Category, authors []wordpress.Author) Article {
	title := decodeEntities(p.Title.Rendered)

	article := Article{
		ID:               strconv.Itoa(p.ID),
		Title:            title,
		Slug:             p.Slug,
		Excerpt:          stripHTML(p.Excerpt.Rendered),
		Content:          p.Content.Rendered,
		FeaturedImage:    placeholderImage,
		FeaturedImageAlt: title,
		Category:         resolveCategory(p, categories),
		Tags:             embeddedTags(p),
		Author:           resolveAuthor(p, authors),
		PublishedAt:      parseWPTime(p.Date),
		UpdatedAt:        parseWPTime(p.Modified),
		ReadTime:         readTime(p.Content.Rendered),
		Status:           mapStatus(p.Status),
	}

	if p.Meta != nil {
		article.Views = p.Meta.TotalViews
	}

	if media := embeddedMedia(p); media != nil {
		if media.SourceURL != "" {
			article.FeaturedImage = media.SourceURL
		}
		if media.AltText != "" {
			article.FeaturedImageAlt = media.AltText
		}
	}

	return article
}

func NewCategory(c *wordpress.Category) Category {
	return Category{
		ID:           strconv.Itoa(c.ID),
		Name:         decodeEntities(c.Name),
		Slug:         c.Slug,
		Description:  c.Description,
		ArticleCount: c.Count,
	}
}

func NewAuthor(a *wordpress.Author) Author {
	author := Author{
		ID:     strconv.Itoa(a.ID),
		Name:   a.Name,
		Slug:   a.Slug,
		Bio:    a.Description,
		Avatar: avatarURL(a.AvatarURLs),
	}

	if a.URL != "" {
		author.Social = &SocialLinks{Website: a.URL}
	}

	return author
}

func NewTag(t *wordpress.Tag) Tag {
	return Tag{
		ID:   strconv.Itoa(t.ID),
		Name: decodeEntities(t.Name),
		Slug: t.Slug,
	}
}

func NewComment(c *wordpress.Comment) Comment {
	comment := Comment{
		ID:        strconv.Itoa(c.ID),
		ArticleID: strconv.Itoa(c.Post),
		Author:    c.AuthorName,
		Content:   c.Content.Rendered,
		CreatedAt: parseWPTime(c.Date),
		Status:    c.Status,
	}

	if c.Parent > 0 {
		comment.ParentID = strconv.Itoa(c.Parent)
	}
	if c.AuthorAvatarURLs != nil {
		comment.Avatar = avatarURL(c.AuthorAvatarURLs)
	}

	return comment
}

// resolveCategory picks the post's single category: the first embedded
// "category" term listed on the post, else the first match from the
// fallback list, else the synthetic Uncategorized. Posts filed under
// multiple categories keep whichever comes first in embedded-term order.
func resolveCategory(p *wordpress.Post, categories []wordpress.Category) Category {
	for _, term := range flattenTerms(p) {
		if term.Taxonomy == taxonomyCategory && slices.Contains(p.Categories, term.ID) {
			return Category{
				ID:           strconv.Itoa(term.ID),
				Name:         decodeEntities(term.Name),
				Slug:         term.Slug,
				Description:  term.Description,
				ArticleCount: term.Count,
			}
		}
	}

	for i := range categories {
		if slices.Contains(p.Categories, categories[i].ID) {
			return NewCategory(&categories[i])
		}
	}

	return uncategorized
}

func resolveAuthor(p *wordpress.Post, authors []wordpress.Author) Author {
	if p.Embedded != nil && len(p.Embedded.Author) > 0 {
		return NewAuthor(&p.Embedded.Author[0])
	}

	for i := range authors {
		if authors[i].ID == p.Author {
			return NewAuthor(&authors[i])
		}
	}

	return houseAuthor
}

// embeddedTags collects the post's tags from embedded terms. No secondary
// lookup happens here: posts fetched without _embed simply carry no tags.
func embeddedTags(p *wordpress.Post) []Tag {
	var tags []Tag
	for _, term := range flattenTerms(p) {
		if term.Taxonomy == taxonomyTag && slices.Contains(p.Tags, term.ID) {
			tags = append(tags, Tag{
				ID:   strconv.Itoa(term.ID),
				Name: decodeEntities(term.Name),
				Slug: term.Slug,
			})
		}
	}
	return tags
}

func flattenTerms(p *wordpress.Post) []wordpress.Term {
	if p.Embedded == nil {
		return nil
	}

	var terms []wordpress.Term
	for _, group := range p.Embedded.Terms {
		terms = append(terms, group...)
	}
	return terms
}

func embeddedMedia(p *wordpress.Post) *wordpress.Media {
	if p.Embedded == nil || len(p.Embedded.FeaturedMedia) == 0 {
		return nil
	}
	return &p.Embedded.FeaturedMedia[0]
}

// avatarURL prefers the largest avatar WordPress exposes.
func avatarURL(urls map[string]string) string {
	for _, size := range []string{"96", "48", "24"} {
		if u, ok := urls[size]; ok && u != "" {
			return u
		}
	}
	return ""
}

func mapStatus(s string) Status {
	if s == "publish" {
		return StatusPublished
	}
	return StatusDraft
}

// parseWPTime accepts both the zoneless site-local format WordPress uses
// for date/modified and full RFC 3339. Unparseable input yields the zero
// time rather than an error; the mapper never fails.
func parseWPTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
