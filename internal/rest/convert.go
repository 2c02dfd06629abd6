package rest

import "github.com/Akungapaul/apexheadlines-frontend/internal/news"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticle(a news.Article) Article {
	return Article{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		Excerpt:          a.Excerpt,
		Content:          a.Content,
		FeaturedImage:    a.FeaturedImage,
		FeaturedImageAlt: a.FeaturedImageAlt,
		Category:         NewCategory(a.Category),
		Tags:             Map(a.Tags, NewTag),
		Author:           NewAuthor(a.Author),
		PublishedAt:      a.PublishedAt,
		UpdatedAt:        a.UpdatedAt,
		ReadTime:         a.ReadTime,
		Views:            a.Views,
		Likes:            a.Likes,
		CommentsCount:    a.CommentsCount,
		Status:           string(a.Status),
	}
}

func NewArticleSummary(a news.Article) ArticleSummary {
	return ArticleSummary{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		Excerpt:          a.Excerpt,
		FeaturedImage:    a.FeaturedImage,
		FeaturedImageAlt: a.FeaturedImageAlt,
		Category:         NewCategory(a.Category),
		Tags:             Map(a.Tags, NewTag),
		Author:           NewAuthor(a.Author),
		PublishedAt:      a.PublishedAt,
		ReadTime:         a.ReadTime,
		Views:            a.Views,
		Status:           string(a.Status),
	}
}

func NewCategory(c news.Category) Category {
	return Category{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Color:        c.Color,
		ArticleCount: c.ArticleCount,
	}
}

func NewAuthor(a news.Author) Author {
	author := Author{
		ID:     a.ID,
		Name:   a.Name,
		Slug:   a.Slug,
		Bio:    a.Bio,
		Avatar: a.Avatar,
	}

	if a.Social != nil {
		author.Social = &SocialLinks{
			Twitter:  a.Social.Twitter,
			LinkedIn: a.Social.LinkedIn,
			Website:  a.Social.Website,
		}
	}

	return author
}

func NewTag(t news.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func NewComment(c news.Comment) Comment {
	return Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		ParentID:  c.ParentID,
		Author:    c.Author,
		Avatar:    c.Avatar,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Status:    c.Status,
	}
}

func NewPagination(p news.Pagination) Pagination {
	return Pagination{
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}

func NewArticleList(r news.PaginatedResponse[news.Article]) ArticleList {
	return ArticleList{
		Data:       Map(r.Data, NewArticleSummary),
		Pagination: NewPagination(r.Pagination),
	}
}

func NewCommentList(r news.PaginatedResponse[news.Comment]) CommentList {
	return CommentList{
		Data:       Map(r.Data, NewComment),
		Pagination: NewPagination(r.Pagination),
	}
}
