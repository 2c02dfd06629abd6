package news

import "github.com/Akungapaul/apexheadlines-frontend/internal/wordpress"

func NewArticles(posts []wordpress.Post) []Article {
	articles := make([]Article, len(posts))
	for i := range posts {
		articles[i] = NewArticle(&posts[i], nil, nil)
	}
	return articles
}

func NewCategories(list []wordpress.Category) []Category {
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = NewCategory(&list[i])
	}
	return categories
}

func NewAuthors(list []wordpress.Author) []Author {
	authors := make([]Author, len(list))
	for i := range list {
		authors[i] = NewAuthor(&list[i])
	}
	return authors
}

func NewTags(list []wordpress.Tag) []Tag {
	tags := make([]Tag, len(list))
	for i := range list {
		tags[i] = NewTag(&list[i])
	}
	return tags
}

func NewComments(list []wordpress.Comment) []Comment {
	comments := make([]Comment, len(list))
	for i := range list {
		comments[i] = NewComment(&list[i])
	}
	return comments
}
