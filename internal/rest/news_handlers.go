package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Akungapaul/apexheadlines-frontend/internal/news"
	"github.com/Akungapaul/apexheadlines-frontend/internal/newsletter"
)

// Handler is the presentation edge. It is the single place allowed to
// catch transport failures and substitute the fallback dataset: list and
// home views degrade to static content, while a genuine not-found still
// surfaces as 404.
type Handler struct {
	news *news.Manager
	fb   *news.Fallback
	nl   *newsletter.Client
	log  *slog.Logger
}

func NewHandler(manager *news.Manager, fb *news.Fallback, nl *newsletter.Client, log *slog.Logger) *Handler {
	return &Handler{
		news: manager,
		fb:   fb,
		nl:   nl,
		log:  log,
	}
}

type listRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Sort     string `query:"sort"`
	Order    string `query:"order"`
}

type limitRequest struct {
	Limit int `query:"limit"`
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// fallbackFor logs a transport failure before a handler substitutes
// static content for it.
func (h *Handler) fallbackFor(op string, err error) {
	h.log.Error("upstream call failed, serving fallback content", "op", op, "error", err)
}

// Articles handles GET /api/v1/articles.
func (h *Handler) Articles(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	filter := news.ArticleFilter{Page: req.Page, PageSize: req.PageSize}
	switch req.Sort {
	case "date":
		filter.OrderBy = "date"
	case "title":
		filter.OrderBy = "title"
	}
	switch req.Order {
	case "asc", "desc":
		filter.Order = req.Order
	}

	result, err := h.news.Articles(c.Request().Context(), filter)
	if err != nil {
		h.fallbackFor("articles", err)
		result = h.fb.Articles(req.Page, req.PageSize)
	}

	return c.JSON(http.StatusOK, NewArticleList(result))
}

// ArticleBySlug handles GET /api/v1/articles/:slug. A slug with no match
// is a genuine 404, never a fallback substitution.
func (h *Handler) ArticleBySlug(c echo.Context) error {
	slug := c.Param("slug")

	article, err := h.news.ArticleBySlug(c.Request().Context(), slug)
	if err != nil {
		h.fallbackFor("article by slug", err)
		article = h.fb.ArticleBySlug(slug)
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// FeaturedArticles handles GET /api/v1/articles/featured.
func (h *Handler) FeaturedArticles(c echo.Context) error {
	var req limitRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	articles, err := h.news.FeaturedArticles(c.Request().Context(), req.Limit)
	if err != nil {
		h.fallbackFor("featured articles", err)
		articles = h.fb.Featured(req.Limit)
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticleSummary))
}

// TrendingArticles handles GET /api/v1/articles/trending.
func (h *Handler) TrendingArticles(c echo.Context) error {
	var req limitRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	articles, err := h.news.TrendingArticles(c.Request().Context(), req.Limit)
	if err != nil {
		h.fallbackFor("trending articles", err)
		articles = h.fb.Trending(req.Limit)
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticleSummary))
}

// RelatedArticles handles GET /api/v1/articles/:id/related.
func (h *Handler) RelatedArticles(c echo.Context) error {
	var req limitRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	articles, err := h.news.RelatedArticles(c.Request().Context(), c.Param("id"), req.Limit)
	if err != nil {
		h.fallbackFor("related articles", err)
		articles = h.fb.Latest(req.Limit)
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticleSummary))
}

// Search handles GET /api/v1/search.
func (h *Handler) Search(c echo.Context) error {
	var req struct {
		listRequest
		Query string `query:"q"`
	}
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing search query"})
	}

	result, err := h.news.SearchArticles(c.Request().Context(), req.Query, req.Page, req.PageSize)
	if err != nil {
		h.fallbackFor("search", err)
		result = h.fb.Search(req.Query, req.Page, req.PageSize)
	}

	return c.JSON(http.StatusOK, NewArticleList(result))
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.news.Categories(c.Request().Context())
	if err != nil {
		h.fallbackFor("categories", err)
		categories = h.fb.Categories()
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// CategoryBySlug handles GET /api/v1/categories/:slug.
func (h *Handler) CategoryBySlug(c echo.Context) error {
	slug := c.Param("slug")

	category, err := h.news.CategoryBySlug(c.Request().Context(), slug)
	if err != nil {
		h.fallbackFor("category by slug", err)
		category = h.fb.CategoryBySlug(slug)
	}
	if category == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "category not found"})
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// CategoryArticles handles GET /api/v1/categories/:slug/articles.
func (h *Handler) CategoryArticles(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	slug := c.Param("slug")
	result, err := h.news.ArticlesByCategory(c.Request().Context(), slug, req.Page, req.PageSize)
	if err != nil {
		h.fallbackFor("articles by category", err)
		result = h.fb.ByCategory(slug, req.Page, req.PageSize)
	}

	return c.JSON(http.StatusOK, NewArticleList(result))
}

// Authors handles GET /api/v1/authors.
func (h *Handler) Authors(c echo.Context) error {
	authors, err := h.news.Authors(c.Request().Context())
	if err != nil {
		h.fallbackFor("authors", err)
		authors = h.fb.Authors()
	}

	return c.JSON(http.StatusOK, Map(authors, NewAuthor))
}

// AuthorBySlug handles GET /api/v1/authors/:slug.
func (h *Handler) AuthorBySlug(c echo.Context) error {
	slug := c.Param("slug")

	author, err := h.news.AuthorBySlug(c.Request().Context(), slug)
	if err != nil {
		h.fallbackFor("author by slug", err)
		author = h.fb.AuthorBySlug(slug)
	}
	if author == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "author not found"})
	}

	return c.JSON(http.StatusOK, NewAuthor(*author))
}

// AuthorArticles handles GET /api/v1/authors/:slug/articles.
func (h *Handler) AuthorArticles(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	slug := c.Param("slug")
	result, err := h.news.ArticlesByAuthor(c.Request().Context(), slug, req.Page, req.PageSize)
	if err != nil {
		h.fallbackFor("articles by author", err)
		result = h.fb.ByAuthor(slug, req.Page, req.PageSize)
	}

	return c.JSON(http.StatusOK, NewArticleList(result))
}

// Tags handles GET /api/v1/tags.
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.news.Tags(c.Request().Context())
	if err != nil {
		h.fallbackFor("tags", err)
		tags = h.fb.Tags()
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

// TagArticles handles GET /api/v1/tags/:slug/articles.
func (h *Handler) TagArticles(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	slug := c.Param("slug")
	result, err := h.news.ArticlesByTag(c.Request().Context(), slug, req.Page, req.PageSize)
	if err != nil {
		h.fallbackFor("articles by tag", err)
		result = h.fb.ByTag(slug, req.Page, req.PageSize)
	}

	return c.JSON(http.StatusOK, NewArticleList(result))
}

// Home handles GET /api/v1/home: the front page's four independent
// queries dispatched concurrently and joined. Any upstream failure swaps
// the whole page to fallback content; the home view must always render.
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		featured, trending, latest []news.Article
		categories                 []news.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		featured, err = h.news.FeaturedArticles(gctx, news.DefaultFeaturedLimit)
		return err
	})
	g.Go(func() (err error) {
		trending, err = h.news.TrendingArticles(gctx, news.DefaultTrendingLimit)
		return err
	})
	g.Go(func() error {
		page, err := h.news.Articles(gctx, news.ArticleFilter{PageSize: 12})
		if err != nil {
			return err
		}
		latest = page.Data
		return nil
	})
	g.Go(func() (err error) {
		categories, err = h.news.Categories(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.fallbackFor("home", err)
		featured = h.fb.Featured(news.DefaultFeaturedLimit)
		trending = h.fb.Trending(news.DefaultTrendingLimit)
		latest = h.fb.Latest(12)
		categories = h.fb.Categories()
	}

	return c.JSON(http.StatusOK, Home{
		Featured:   Map(featured, NewArticleSummary),
		Trending:   Map(trending, NewArticleSummary),
		Latest:     Map(latest, NewArticleSummary),
		Categories: Map(categories, NewCategory),
	})
}

// Comments handles GET /api/v1/articles/:id/comments.
func (h *Handler) Comments(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	result, err := h.news.Comments(c.Request().Context(), c.Param("id"), req.Page, req.PageSize)
	if err != nil {
		// No fallback corpus for comments; an empty thread still renders.
		h.fallbackFor("comments", err)
		result = news.EmptyPage[news.Comment](req.PageSize)
	}

	return c.JSON(http.StatusOK, NewCommentList(result))
}

type postCommentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Content  string `json:"content"`
	ParentID string `json:"parentId"`
}

// PostComment handles POST /api/v1/articles/:id/comments. The submission
// is fire-and-forget toward the upstream; a failure is logged and the
// client still gets 202.
func (h *Handler) PostComment(c echo.Context) error {
	var req postCommentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name, email and content are required"})
	}

	err := h.news.PostComment(c.Request().Context(), c.Param("id"), req.Name, req.Email, req.Content, req.ParentID)
	if err != nil {
		h.log.Error("comment submission failed", "error", err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"message": "comment submitted for moderation"})
}

// IncrementViews handles POST /api/v1/articles/:id/views. Deliberately a
// no-op: the upstream analytics plugin owns the counter.
func (h *Handler) IncrementViews(c echo.Context) error {
	if err := h.news.IncrementViews(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	return c.NoContent(http.StatusNoContent)
}

// LikeArticle handles POST /api/v1/articles/:id/like. Also a no-op;
// always reports zero likes rather than fabricating a local counter.
func (h *Handler) LikeArticle(c echo.Context) error {
	likes, err := h.news.LikeArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, map[string]int{"likes": likes})
}

type subscribeRequest struct {
	Email     string `json:"email"`
	Frequency string `json:"frequency"`
}

// Subscribe handles POST /api/v1/newsletter/subscribe.
func (h *Handler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email is required"})
	}

	err := h.nl.Subscribe(c.Request().Context(), newsletter.Subscription{
		Email:     req.Email,
		Frequency: req.Frequency,
	})
	if err != nil {
		h.log.Error("newsletter subscribe failed", "error", err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"message": "subscription requested"})
}

// Unsubscribe handles POST /api/v1/newsletter/unsubscribe.
func (h *Handler) Unsubscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email is required"})
	}

	if err := h.nl.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		h.log.Error("newsletter unsubscribe failed", "error", err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"message": "unsubscribe requested"})
}
