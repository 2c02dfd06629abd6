package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the echo engine with all API routes attached.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"error", v.Error,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	api.GET("/home", h.Home)
	api.GET("/search", h.Search)

	api.GET("/articles", h.Articles)
	api.GET("/articles/featured", h.FeaturedArticles)
	api.GET("/articles/trending", h.TrendingArticles)
	api.GET("/articles/:slug", h.ArticleBySlug)
	api.GET("/articles/:id/related", h.RelatedArticles)
	api.GET("/articles/:id/comments", h.Comments)
	api.POST("/articles/:id/comments", h.PostComment)
	api.POST("/articles/:id/views", h.IncrementViews)
	api.POST("/articles/:id/like", h.LikeArticle)

	api.GET("/categories", h.Categories)
	api.GET("/categories/:slug", h.CategoryBySlug)
	api.GET("/categories/:slug/articles", h.CategoryArticles)

	api.GET("/authors", h.Authors)
	api.GET("/authors/:slug", h.AuthorBySlug)
	api.GET("/authors/:slug/articles", h.AuthorArticles)

	api.GET("/tags", h.Tags)
	api.GET("/tags/:slug/articles", h.TagArticles)

	api.POST("/newsletter/subscribe", h.Subscribe)
	api.POST("/newsletter/unsubscribe", h.Unsubscribe)

	return e
}
