package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akungapaul/apexheadlines-frontend/internal/news"
	"github.com/Akungapaul/apexheadlines-frontend/internal/newsletter"
	"github.com/Akungapaul/apexheadlines-frontend/internal/wordpress"
)

func newTestAPI(t *testing.T, upstream http.Handler) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var baseURL string
	if upstream != nil {
		wp := httptest.NewServer(upstream)
		t.Cleanup(wp.Close)
		baseURL = wp.URL
	} else {
		// A closed server stands in for an unreachable upstream.
		wp := httptest.NewServer(http.NotFoundHandler())
		baseURL = wp.URL
		wp.Close()
	}

	manager := news.NewManager(wordpress.NewClient(wordpress.Config{BaseURL: baseURL}, nil, log))
	handler := NewHandler(manager, news.NewFallback(), newsletter.NewClient("", 0), log)

	api := httptest.NewServer(handler.RegisterRoutes())
	t.Cleanup(api.Close)
	return api
}

func get(t *testing.T, api *httptest.Server, path string, out any) int {
	t.Helper()

	resp, err := http.Get(api.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, api *httptest.Server, path, body string, out any) int {
	t.Helper()

	resp, err := http.Post(api.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func liveUpstream() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WP-Total", "2")
		w.Header().Set("X-WP-TotalPages", "1")
		_, _ = w.Write([]byte(`[
			{"id": 1, "slug": "first-story", "status": "publish",
			 "title": {"rendered": "First Story"}},
			{"id": 2, "slug": "second-story", "status": "publish",
			 "title": {"rendered": "Second Story"}}
		]`))
	})
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 7, "name": "Business", "slug": "business", "count": 2}]`))
	})
	return mux
}

func TestHomeServesLiveContent(t *testing.T) {
	api := newTestAPI(t, liveUpstream())

	var home Home
	status := get(t, api, "/api/v1/home", &home)

	assert.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, home.Featured)
	require.NotEmpty(t, home.Latest)
	assert.Equal(t, "first-story", home.Latest[0].Slug)
	require.Len(t, home.Categories, 1)
	assert.Equal(t, "Business", home.Categories[0].Name)
}

func TestHomeDegradesToFallback(t *testing.T) {
	api := newTestAPI(t, nil)

	var home Home
	status := get(t, api, "/api/v1/home", &home)

	// The home page always renders, static content included.
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, home.Featured, news.DefaultFeaturedLimit)
	assert.Len(t, home.Trending, news.DefaultTrendingLimit)
	assert.Len(t, home.Latest, 12)

	require.Len(t, home.Categories, 6)
	names := make([]string, len(home.Categories))
	for i, c := range home.Categories {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Business", "Technology", "Crypto", "Sports", "Entertainment", "Politics"}, names)
}

func TestArticlesList(t *testing.T) {
	t.Run("Live", func(t *testing.T) {
		api := newTestAPI(t, liveUpstream())

		var list ArticleList
		status := get(t, api, "/api/v1/articles", &list)

		assert.Equal(t, http.StatusOK, status)
		require.Len(t, list.Data, 2)
		assert.Equal(t, "First Story", list.Data[0].Title)
		assert.Equal(t, 2, list.Pagination.TotalItems)
	})

	t.Run("Fallback", func(t *testing.T) {
		api := newTestAPI(t, nil)

		var list ArticleList
		status := get(t, api, "/api/v1/articles?pageSize=20", &list)

		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, list.Data, 20)
		assert.Equal(t, 60, list.Pagination.TotalItems)
	})
}

func TestArticleBySlug(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "first-story", r.URL.Query().Get("slug"))
			_, _ = w.Write([]byte(`[{"id": 1, "slug": "first-story", "status": "publish",
				"title": {"rendered": "First Story"},
				"content": {"rendered": "<p>Body</p>"}}]`))
		})
		api := newTestAPI(t, mux)

		var article Article
		status := get(t, api, "/api/v1/articles/first-story", &article)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "1", article.ID)
		assert.Equal(t, "<p>Body</p>", article.Content)
	})

	t.Run("NotFound", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
		api := newTestAPI(t, mux)

		status := get(t, api, "/api/v1/articles/no-such-story", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("UpstreamDownKnownFallbackSlug", func(t *testing.T) {
		api := newTestAPI(t, nil)

		var article Article
		status := get(t, api, "/api/v1/articles/bitcoin-surges-past-100-000-mark-for-first-time", &article)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Crypto", article.Category.Name)
	})

	t.Run("UpstreamDownUnknownSlug", func(t *testing.T) {
		api := newTestAPI(t, nil)

		status := get(t, api, "/api/v1/articles/no-such-story", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestSearch(t *testing.T) {
	t.Run("MissingQuery", func(t *testing.T) {
		api := newTestAPI(t, liveUpstream())

		status := get(t, api, "/api/v1/search", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("FallbackSearch", func(t *testing.T) {
		api := newTestAPI(t, nil)

		var list ArticleList
		status := get(t, api, "/api/v1/search?q=bitcoin", &list)

		assert.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, list.Data)
		assert.Contains(t, strings.ToLower(list.Data[0].Title), "bitcoin")
	})
}

func TestCategoryEndpoints(t *testing.T) {
	api := newTestAPI(t, nil)

	var categories []Category
	status := get(t, api, "/api/v1/categories", &categories)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, categories, 6)

	var category Category
	status = get(t, api, "/api/v1/categories/technology", &category)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Technology", category.Name)
	assert.Equal(t, "#7c3aed", category.Color)

	status = get(t, api, "/api/v1/categories/gardening", nil)
	assert.Equal(t, http.StatusNotFound, status)

	var list ArticleList
	status = get(t, api, "/api/v1/categories/crypto/articles", &list)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, list.Data, 10)
}

func TestAuthorEndpoints(t *testing.T) {
	api := newTestAPI(t, nil)

	var authors []Author
	status := get(t, api, "/api/v1/authors", &authors)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, authors, 5)

	var author Author
	status = get(t, api, "/api/v1/authors/"+authors[0].Slug, &author)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, authors[0].Name, author.Name)

	status = get(t, api, "/api/v1/authors/ghost-writer", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTagEndpoints(t *testing.T) {
	api := newTestAPI(t, nil)

	var tags []Tag
	status := get(t, api, "/api/v1/tags", &tags)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, tags)

	var list ArticleList
	status = get(t, api, "/api/v1/tags/news/articles", &list)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, list.Data)
}

func TestCommentEndpoints(t *testing.T) {
	t.Run("ListDegradesToEmpty", func(t *testing.T) {
		api := newTestAPI(t, nil)

		var list CommentList
		status := get(t, api, "/api/v1/articles/5/comments", &list)

		assert.Equal(t, http.StatusOK, status)
		assert.Empty(t, list.Data)
	})

	t.Run("PostValidation", func(t *testing.T) {
		api := newTestAPI(t, nil)

		status := postJSON(t, api, "/api/v1/articles/5/comments", `{"name": "", "email": "", "content": ""}`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("PostAcceptedEvenWhenUpstreamDown", func(t *testing.T) {
		api := newTestAPI(t, nil)

		status := postJSON(t, api, "/api/v1/articles/5/comments",
			`{"name": "Reader", "email": "reader@example.com", "content": "Nice."}`, nil)
		assert.Equal(t, http.StatusAccepted, status)
	})
}

func TestCounterEndpoints(t *testing.T) {
	api := newTestAPI(t, nil)

	resp, err := http.Post(api.URL+"/api/v1/articles/5/views", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var likes map[string]int
	status := postJSON(t, api, "/api/v1/articles/5/like", "", &likes)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]int{"likes": 0}, likes)
}

func TestNewsletterEndpoints(t *testing.T) {
	api := newTestAPI(t, nil)

	status := postJSON(t, api, "/api/v1/newsletter/subscribe", `{"email": ""}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// The handler acknowledges even when the backing service is not
	// configured; delivery is best effort.
	status = postJSON(t, api, "/api/v1/newsletter/subscribe", `{"email": "reader@example.com", "frequency": "weekly"}`, nil)
	assert.Equal(t, http.StatusAccepted, status)

	status = postJSON(t, api, "/api/v1/newsletter/unsubscribe", `{"email": "reader@example.com"}`, nil)
	assert.Equal(t, http.StatusAccepted, status)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, nil)

	var body map[string]string
	status := get(t, api, "/health", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
