package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 60 * time.Second

	// Pagination headers set by WordPress on collection responses.
	headerTotal      = "X-WP-Total"
	headerTotalPages = "X-WP-TotalPages"
)

// ListMeta carries the collection counters parsed from response headers.
// A missing or malformed header counts as 0.
type ListMeta struct {
	TotalItems int
	TotalPages int
}

// Config holds the gateway settings. The base URL should point at the
// wp/v2 namespace root, e.g. https://example.com/wp-json/wp/v2.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client is the HTTP gateway to the WordPress REST API. All methods are
// read-only GETs except CreateComment. cache may be nil, which disables
// response caching.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   Cache
	ttl     time.Duration
	log     *slog.Logger
}

func NewClient(cfg Config, cache Cache, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: timeout},
		cache:   cache,
		ttl:     ttl,
		log:     log,
	}
}

// Posts fetches a page of posts with embedded author, media and terms.
func (c *Client) Posts(ctx context.Context, q PostsQuery) ([]Post, ListMeta, error) {
	var posts []Post
	meta, err := c.getJSON(ctx, "/posts", q.Values(), &posts)
	if err != nil {
		return nil, ListMeta{}, err
	}
	return posts, meta, nil
}

// PostByID fetches a single post. A missing post surfaces as a
// *StatusError with code 404; use IsNotFound to tell it apart from other
// transport failures.
func (c *Client) PostByID(ctx context.Context, id int) (*Post, error) {
	v := url.Values{}
	v.Set("_embed", embedFields)

	var post Post
	if _, err := c.getJSON(ctx, "/posts/"+strconv.Itoa(id), v, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) Categories(ctx context.Context, q CategoriesQuery) ([]Category, error) {
	var categories []Category
	if _, err := c.getJSON(ctx, "/categories", q.Values(), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Tags(ctx context.Context, q TagsQuery) ([]Tag, error) {
	var tags []Tag
	if _, err := c.getJSON(ctx, "/tags", q.Values(), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) Users(ctx context.Context, q UsersQuery) ([]Author, error) {
	var users []Author
	if _, err := c.getJSON(ctx, "/users", q.Values(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Comments(ctx context.Context, q CommentsQuery) ([]Comment, ListMeta, error) {
	var comments []Comment
	meta, err := c.getJSON(ctx, "/comments", q.Values(), &comments)
	if err != nil {
		return nil, ListMeta{}, err
	}
	return comments, meta, nil
}

// CreateComment submits a comment for moderation upstream. The created
// record is discarded; callers treat this as fire-and-forget.
func (c *Client) CreateComment(ctx context.Context, in NewComment) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal comment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/comments", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post comment: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Endpoint: "/comments"}
	}

	return nil
}

// getJSON performs a cached GET against endpoint and decodes the body into
// out. Collection counters from the pagination headers are returned for
// every call; single-resource endpoints simply see zeros.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) (ListMeta, error) {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	if body, meta, ok := c.cacheGet(ctx, u); ok {
		if err := json.Unmarshal(body, out); err == nil {
			return meta, nil
		}
		// A corrupt cache entry falls through to a live fetch.
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return ListMeta{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return ListMeta{}, fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return ListMeta{}, &StatusError{Code: resp.StatusCode, Endpoint: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ListMeta{}, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	meta := ListMeta{
		TotalItems: headerInt(resp.Header, headerTotal),
		TotalPages: headerInt(resp.Header, headerTotalPages),
	}

	if err := json.Unmarshal(body, out); err != nil {
		return ListMeta{}, fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	c.cacheSet(ctx, u, body, meta)

	return meta, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) (json.RawMessage, ListMeta, bool) {
	if c.cache == nil {
		return nil, ListMeta{}, false
	}

	raw, ok := c.cache.Get(ctx, key)
	if !ok {
		return nil, ListMeta{}, false
	}

	var entry cachedResponse
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.log.Debug("discarding malformed cache entry", "key", key, "error", err)
		return nil, ListMeta{}, false
	}

	return entry.Body, ListMeta{TotalItems: entry.TotalItems, TotalPages: entry.TotalPages}, true
}

func (c *Client) cacheSet(ctx context.Context, key string, body []byte, meta ListMeta) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(cachedResponse{
		Body:       body,
		TotalItems: meta.TotalItems,
		TotalPages: meta.TotalPages,
	})
	if err != nil {
		c.log.Debug("failed to encode cache entry", "key", key, "error", err)
		return
	}

	c.cache.Set(ctx, key, raw, c.ttl)
}

func headerInt(h http.Header, name string) int {
	n, err := strconv.Atoi(h.Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
