package news

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Fallback is the static substitute corpus served when the upstream API is
// unreachable: six fixed categories with ten articles each, plus
// precomputed featured, trending and latest projections. Pages degrade to
// this data instead of breaking. Counters and read times are randomized on
// construction; the dataset exists to keep pages renderable, not to be
// reproducible.
type Fallback struct {
	categories []Category
	articles   []Article
	featured   []Article
	trending   []Article
	latest     []Article
}

var fallbackCategories = []Category{
	{ID: "1", Name: "Business", Slug: "business", Description: "Business news, market updates, and corporate insights", Color: "#2563eb"},
	{ID: "2", Name: "Technology", Slug: "technology", Description: "Tech news, gadgets, software, and innovation", Color: "#7c3aed"},
	{ID: "3", Name: "Crypto", Slug: "crypto", Description: "Cryptocurrency, blockchain, and digital assets", Color: "#f59e0b"},
	{ID: "4", Name: "Sports", Slug: "sports", Description: "Sports news, scores, and athletic achievements", Color: "#10b981"},
	{ID: "5", Name: "Entertainment", Slug: "entertainment", Description: "Movies, music, celebrities, and pop culture", Color: "#ec4899"},
	{ID: "6", Name: "Politics", Slug: "politics", Description: "Political news, policy, and government affairs", Color: "#ef4444"},
}

var fallbackAuthorNames = []string{
	"John Smith", "Sarah Johnson", "Mike Chen", "Emily Davis", "Alex Thompson",
}

// fallbackTitles holds ten headlines per category, in category order. The
// first headline of each category is that category's featured article.
var fallbackTitles = [][]string{
	{
		"Stock Market Hits All-Time High Amid Economic Optimism",
		"Federal Reserve Signals Potential Rate Cuts in 2025",
		"Major Tech Companies Report Record Q4 Earnings",
		"Global Supply Chain Crisis Shows Signs of Recovery",
		"Startup Funding Rebounds After Two-Year Slowdown",
		"Retail Sales Surge During Holiday Shopping Season",
		"Oil Prices Stabilize as OPEC Reaches Production Agreement",
		"Housing Market Cools as Mortgage Rates Remain Elevated",
		"Small Businesses Adapt to New E-Commerce Trends",
		"Corporate Mergers and Acquisitions Hit Record Numbers",
	},
	{
		"AI Revolution: How Machine Learning is Transforming Industries",
		"Apple Unveils Next-Generation iPhone with Breakthrough Features",
		"Cybersecurity Threats Rise as Hackers Target Major Corporations",
		"Electric Vehicle Technology Advances with Solid-State Batteries",
		"Cloud Computing Market Grows to $500 Billion Valuation",
		"Quantum Computing Breakthrough Promises Faster Processing",
		"5G Networks Expand to Rural Areas Across the Country",
		"Virtual Reality Gaming Enters New Era with Haptic Technology",
		"Tech Giants Face New Regulations on Data Privacy",
		"Robotics Innovation Transforms Manufacturing Sector",
	},
	{
		"Bitcoin Surges Past $100,000 Mark for First Time",
		"Ethereum 2.0 Upgrade Promises Faster Transactions",
		"SEC Approves Multiple Spot Bitcoin ETFs for Trading",
		"DeFi Platforms See Massive Growth in User Adoption",
		"NFT Market Evolves Beyond Digital Art Collectibles",
		"Central Banks Explore Digital Currency Implementation",
		"Crypto Exchange Launches Institutional Trading Platform",
		"Blockchain Technology Disrupts Traditional Banking",
		"Stablecoin Regulations Take Shape Globally",
		"Mining Operations Shift to Renewable Energy Sources",
	},
	{
		"Championship Finals: Historic Victory Stuns the Sports World",
		"Star Athlete Signs Record-Breaking Contract Extension",
		"Olympics Preparations Underway for 2028 Los Angeles Games",
		"Football Season Preview: Top Teams to Watch This Year",
		"Tennis Grand Slam Delivers Shocking Upsets in Finals",
		"Basketball League Announces Expansion to New Cities",
		"Soccer World Cup Qualifiers Heat Up Across Continents",
		"Golf Major Tournament Sees Record-Breaking Performance",
		"E-Sports Industry Grows with Million Dollar Prize Pools",
		"Baseball Team Clinches Division Title After Dramatic Win",
	},
	{
		"Blockbuster Film Breaks Box Office Records Worldwide",
		"Streaming Wars Intensify as New Platforms Launch",
		"Music Awards Show Celebrates Best Artists of the Year",
		"Celebrity Couple Announces Engagement to Fans",
		"Hit TV Series Returns for Highly Anticipated Final Season",
		"Concert Tour Sells Out Stadiums Across the Globe",
		"Indie Film Festival Showcases Emerging Talent",
		"Podcast Industry Boom Continues with New Content",
		"Video Game Release Breaks Sales Records on Launch Day",
		"Broadway Show Revival Earns Rave Reviews from Critics",
	},
	{
		"Major Policy Reform Passes Congress with Bipartisan Support",
		"Election Results Reshape Political Landscape Nationwide",
		"International Summit Addresses Global Climate Challenges",
		"Healthcare Legislation Debate Continues in Senate",
		"Immigration Policy Changes Take Effect This Month",
		"State Governors Meet to Discuss Infrastructure Priorities",
		"Supreme Court Ruling Sets New Legal Precedent",
		"Campaign Finance Reform Gains Momentum in Congress",
		"Foreign Relations Shift Following Diplomatic Meetings",
		"Local Elections See Record Voter Turnout Numbers",
	},
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func NewFallback() *Fallback {
	f := &Fallback{categories: fallbackCategories}

	now := time.Now()
	id := 0
	for catIdx, titles := range fallbackTitles {
		for daysAgo, title := range titles {
			id++
			article := generateArticle(id, title, f.categories[catIdx], now.AddDate(0, 0, -daysAgo))
			f.articles = append(f.articles, article)
			if daysAgo == 0 {
				f.featured = append(f.featured, article)
			}
		}
	}

	f.trending = append([]Article(nil), f.articles...)
	sort.SliceStable(f.trending, func(i, j int) bool {
		return f.trending[i].Views > f.trending[j].Views
	})

	f.latest = append([]Article(nil), f.articles...)
	sort.SliceStable(f.latest, func(i, j int) bool {
		return f.latest[i].PublishedAt.After(f.latest[j].PublishedAt)
	})

	return f
}

func generateArticle(id int, title string, category Category, publishedAt time.Time) Article {
	authorIdx := id % len(fallbackAuthorNames)
	idStr := strconv.Itoa(id)

	return Article{
		ID:      idStr,
		Title:   title,
		Slug:    slugify(title),
		Excerpt: fmt.Sprintf("This is a compelling story about %s. Read more to discover the latest insights and analysis on this topic.", strings.ToLower(title)),
		Content: fmt.Sprintf(`<p>Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.</p>
<p>Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.</p>
<h2>Key Highlights</h2>
<p>Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur.</p>
<ul>
  <li>Important point about %s</li>
  <li>Analysis and insights</li>
  <li>Expert opinions</li>
</ul>
<p>Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.</p>`, category.Name),
		FeaturedImage:    fmt.Sprintf("https://picsum.photos/seed/%s/800/450", idStr),
		FeaturedImageAlt: title,
		Category:         category,
		Tags: []Tag{
			{ID: "tag-" + category.ID + "-1", Name: category.Name, Slug: category.Slug},
			{ID: "tag-" + category.ID + "-2", Name: "News", Slug: "news"},
		},
		Author: Author{
			ID:     strconv.Itoa(authorIdx + 1),
			Name:   fallbackAuthorNames[authorIdx],
			Slug:   slugify(fallbackAuthorNames[authorIdx]),
			Bio:    "Senior correspondent covering breaking news and in-depth analysis.",
			Avatar: "https://i.pravatar.cc/150?u=" + idStr,
		},
		PublishedAt:   publishedAt,
		UpdatedAt:     publishedAt,
		ReadTime:      rand.Intn(8) + 3,
		Views:         rand.Intn(10000) + 500,
		Likes:         rand.Intn(500) + 50,
		CommentsCount: rand.Intn(50) + 5,
		Status:        StatusPublished,
	}
}

func slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// Categories returns the six fixed categories in display order.
func (f *Fallback) Categories() []Category {
	return f.categories
}

// Featured returns one flagship article per category, in category order.
func (f *Fallback) Featured(limit int) []Article {
	return head(f.featured, limit, DefaultFeaturedLimit)
}

// Trending returns articles by view count, highest first.
func (f *Fallback) Trending(limit int) []Article {
	return head(f.trending, limit, DefaultTrendingLimit)
}

// Latest returns articles by publish date, newest first.
func (f *Fallback) Latest(limit int) []Article {
	return head(f.latest, limit, 12)
}

// Articles pages through the whole corpus, newest first.
func (f *Fallback) Articles(page, pageSize int) PaginatedResponse[Article] {
	return paginate(f.latest, page, pageSize)
}

// ByCategory pages through one category's articles. Unknown slugs yield
// an empty page, matching the live resolution-miss policy.
func (f *Fallback) ByCategory(slug string, page, pageSize int) PaginatedResponse[Article] {
	var matched []Article
	for _, a := range f.latest {
		if a.Category.Slug == slug {
			matched = append(matched, a)
		}
	}
	return paginate(matched, page, pageSize)
}

// Search matches the query against titles and excerpts, case-insensitive.
func (f *Fallback) Search(query string, page, pageSize int) PaginatedResponse[Article] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return paginate(nil, page, pageSize)
	}

	var matched []Article
	for _, a := range f.latest {
		if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Excerpt), q) {
			matched = append(matched, a)
		}
	}
	return paginate(matched, page, pageSize)
}

// CategoryBySlug returns the fixed category with the given slug, or nil.
func (f *Fallback) CategoryBySlug(slug string) *Category {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			c := f.categories[i]
			return &c
		}
	}
	return nil
}

// Authors returns the rotating correspondent roster.
func (f *Fallback) Authors() []Author {
	var (
		seen    = make(map[string]bool, len(fallbackAuthorNames))
		authors []Author
	)
	for _, a := range f.articles {
		if !seen[a.Author.ID] {
			seen[a.Author.ID] = true
			authors = append(authors, a.Author)
		}
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	return authors
}

func (f *Fallback) AuthorBySlug(slug string) *Author {
	for _, a := range f.Authors() {
		if a.Slug == slug {
			author := a
			return &author
		}
	}
	return nil
}

// ByAuthor pages through one author's articles, newest first.
func (f *Fallback) ByAuthor(slug string, page, pageSize int) PaginatedResponse[Article] {
	var matched []Article
	for _, a := range f.latest {
		if a.Author.Slug == slug {
			matched = append(matched, a)
		}
	}
	return paginate(matched, page, pageSize)
}

// Tags returns the distinct tags across the corpus.
func (f *Fallback) Tags() []Tag {
	var (
		seen = make(map[string]bool)
		tags []Tag
	)
	for _, a := range f.articles {
		for _, t := range a.Tags {
			if !seen[t.ID] {
				seen[t.ID] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// ByTag pages through articles carrying the tag, newest first.
func (f *Fallback) ByTag(slug string, page, pageSize int) PaginatedResponse[Article] {
	var matched []Article
	for _, a := range f.latest {
		for _, t := range a.Tags {
			if t.Slug == slug {
				matched = append(matched, a)
				break
			}
		}
	}
	return paginate(matched, page, pageSize)
}

// ArticleBySlug returns the fallback article with the given slug, or nil.
func (f *Fallback) ArticleBySlug(slug string) *Article {
	for i := range f.articles {
		if f.articles[i].Slug == slug {
			a := f.articles[i]
			return &a
		}
	}
	return nil
}

func head(articles []Article, limit, fallbackLimit int) []Article {
	if limit <= 0 {
		limit = fallbackLimit
	}
	if limit > len(articles) {
		limit = len(articles)
	}
	return append([]Article(nil), articles[:limit]...)
}

func paginate(articles []Article, page, pageSize int) PaginatedResponse[Article] {
	page, pageSize = normalizePage(page, pageSize)

	total := len(articles)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	data := append([]Article{}, articles[start:end]...)

	return PaginatedResponse[Article]{
		Data:       data,
		Pagination: NewPagination(page, pageSize, total, totalPages),
	}
}
