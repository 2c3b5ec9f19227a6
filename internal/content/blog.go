package content

import (
	"strings"
	"time"
)

// DefaultRelatedLimit is the related-post count used when no limit is given.
const DefaultRelatedLimit = 3

// DateLayout is the ISO calendar date format of Post.Date.
const DateLayout = "2006-01-02"

type Author struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role" yaml:"role"`
}

// Post is a blog article. Content is line-based markdown.
type Post struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   Author   `json:"author"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Category Category `json:"category"`
	IconName string   `json:"iconName"`
}

// PublishedAt parses Date. The zero time is returned for a malformed date.
func (p Post) PublishedAt() time.Time {
	t, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Permalink is the post's URL path.
func (p Post) Permalink() string { return "/blog/" + p.Slug }

// Blog is an immutable, insertion-ordered post collection.
type Blog struct {
	posts []Post
}

// NewBlog copies posts into a Blog after checking the collection invariants.
func NewBlog(posts []Post) (*Blog, error) {
	if err := validatePosts(posts); err != nil {
		return nil, err
	}
	return &Blog{posts: append([]Post(nil), posts...)}, nil
}

// MustBlog is NewBlog for package-level data; it panics on invalid posts.
func MustBlog(posts []Post) *Blog {
	b, err := NewBlog(posts)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of posts.
func (b *Blog) Len() int { return len(b.posts) }

// Posts returns a copy of the whole collection.
func (b *Blog) Posts() []Post {
	return append([]Post(nil), b.posts...)
}

// PostsByCategory returns the posts whose category equals c, in collection
// order. All returns every post; an unknown category yields an empty slice.
func (b *Blog) PostsByCategory(c Category) []Post {
	if c == All {
		return b.Posts()
	}
	out := []Post{}
	for _, p := range b.posts {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// PostBySlug returns the first post with the given slug.
func (b *Blog) PostBySlug(slug string) (Post, bool) {
	for _, p := range b.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// RelatedPosts returns up to limit posts sharing the category of the post
// identified by slug, excluding that post, in collection order. A zero limit
// yields an empty slice and a negative one means DefaultRelatedLimit. An
// unknown slug yields an empty slice.
func (b *Blog) RelatedPosts(slug string, limit int) []Post {
	if limit < 0 {
		limit = DefaultRelatedLimit
	}
	out := []Post{}
	current, ok := b.PostBySlug(slug)
	if !ok || limit == 0 {
		return out
	}
	for _, p := range b.posts {
		if len(out) == limit {
			break
		}
		if p.Slug != current.Slug && p.Category == current.Category {
			out = append(out, p)
		}
	}
	return out
}

// RelatedPostsDefault is RelatedPosts with DefaultRelatedLimit.
func (b *Blog) RelatedPostsDefault(slug string) []Post {
	return b.RelatedPosts(slug, DefaultRelatedLimit)
}

// CategoryCounts maps every category, All included, to its post count.
func (b *Blog) CategoryCounts() map[Category]int {
	counts := map[Category]int{All: len(b.posts)}
	for _, p := range b.posts {
		counts[p.Category]++
	}
	return counts
}

// Search keeps the posts whose title or excerpt contains query, ignoring
// case and accents. An empty query keeps everything.
func Search(posts []Post, query string) []Post {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return posts
	}
	out := []Post{}
	for _, p := range posts {
		if strings.Contains(fold(p.Title), q) || strings.Contains(fold(p.Excerpt), q) {
			out = append(out, p)
		}
	}
	return out
}

var defaultBlog = MustBlog(blogPosts)

// PostsByCategory queries the built-in collection.
func PostsByCategory(c Category) []Post { return defaultBlog.PostsByCategory(c) }

// PostBySlug queries the built-in collection.
func PostBySlug(slug string) (Post, bool) { return defaultBlog.PostBySlug(slug) }

// RelatedPosts queries the built-in collection.
func RelatedPosts(slug string, limit int) []Post { return defaultBlog.RelatedPosts(slug, limit) }

// RelatedPostsDefault queries the built-in collection with
// DefaultRelatedLimit.
func RelatedPostsDefault(slug string) []Post { return defaultBlog.RelatedPostsDefault(slug) }
