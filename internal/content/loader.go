package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const (
	blogDir     = "blog"
	careersFile = "careers.yaml"
)

// postMatter is the frontmatter of a blog markdown file.
type postMatter struct {
	ID       string `yaml:"id"`
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Author   Author `yaml:"author"`
	Date     string `yaml:"date"`
	ReadTime string `yaml:"readTime"`
	Category string `yaml:"category"`
	Icon     string `yaml:"icon"`
}

// filePost is a post read from disk. explicitID is false when the id was
// derived from the slug.
type filePost struct {
	Post
	explicitID bool
}

type careersDoc struct {
	Jobs []Job `yaml:"jobs"`
}

// Load returns the built-in catalog overlaid with the content found in dir:
// blog/*.md posts replace built-in posts with the same slug or are appended,
// and careers.yaml replaces the job listings. A missing dir is not an error.
func Load(dir string) (*Catalog, error) {
	cat := Default()
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return cat, nil
	}

	filePosts, err := readPosts(filepath.Join(dir, blogDir))
	if err != nil {
		return nil, err
	}
	if len(filePosts) > 0 {
		blog, err := NewBlog(mergePosts(cat.Blog.Posts(), filePosts))
		if err != nil {
			return nil, err
		}
		cat.Blog = blog
	}

	jobs, err := loadJobs(filepath.Join(dir, careersFile))
	if err != nil {
		return nil, err
	}
	if jobs != nil {
		cat.Jobs = jobs
	}

	if err := Validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// LoadPosts reads every .md file directly under dir, sorted by file name.
func LoadPosts(dir string) ([]Post, error) {
	fps, err := readPosts(dir)
	if err != nil {
		return nil, err
	}
	var posts []Post
	for _, fp := range fps {
		posts = append(posts, fp.Post)
	}
	return posts, nil
}

func readPosts(dir string) ([]filePost, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blog directory '%s': %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var posts []filePost
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := readPost(path)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func readPost(path string) (filePost, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return filePost{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var fm postMatter
	body, err := frontmatter.Parse(bytes.NewReader(fileBytes), &fm)
	if err != nil {
		return filePost{}, fmt.Errorf("failed to parse frontmatter of '%s': %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p := Post{
		ID:       fm.ID,
		Slug:     fm.Slug,
		Title:    fm.Title,
		Excerpt:  fm.Excerpt,
		Content:  strings.TrimSpace(string(body)),
		Author:   fm.Author,
		Date:     fm.Date,
		ReadTime: fm.ReadTime,
		Category: Category(fm.Category),
		IconName: fm.Icon,
	}
	if p.Slug == "" {
		p.Slug = Slugify(base)
	}
	if p.ID == "" {
		p.ID = p.Slug
	}
	if p.Title == "" {
		title := strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
		p.Title = cases.Title(language.Spanish).String(title)
	}
	return filePost{Post: p, explicitID: fm.ID != ""}, nil
}

// mergePosts overlays extra onto base by slug, keeping base order and
// appending new slugs. An override without its own id keeps the base id.
func mergePosts(base []Post, extra []filePost) []Post {
	index := make(map[string]int, len(base))
	for i, p := range base {
		index[p.Slug] = i
	}
	out := append([]Post(nil), base...)
	for _, fp := range extra {
		p := fp.Post
		if i, ok := index[p.Slug]; ok {
			if !fp.explicitID {
				p.ID = out[i].ID
			}
			out[i] = p
			continue
		}
		index[p.Slug] = len(out)
		out = append(out, p)
	}
	return out
}

// loadJobs returns nil, nil when path does not exist.
func loadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read careers file '%s': %w", path, err)
	}
	var doc careersDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error unmarshalling careers file %s: %w", path, err)
	}
	if doc.Jobs == nil {
		doc.Jobs = []Job{}
	}
	return doc.Jobs, nil
}
