package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidContent wraps every content validation failure.
var ErrInvalidContent = errors.New("invalid content")

//go:embed schema/post.schema.json
var postSchemaJSON string

var (
	postSchemaOnce sync.Once
	postSchema     *gojsonschema.Schema
	postSchemaErr  error
)

func compiledPostSchema() (*gojsonschema.Schema, error) {
	postSchemaOnce.Do(func() {
		postSchema, postSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(postSchemaJSON))
	})
	return postSchema, postSchemaErr
}

// validatePosts checks schema conformance and the collection invariants:
// unique ids and slugs, known categories, known icons.
func validatePosts(posts []Post) error {
	schema, err := compiledPostSchema()
	if err != nil {
		return fmt.Errorf("compile post schema: %w", err)
	}

	var errs []error
	ids := map[string]bool{}
	slugs := map[string]bool{}
	for i, p := range posts {
		where := fmt.Sprintf("post %d (%q)", i, p.Slug)

		res, err := schema.Validate(gojsonschema.NewGoLoader(p))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		} else if !res.Valid() {
			for _, e := range res.Errors() {
				errs = append(errs, fmt.Errorf("%s: %s", where, e.String()))
			}
		}

		if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", where, p.ID))
		}
		ids[p.ID] = true
		if slugs[p.Slug] {
			errs = append(errs, fmt.Errorf("%s: duplicate slug", where))
		}
		slugs[p.Slug] = true

		if !p.Category.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown category %q", where, p.Category))
		}
		if !HasIcon(p.IconName) {
			errs = append(errs, fmt.Errorf("%s: unknown icon %q", where, p.IconName))
		}
		if p.PublishedAt().IsZero() {
			errs = append(errs, fmt.Errorf("%s: date %q is not YYYY-MM-DD", where, p.Date))
		}
	}
	return joinInvalid(errs)
}

// Validate checks the parts of c that NewBlog does not: services, jobs and
// certifications.
func Validate(c *Catalog) error {
	if c.Blog == nil {
		return fmt.Errorf("%w: catalog has no blog", ErrInvalidContent)
	}

	var errs []error
	slugs := map[string]bool{}
	for _, s := range c.Services {
		if s.Slug == "" || s.Slug != Slugify(s.Slug) {
			errs = append(errs, fmt.Errorf("service %q: malformed slug", s.Slug))
		}
		if slugs[s.Slug] {
			errs = append(errs, fmt.Errorf("service %q: duplicate slug", s.Slug))
		}
		slugs[s.Slug] = true
		if !HasIcon(s.IconName) {
			errs = append(errs, fmt.Errorf("service %q: unknown icon %q", s.Slug, s.IconName))
		}
	}

	ids := map[string]bool{}
	for _, j := range c.Jobs {
		if j.ID == "" || j.Title == "" {
			errs = append(errs, fmt.Errorf("job %q: id and title are required", j.ID))
		}
		if ids[j.ID] {
			errs = append(errs, fmt.Errorf("job %q: duplicate id", j.ID))
		}
		ids[j.ID] = true
	}

	for _, cert := range c.Certifications {
		if !HasIcon(cert.IconName) {
			errs = append(errs, fmt.Errorf("certification %q: unknown icon %q", cert.Name, cert.IconName))
		}
	}
	return joinInvalid(errs)
}

func joinInvalid(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
}
