package content

import "html/template"

// Post is one blog article. Bodies are trusted editorial HTML, not user
// input.
type Post struct {
	Slug     string
	Title    string
	Excerpt  string
	Date     string
	ReadTime string
	Category string
	Body     template.HTML
}

// Guide is one evergreen guide page.
type Guide struct {
	Slug    string
	Title   string
	Excerpt string
	Body    template.HTML
}

// Posts returns the blog registry in display order.
func Posts() []Post {
	return posts
}

// PostBySlug resolves a blog article.
func PostBySlug(slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// Guides returns the guide registry in display order.
func Guides() []Guide {
	return guides
}

// GuideBySlug resolves a guide page.
func GuideBySlug(slug string) (Guide, bool) {
	for _, g := range guides {
		if g.Slug == slug {
			return g, true
		}
	}
	return Guide{}, false
}
