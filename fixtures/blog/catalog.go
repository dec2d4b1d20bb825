package blog

import (
	"github.com/roach88/fabrik/seed"
)

// Catalog exposes the set's factories to the seed runner under the names
// "author", "post", and "comment".
func Catalog(set *Set) *seed.Catalog[*Store] {
	c := seed.NewCatalog[*Store]()
	seed.Register(c, "author", set.Authors, bindAuthor)
	seed.Register(c, "post", set.Posts, bindPost)
	seed.Register(c, "comment", set.Comments, bindComment)
	return c
}

func bindAuthor(overrides map[string]any) (AuthorOverrides, error) {
	var o AuthorOverrides
	var err error
	if o.ID, err = seed.Int64Field(overrides, "id"); err != nil {
		return o, err
	}
	if o.Name, err = seed.StringField(overrides, "name"); err != nil {
		return o, err
	}
	if o.Email, err = seed.StringField(overrides, "email"); err != nil {
		return o, err
	}
	return o, nil
}

func bindPost(overrides map[string]any) (PostOverrides, error) {
	var o PostOverrides
	var err error
	if o.ID, err = seed.Int64Field(overrides, "id"); err != nil {
		return o, err
	}
	if o.AuthorID, err = seed.Int64Field(overrides, "author_id"); err != nil {
		return o, err
	}
	if o.Title, err = seed.StringField(overrides, "title"); err != nil {
		return o, err
	}
	return o, nil
}

func bindComment(overrides map[string]any) (CommentOverrides, error) {
	var o CommentOverrides
	var err error
	if o.ID, err = seed.Int64Field(overrides, "id"); err != nil {
		return o, err
	}
	if o.PostID, err = seed.Int64Field(overrides, "post_id"); err != nil {
		return o, err
	}
	if o.Username, err = seed.StringField(overrides, "username"); err != nil {
		return o, err
	}
	return o, nil
}
