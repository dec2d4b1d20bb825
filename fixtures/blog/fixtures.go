package blog

import (
	"context"
	"fmt"

	"github.com/roach88/fabrik"
)

// Set owns the blog factories and the sequences that drive their defaults.
// Create one Set per test or seed run; sequences are not shared between Sets,
// so IDs and emails always start from 1 in a fresh Set.
type Set struct {
	Authors  *fabrik.Factory[Author, AuthorOverrides, *Store]
	Posts    *fabrik.Factory[Post, PostOverrides, *Store]
	Comments *fabrik.Factory[Comment, CommentOverrides, *Store]
}

// NewSet creates a fixture set with fresh sequences.
func NewSet() *Set {
	authorIDs := fabrik.NewSequence(func(n int) int64 { return int64(n) })
	authorNames := fabrik.NewSequence(func(n int) string { return fmt.Sprintf("Author %d", n) })
	authorEmails := fabrik.NewSequence(func(n int) string { return fmt.Sprintf("author%d@example.com", n) })

	postIDs := fabrik.NewSequence(func(n int) int64 { return int64(n) })
	postTitles := fabrik.NewSequence(func(n int) string { return fmt.Sprintf("Post %d", n) })

	commentIDs := fabrik.NewSequence(func(n int) int64 { return int64(n) })
	usernames := fabrik.NewSequence(func(n int) string { return fmt.Sprintf("user%d", n) })

	set := &Set{}

	set.Authors = fabrik.New(
		func(o AuthorOverrides, reg *fabrik.Registry[*Store]) Author {
			return Author{
				ID:    fabrik.OrFunc(o.ID, authorIDs.Next),
				Name:  fabrik.OrFunc(o.Name, authorNames.Next),
				Email: fabrik.OrFunc(o.Email, authorEmails.Next),
			}
		},
		func(ctx context.Context, store *Store, a Author) (Author, error) {
			return store.InsertAuthor(ctx, a)
		},
	)

	set.Posts = fabrik.New(
		func(o PostOverrides, reg *fabrik.Registry[*Store]) Post {
			return Post{
				ID: fabrik.OrFunc(o.ID, postIDs.Next),
				AuthorID: fabrik.OrFunc(o.AuthorID, func() int64 {
					return set.Authors.Associate(reg).ID
				}),
				Title: fabrik.OrFunc(o.Title, postTitles.Next),
			}
		},
		func(ctx context.Context, store *Store, p Post) (Post, error) {
			return store.InsertPost(ctx, p)
		},
	)

	set.Comments = fabrik.New(
		func(o CommentOverrides, reg *fabrik.Registry[*Store]) Comment {
			return Comment{
				ID: fabrik.OrFunc(o.ID, commentIDs.Next),
				PostID: fabrik.OrFunc(o.PostID, func() int64 {
					return set.Posts.Associate(reg).ID
				}),
				Username: fabrik.OrFunc(o.Username, usernames.Next),
			}
		},
		func(ctx context.Context, store *Store, c Comment) (Comment, error) {
			return store.InsertComment(ctx, c)
		},
	)

	return set
}
