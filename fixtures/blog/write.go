package blog

import (
	"context"
	"fmt"
)

// InsertAuthor inserts an author row and returns the author as written.
// The email UNIQUE constraint and NOT NULL constraints surface as errors.
func (s *Store) InsertAuthor(ctx context.Context, a Author) (Author, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO authors (id, name, email)
		VALUES (?, ?, ?)
	`, a.ID, a.Name, a.Email)
	if err != nil {
		return Author{}, fmt.Errorf("insert author: %w", err)
	}
	return a, nil
}

// InsertPost inserts a post row and returns the post as written.
// The referenced author must already exist (foreign key constraint).
func (s *Store) InsertPost(ctx context.Context, p Post) (Post, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, author_id, title)
		VALUES (?, ?, ?)
	`, p.ID, p.AuthorID, p.Title)
	if err != nil {
		return Post{}, fmt.Errorf("insert post: %w", err)
	}
	return p, nil
}

// InsertComment inserts a comment row and returns the comment as written.
// The referenced post must already exist (foreign key constraint).
func (s *Store) InsertComment(ctx context.Context, c Comment) (Comment, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, username)
		VALUES (?, ?, ?)
	`, c.ID, c.PostID, c.Username)
	if err != nil {
		return Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return c, nil
}
