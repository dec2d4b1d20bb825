package blog

import (
	"context"
	"fmt"
)

// Authors returns all author rows ordered by id.
// Returns an empty slice (not nil) when the table is empty.
func (s *Store) Authors(ctx context.Context) ([]Author, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email
		FROM authors
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	authors := []Author{}
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Email); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}

	return authors, nil
}

// Posts returns all post rows ordered by id.
// Returns an empty slice (not nil) when the table is empty.
func (s *Store) Posts(ctx context.Context) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, author_id, title
		FROM posts
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

// Comments returns all comment rows ordered by id.
// Returns an empty slice (not nil) when the table is empty.
func (s *Store) Comments(ctx context.Context) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, username
		FROM comments
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Username); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

// Counts returns the number of author, post, and comment rows.
func (s *Store) Counts(ctx context.Context) (authors, posts, comments int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM authors),
			(SELECT COUNT(*) FROM posts),
			(SELECT COUNT(*) FROM comments)
	`).Scan(&authors, &posts, &comments)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("count rows: %w", err)
	}
	return authors, posts, comments, nil
}
