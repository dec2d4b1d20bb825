package blog

// Author is a blog author. Authors have no dependencies of their own.
type Author struct {
	ID    int64
	Name  string
	Email string
}

// AuthorOverrides selects per-field values for manifesting an Author.
// Nil fields fall back to sequence-driven defaults.
type AuthorOverrides struct {
	ID    *int64
	Name  *string
	Email *string
}

// Post is a blog post written by an Author.
type Post struct {
	ID       int64
	AuthorID int64
	Title    string
}

// PostOverrides selects per-field values for manifesting a Post. A nil
// AuthorID associates a default Author.
type PostOverrides struct {
	ID       *int64
	AuthorID *int64
	Title    *string
}

// Comment is a comment left on a Post.
type Comment struct {
	ID       int64
	PostID   int64
	Username string
}

// CommentOverrides selects per-field values for manifesting a Comment. A nil
// PostID associates a default Post (which in turn associates a default
// Author).
type CommentOverrides struct {
	ID       *int64
	PostID   *int64
	Username *string
}
