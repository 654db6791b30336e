// Package models defines the records persisted by blogapi and the query
// shapes used to read and write them.
package models

// Post is the primary content entity.
type Post struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   *string `json:"content"`
	Published bool    `json:"published"`
	AuthorID  *int64  `json:"authorId"`
}

// PostWhereUniqueInput selects exactly one post.
type PostWhereUniqueInput struct {
	ID int64 `json:"id"`
}

// PostWhereInput is a conjunction of equality predicates. Nil fields do not
// take part in the filter, so the zero value matches every post.
type PostWhereInput struct {
	ID        *int64  `json:"id,omitempty"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
	AuthorID  *int64  `json:"authorId,omitempty"`
}

// PostCreateInput carries every Post field except the generated id.
// Published is a plain bool: leaving it out means false and the store
// writes that value explicitly.
type PostCreateInput struct {
	Title     string  `json:"title"`
	Content   *string `json:"content,omitempty"`
	Published bool    `json:"published"`
	AuthorID  *int64  `json:"authorId,omitempty"`
}

// PostUpdateInput lists the fields to change; nil or unset fields keep their
// value. Content and AuthorID can also be cleared to null.
type PostUpdateInput struct {
	Title     *string          `json:"title,omitempty"`
	Content   Nullable[string] `json:"content"`
	Published *bool            `json:"published,omitempty"`
	AuthorID  Nullable[int64]  `json:"authorId"`
}

// IsEmpty reports whether the update would change nothing.
func (in PostUpdateInput) IsEmpty() bool {
	return in.Title == nil && !in.Content.Set && in.Published == nil && !in.AuthorID.Set
}

// PostUpdateArgs pairs the selector with the fields to change.
type PostUpdateArgs struct {
	Where PostWhereUniqueInput
	Data  PostUpdateInput
}
