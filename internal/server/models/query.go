package models

import (
	"fmt"
	"strings"
)

// SortOrder is the direction of an OrderBy term.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PostField names a sortable Post column.
type PostField string

const (
	PostFieldID        PostField = "id"
	PostFieldTitle     PostField = "title"
	PostFieldContent   PostField = "content"
	PostFieldPublished PostField = "published"
	PostFieldAuthorID  PostField = "authorId"
)

// PostOrderBy is one ordering term.
type PostOrderBy struct {
	Field     PostField
	Direction SortOrder
}

// FindManyPostsParams shapes a post listing. Every field is optional and a
// nil value means "let the store decide"; a non-nil Where with no predicates
// is an explicit empty filter and is kept distinct from nil.
type FindManyPostsParams struct {
	Skip    *int
	Take    *int
	Cursor  *PostWhereUniqueInput
	Where   *PostWhereInput
	OrderBy []PostOrderBy
}

// ParsePostOrderBy parses "field:dir" terms separated by commas, e.g.
// "published:desc,id:asc". The direction defaults to asc.
func ParsePostOrderBy(s string) ([]PostOrderBy, error) {
	var out []PostOrderBy
	for _, term := range strings.Split(s, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		name, dir, _ := strings.Cut(term, ":")
		field := PostField(strings.TrimSpace(name))
		if !field.Valid() {
			return nil, fmt.Errorf("unknown order field %q", name)
		}

		order := SortOrder(strings.ToLower(strings.TrimSpace(dir)))
		if order == "" {
			order = SortAsc
		}
		if order != SortAsc && order != SortDesc {
			return nil, fmt.Errorf("unknown order direction %q", dir)
		}

		out = append(out, PostOrderBy{Field: field, Direction: order})
	}
	return out, nil
}

// Valid reports whether f names a Post field.
func (f PostField) Valid() bool {
	switch f {
	case PostFieldID, PostFieldTitle, PostFieldContent, PostFieldPublished, PostFieldAuthorID:
		return true
	}
	return false
}
