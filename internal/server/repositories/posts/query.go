package posts

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

const postColumns = "id, title, content, published, author_id"

var columnByField = map[models.PostField]string{
	models.PostFieldID:        "id",
	models.PostFieldTitle:     "title",
	models.PostFieldContent:   "content",
	models.PostFieldPublished: "published",
	models.PostFieldAuthorID:  "author_id",
}

var nullableColumns = map[string]bool{
	"content":   true,
	"author_id": true,
}

// textColumns sort by byte value regardless of the database collation, which
// is also how the in-memory repository compares strings.
var textColumns = map[string]bool{
	"title":   true,
	"content": true,
}

// sortExpr is the expression a column is ordered and compared by.
func sortExpr(alias, column string) string {
	if textColumns[column] {
		return alias + "." + column + ` COLLATE "C"`
	}
	return alias + "." + column
}

type sortKey struct {
	column string
	desc   bool
}

// sortKeys turns OrderBy into columns and appends id as the tie-breaker
// unless it is already present. The tie-breaker follows the direction of the
// last term.
func sortKeys(order []models.PostOrderBy) ([]sortKey, error) {
	keys := make([]sortKey, 0, len(order)+1)
	hasID := false
	desc := false

	for _, o := range order {
		column, ok := columnByField[o.Field]
		if !ok {
			return nil, fmt.Errorf("order by %q: %w", o.Field, common.ErrorInvalidQuery)
		}
		switch o.Direction {
		case models.SortAsc, "":
			desc = false
		case models.SortDesc:
			desc = true
		default:
			return nil, fmt.Errorf("order direction %q: %w", o.Direction, common.ErrorInvalidQuery)
		}
		keys = append(keys, sortKey{column: column, desc: desc})
		if column == "id" {
			hasID = true
		}
	}

	if !hasID {
		keys = append(keys, sortKey{column: "id", desc: desc})
	}
	return keys, nil
}

type sqlBuilder struct {
	sb   strings.Builder
	args []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// buildFindMany renders a FindManyPostsParams into a single SELECT.
//
// The cursor row is cross joined as "c"; a missing cursor row therefore
// produces an empty result. The window starts at the cursor using a
// lexicographic comparison over the sort keys.
func buildFindMany(p models.FindManyPostsParams) (string, []any, error) {
	if p.Skip != nil && *p.Skip < 0 {
		return "", nil, fmt.Errorf("skip %d: %w", *p.Skip, common.ErrorInvalidQuery)
	}
	if p.Take != nil && *p.Take < 0 {
		return "", nil, fmt.Errorf("take %d: %w", *p.Take, common.ErrorInvalidQuery)
	}

	keys, err := sortKeys(p.OrderBy)
	if err != nil {
		return "", nil, err
	}

	b := &sqlBuilder{}
	b.sb.WriteString("SELECT p.id, p.title, p.content, p.published, p.author_id FROM posts p")

	var conds []string

	if p.Cursor != nil {
		fmt.Fprintf(&b.sb, " CROSS JOIN (SELECT %s FROM posts WHERE id = %s) c", postColumns, b.arg(p.Cursor.ID))
		conds = append(conds, cursorCondition(keys))
	}

	if w := p.Where; w != nil {
		if w.ID != nil {
			conds = append(conds, "p.id = "+b.arg(*w.ID))
		}
		if w.Title != nil {
			conds = append(conds, "p.title = "+b.arg(*w.Title))
		}
		if w.Content != nil {
			conds = append(conds, "p.content = "+b.arg(*w.Content))
		}
		if w.Published != nil {
			conds = append(conds, "p.published = "+b.arg(*w.Published))
		}
		if w.AuthorID != nil {
			conds = append(conds, "p.author_id = "+b.arg(*w.AuthorID))
		}
	}

	if len(conds) > 0 {
		b.sb.WriteString(" WHERE ")
		b.sb.WriteString(strings.Join(conds, " AND "))
	}

	order := make([]string, len(keys))
	for i, k := range keys {
		dir := "ASC"
		if k.desc {
			dir = "DESC"
		}
		order[i] = sortExpr("p", k.column) + " " + dir
	}
	b.sb.WriteString(" ORDER BY ")
	b.sb.WriteString(strings.Join(order, ", "))

	if p.Take != nil {
		b.sb.WriteString(" LIMIT " + b.arg(*p.Take))
	}
	if p.Skip != nil {
		b.sb.WriteString(" OFFSET " + b.arg(*p.Skip))
	}

	return b.sb.String(), b.args, nil
}

// cursorCondition renders "row >= cursor row" for the given ordering:
//
//	(k1 > c1) OR (k1 = c1 AND k2 > c2) OR ... OR (k1 = c1 AND ... AND kn >= cn)
//
// with > and < swapped for descending keys. The last key is id, so the final
// disjunct is inclusive.
func cursorCondition(keys []sortKey) string {
	disjuncts := make([]string, 0, len(keys))

	for i, k := range keys {
		parts := make([]string, 0, i+1)
		for _, prev := range keys[:i] {
			parts = append(parts, fmt.Sprintf("p.%[1]s IS NOT DISTINCT FROM c.%[1]s", prev.column))
		}

		if i == len(keys)-1 {
			op := ">="
			if k.desc {
				op = "<="
			}
			parts = append(parts, fmt.Sprintf("p.%[1]s %[2]s c.%[1]s", k.column, op))
		} else {
			parts = append(parts, after(k))
		}

		disjuncts = append(disjuncts, "("+strings.Join(parts, " AND ")+")")
	}

	return "(" + strings.Join(disjuncts, " OR ") + ")"
}

// after renders "p sorts strictly after c" on a single key. PostgreSQL puts
// NULLs last in ascending order and first in descending order, and nullable
// columns need that spelled out because comparisons with NULL are unknown.
func after(k sortKey) string {
	if !nullableColumns[k.column] {
		op := ">"
		if k.desc {
			op = "<"
		}
		return fmt.Sprintf("%s %s %s", sortExpr("p", k.column), op, sortExpr("c", k.column))
	}

	if k.desc {
		return fmt.Sprintf("p.%[1]s IS NOT NULL AND (c.%[1]s IS NULL OR %[2]s < %[3]s)", k.column, sortExpr("p", k.column), sortExpr("c", k.column))
	}
	return fmt.Sprintf("c.%[1]s IS NOT NULL AND (p.%[1]s IS NULL OR %[2]s > %[3]s)", k.column, sortExpr("p", k.column), sortExpr("c", k.column))
}
