package httpapi

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/gin-gonic/gin"
)

// parseListQuery turns the /posts query string into listing params. Absent
// parameters stay nil; Where is only set when at least one filter is given.
func parseListQuery(c *gin.Context) (models.FindManyPostsParams, error) {
	var p models.FindManyPostsParams

	if v, ok := c.GetQuery("skip"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, invalid("skip", v)
		}
		p.Skip = &n
	}

	if v, ok := c.GetQuery("take"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, invalid("take", v)
		}
		p.Take = &n
	}

	if v, ok := c.GetQuery("cursor"); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return p, invalid("cursor", v)
		}
		p.Cursor = &models.PostWhereUniqueInput{ID: id}
	}

	var where models.PostWhereInput
	filtered := false

	if v, ok := c.GetQuery("published"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, invalid("published", v)
		}
		where.Published = &b
		filtered = true
	}

	if v, ok := c.GetQuery("authorId"); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return p, invalid("authorId", v)
		}
		where.AuthorID = &id
		filtered = true
	}

	if v, ok := c.GetQuery("title"); ok {
		where.Title = &v
		filtered = true
	}

	if filtered {
		p.Where = &where
	}

	if v, ok := c.GetQuery("orderBy"); ok {
		orderBy, err := models.ParsePostOrderBy(v)
		if err != nil {
			return p, fmt.Errorf("orderBy: %w: %w", common.ErrorInvalidQuery, err)
		}
		p.OrderBy = orderBy
	}

	return p, nil
}

func invalid(param, value string) error {
	return fmt.Errorf("%s %q: %w", param, value, common.ErrorInvalidQuery)
}
