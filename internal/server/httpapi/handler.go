package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Name  *string `json:"name"`
	Email string  `json:"email" binding:"required"`
}

type createPostRequest struct {
	Title     string  `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
	AuthorID  *int64  `json:"authorId"`
}

func (s *HTTPServer) hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

func (s *HTTPServer) health(c *gin.Context) {
	if s.pinger != nil {
		if err := s.pinger.PingContext(c.Request.Context()); err != nil {
			s.logger.Warn(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := s.users.CreateUser(c.Request.Context(), models.UserCreateInput{Name: req.Name, Email: req.Email})
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Signed up", "id", user.ID)
	c.JSON(http.StatusOK, user)
}

func (s *HTTPServer) publishPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := s.posts.PublishPost(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *HTTPServer) getPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := s.posts.Post(c.Request.Context(), models.PostWhereUniqueInput{ID: id})
	if err != nil {
		s.fail(c, err)
		return
	}
	if post == nil {
		s.fail(c, fmt.Errorf("post %d: %w", id, common.ErrorNotFound))
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *HTTPServer) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	data := models.PostCreateInput{Title: req.Title, Content: req.Content, AuthorID: req.AuthorID}
	if req.Published != nil {
		data.Published = *req.Published
	}

	post, err := s.posts.CreatePost(c.Request.Context(), data)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *HTTPServer) updatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var data models.PostUpdateInput
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}

	post, err := s.posts.UpdatePost(c.Request.Context(), models.PostUpdateArgs{
		Where: models.PostWhereUniqueInput{ID: id},
		Data:  data,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *HTTPServer) deletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := s.posts.DeletePost(c.Request.Context(), models.PostWhereUniqueInput{ID: id})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *HTTPServer) listPosts(c *gin.Context) {
	params, err := parseListQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	s.writePosts(c, params)
}

func (s *HTTPServer) feed(c *gin.Context) {
	published := true
	s.writePosts(c, models.FindManyPostsParams{
		Where:   &models.PostWhereInput{Published: &published},
		OrderBy: []models.PostOrderBy{{Field: models.PostFieldID, Direction: models.SortDesc}},
	})
}

func (s *HTTPServer) writePosts(c *gin.Context, params models.FindManyPostsParams) {
	posts, err := s.posts.Posts(c.Request.Context(), params)
	if err != nil {
		s.fail(c, err)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

// postID reads the :id path parameter, answering 400 itself when it is not
// an integer.
func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, fmt.Errorf("id %q: %w", c.Param("id"), common.ErrorInvalidQuery))
		return 0, false
	}
	return id, true
}
