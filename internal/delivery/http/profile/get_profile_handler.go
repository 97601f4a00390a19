package profile_http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

type ProfileGetter interface {
	GetProfile(ctx context.Context, username string) (*model.User, error)
}

type ProfilePostsLister interface {
	ListPosts(ctx context.Context, viewer *model.Viewer, scope model.ListScope, page int) (*model.PostPage, error)
}

type GetProfileHandler struct {
	profileService ProfileGetter
	postService    ProfilePostsLister
}

func NewGetProfileHandler(profileService ProfileGetter, postService ProfilePostsLister) *GetProfileHandler {
	return &GetProfileHandler{
		profileService: profileService,
		postService:    postService,
	}
}

type ProfileResponse struct {
	User  *view.User     `json:"user"`
	Posts *view.PostPage `json:"posts"`
}

// Handle serves a profile page: the user plus their posts. When the
// owner looks at their own page the listing includes drafts and
// scheduled posts; everyone else sees only the public ones.
func (h *GetProfileHandler) Handle(c *gin.Context) {
	username := c.Param("username")

	user, err := h.profileService.GetProfile(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}

	page := 1
	if parsed, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page = parsed
	}

	viewer := middleware.GetViewer(c)
	scope := model.ListScope{AuthorUsername: &username}

	posts, err := h.postService.ListPosts(c.Request.Context(), viewer, scope, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		User:  view.NewUser(user),
		Posts: view.NewPostPage(posts),
	})
}
