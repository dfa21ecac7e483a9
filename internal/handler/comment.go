package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/middleware"
	"github.com/user/cinema/internal/repository"
)

// commentForm 评论表单
type commentForm struct {
	Body string `form:"body"`
}

// Comments 评论墙页面
func (h *Handler) Comments(c *gin.Context) {
	comments, err := h.Repos.Comment.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "comments.html", h.RenderData(c, gin.H{
			"Title": "评论 - " + h.Config.SiteName,
			"Error": "加载评论失败",
		}))
		return
	}

	c.HTML(http.StatusOK, "comments.html", h.RenderData(c, gin.H{
		"Title":    "评论 - " + h.Config.SiteName,
		"Comments": comments,
	}))
}

// CreateComment 发表评论，作者取当前登录用户的显示名
func (h *Handler) CreateComment(c *gin.Context) {
	su := middleware.CurrentUser(c)
	if su == nil {
		c.Redirect(http.StatusFound, "/auth/login?redirect=/comments")
		return
	}

	var form commentForm
	c.ShouldBind(&form)

	if _, err := h.Repos.Comment.Create(su.Name, form.Body); err != nil {
		comments, _ := h.Repos.Comment.List()
		msg := "发表评论失败，请重试"
		if errors.Is(err, repository.ErrValidation) {
			msg = "评论内容不能为空，且不超过 200 字"
		}
		c.HTML(http.StatusOK, "comments.html", h.RenderData(c, gin.H{
			"Title":    "评论 - " + h.Config.SiteName,
			"Comments": comments,
			"Error":    msg,
		}))
		return
	}

	c.Redirect(http.StatusFound, "/comments")
}
