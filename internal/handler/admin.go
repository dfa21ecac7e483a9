package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
	"github.com/user/cinema/internal/service"
	"github.com/user/cinema/internal/utils"
)

// movieForm 电影录入表单
type movieForm struct {
	Title       string `form:"title" binding:"required"`
	Author      string `form:"author" binding:"required"`
	Genre       string `form:"genre" binding:"required"`
	Duration    string `form:"duration" binding:"required"`
	ReleaseDate string `form:"release_date" binding:"required"`
	Budget      string `form:"budget" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// adminForm 追加管理员表单
type adminForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ==================== 管理后台 ====================

// AdminDashboard 管理面板
func (h *Handler) AdminDashboard(c *gin.Context) {
	userCount, _ := h.Repos.User.Count()
	movieCount, _ := h.Repos.Movie.Count()
	commentCount, _ := h.Repos.Comment.Count()

	c.HTML(http.StatusOK, "admin_dashboard.html", h.RenderData(c, gin.H{
		"Title":        "管理面板 - " + h.Config.SiteName,
		"UserCount":    userCount,
		"MovieCount":   movieCount,
		"CommentCount": commentCount,
	}))
}

// AdminUsers 用户管理页面
func (h *Handler) AdminUsers(c *gin.Context) {
	users, err := h.Repos.User.ListAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_users.html", h.RenderData(c, gin.H{
			"Title": "用户管理 - " + h.Config.SiteName,
			"Error": "加载用户列表失败",
		}))
		return
	}

	c.HTML(http.StatusOK, "admin_users.html", h.RenderData(c, gin.H{
		"Title": "用户管理 - " + h.Config.SiteName,
		"Users": users,
	}))
}

// AdminCreateAdmin 追加管理员账号
// 与引导入口不同，这里不受 HasAdmin 限制，由 RequireAdmin 把关
func (h *Handler) AdminCreateAdmin(c *gin.Context) {
	var form adminForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderAdminUsersError(c, "请完整填写表单")
		return
	}

	_, err := h.Auth.CreateAdmin(service.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			h.renderAdminUsersError(c, "该邮箱已被注册")
		case errors.Is(err, repository.ErrValidation):
			h.renderAdminUsersError(c, "信息不合法，密码至少需要 6 个字符")
		default:
			h.renderAdminUsersError(c, "创建失败，请重试")
		}
		return
	}

	c.Redirect(http.StatusFound, "/admin/users")
}

func (h *Handler) renderAdminUsersError(c *gin.Context, msg string) {
	users, _ := h.Repos.User.ListAll()
	c.HTML(http.StatusOK, "admin_users.html", h.RenderData(c, gin.H{
		"Title": "用户管理 - " + h.Config.SiteName,
		"Users": users,
		"Error": msg,
	}))
}

// ==================== 电影管理 ====================

// AdminMovieNew 电影录入页面
func (h *Handler) AdminMovieNew(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_movie_form.html", h.RenderData(c, gin.H{
		"Title": "录入电影 - " + h.Config.SiteName,
		"IsNew": true,
	}))
}

// AdminMovieCreate 录入电影
func (h *Handler) AdminMovieCreate(c *gin.Context) {
	var form movieForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "admin_movie_form.html", h.RenderData(c, gin.H{
			"Title": "录入电影 - " + h.Config.SiteName,
			"IsNew": true,
			"Error": "请完整填写表单",
		}))
		return
	}

	movie := &model.Movie{
		Title:       form.Title,
		Author:      form.Author,
		Genre:       form.Genre,
		Duration:    form.Duration,
		ReleaseDate: form.ReleaseDate,
		Budget:      form.Budget,
		Description: form.Description,
	}

	if err := h.Repos.Movie.Create(movie); err != nil {
		msg := "录入失败，请重试"
		switch {
		case errors.Is(err, repository.ErrDuplicateTitle):
			msg = "已存在同名电影"
		case errors.Is(err, repository.ErrValidation):
			msg = "电影信息不合法，简介不超过 200 字"
		}
		c.HTML(http.StatusOK, "admin_movie_form.html", h.RenderData(c, gin.H{
			"Title": "录入电影 - " + h.Config.SiteName,
			"IsNew": true,
			"Movie": movie,
			"Error": msg,
		}))
		return
	}

	c.Redirect(http.StatusFound, "/movies")
}

// AdminMovieEdit 电影编辑页面，标题不可修改
func (h *Handler) AdminMovieEdit(c *gin.Context) {
	movie, err := h.Repos.Movie.FindByTitle(c.Param("title"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.NotFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "admin_movie_form.html", h.RenderData(c, gin.H{
			"Title": "编辑电影 - " + h.Config.SiteName,
			"Error": "加载电影失败",
		}))
		return
	}

	c.HTML(http.StatusOK, "admin_movie_form.html", h.RenderData(c, gin.H{
		"Title": "编辑电影 - " + h.Config.SiteName,
		"IsNew": false,
		"Movie": movie,
	}))
}

// AdminMovieUpdate 更新电影（JSON API）
func (h *Handler) AdminMovieUpdate(c *gin.Context) {
	var fields repository.MovieUpdate
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "参数错误")
		return
	}

	movie, err := h.Repos.Movie.Update(c.Param("title"), fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "电影不存在")
		case errors.Is(err, repository.ErrValidation):
			utils.BadRequest(c, "电影信息不合法")
		default:
			utils.InternalServerError(c, "")
		}
		return
	}

	utils.Success(c, movie)
}

// AdminMovieDelete 删除电影（JSON API）
func (h *Handler) AdminMovieDelete(c *gin.Context) {
	if err := h.Repos.Movie.Delete(c.Param("title")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "电影不存在")
			return
		}
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "电影已删除", nil)
}

// ==================== 评论管理 ====================

// AdminCommentsClear 清空全部评论（JSON API），返回删除条数
func (h *Handler) AdminCommentsClear(c *gin.Context) {
	count, err := h.Repos.Comment.ClearAll()
	if err != nil {
		utils.InternalServerError(c, "清空评论失败")
		return
	}

	utils.Success(c, gin.H{"deleted": count})
}
