package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/repository"
	"github.com/user/cinema/internal/service"
)

// loginForm 登录表单
type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	Redirect string `form:"redirect"`
}

// registerForm 注册表单
type registerForm struct {
	Name            string `form:"name" binding:"required"`
	Email           string `form:"email" binding:"required"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// ==================== 认证页面 ====================

// LoginPage 登录页面
func (h *Handler) LoginPage(c *gin.Context) {
	// 已登录直接跳转首页
	if sessions.Default(c).Get("userinfo") != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
		"Title":    "登录 - " + h.Config.SiteName,
		"Redirect": c.Query("redirect"),
	}))
}

// Login 登录处理
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
			"Title":    "登录 - " + h.Config.SiteName,
			"Redirect": form.Redirect,
			"Error":    "请填写邮箱和密码",
		}))
		return
	}

	redirect := form.Redirect
	if redirect == "" {
		redirect = "/"
	}

	su, token, err := h.Auth.Login(form.Email, form.Password)
	if err != nil {
		// 统一提示，不暴露邮箱是否存在
		c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
			"Title":    "登录 - " + h.Config.SiteName,
			"Redirect": form.Redirect,
			"Error":    "邮箱或密码错误",
		}))
		return
	}

	// 设置会话 Cookie
	c.SetCookie("token", token, int(h.Auth.TokenExpiry().Seconds()), "/", "", false, true)

	// 保存 UserInfo 到 Session
	session := sessions.Default(c)
	session.Set("userinfo", *su)
	session.Save()

	c.Redirect(http.StatusFound, redirect)
}

// RegisterPage 注册页面
func (h *Handler) RegisterPage(c *gin.Context) {
	if sessions.Default(c).Get("userinfo") != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "register.html", h.RenderData(c, gin.H{
		"Title": "注册 - " + h.Config.SiteName,
	}))
}

// Register 注册处理，成功后跳转登录页
func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegisterError(c, "请完整填写表单")
		return
	}

	if form.Password != form.ConfirmPassword {
		h.renderRegisterError(c, "两次输入的密码不一致")
		return
	}

	_, err := h.Auth.Register(service.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			h.renderRegisterError(c, "该邮箱已被注册，请直接登录")
		case errors.Is(err, repository.ErrValidation):
			h.renderRegisterError(c, "注册信息不合法，密码至少需要 6 个字符")
		default:
			h.renderRegisterError(c, "注册失败，请重试")
		}
		return
	}

	c.Redirect(http.StatusFound, "/auth/login")
}

func (h *Handler) renderRegisterError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "register.html", h.RenderData(c, gin.H{
		"Title": "注册 - " + h.Config.SiteName,
		"Error": msg,
	}))
}

// Logout 登出，重复调用不报错
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	// 清理 Session
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/auth/login")
}

// ==================== 管理员引导 ====================

// SetupAdminPage 首个管理员创建页面
// 系统已有管理员时只展示已初始化提示
func (h *Handler) SetupAdminPage(c *gin.Context) {
	initialized, err := h.Repos.User.HasAdmin()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "setup_admin.html", h.RenderData(c, gin.H{
			"Title": "初始化 - " + h.Config.SiteName,
			"Error": "系统错误，请重试",
		}))
		return
	}

	c.HTML(http.StatusOK, "setup_admin.html", h.RenderData(c, gin.H{
		"Title":       "初始化 - " + h.Config.SiteName,
		"Initialized": initialized,
	}))
}

// SetupAdmin 创建首个管理员
func (h *Handler) SetupAdmin(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderSetupError(c, "请完整填写表单")
		return
	}

	if form.Password != form.ConfirmPassword {
		h.renderSetupError(c, "两次输入的密码不一致")
		return
	}

	_, err := h.Auth.CreateBootstrapAdmin(service.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyInitialized):
			c.HTML(http.StatusOK, "setup_admin.html", h.RenderData(c, gin.H{
				"Title":       "初始化 - " + h.Config.SiteName,
				"Initialized": true,
				"Error":       "系统已存在管理员",
			}))
		case errors.Is(err, repository.ErrDuplicateEmail):
			h.renderSetupError(c, "该邮箱已被注册")
		case errors.Is(err, repository.ErrValidation):
			h.renderSetupError(c, "信息不合法，密码至少需要 6 个字符")
		default:
			h.renderSetupError(c, "创建失败，请重试")
		}
		return
	}

	c.Redirect(http.StatusFound, "/auth/login")
}

func (h *Handler) renderSetupError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "setup_admin.html", h.RenderData(c, gin.H{
		"Title": "初始化 - " + h.Config.SiteName,
		"Error": msg,
	}))
}
