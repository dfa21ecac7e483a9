package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Movies 电影列表页面
func (h *Handler) Movies(c *gin.Context) {
	movies, err := h.Repos.Movie.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "movies.html", h.RenderData(c, gin.H{
			"Title": "电影列表 - " + h.Config.SiteName,
			"Error": "加载电影列表失败",
		}))
		return
	}

	c.HTML(http.StatusOK, "movies.html", h.RenderData(c, gin.H{
		"Title":  "电影列表 - " + h.Config.SiteName,
		"Movies": movies,
	}))
}
