package handler

import (
	"strconv"

	"vidcat-go/internal/api/response"
	"vidcat-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// FindByTitle GET /api/v1/videos/search/findByTitle?title=
func (h *SearchHandler) FindByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.BadRequest(c, "缺少 title 参数")
		return
	}

	data := h.searchService.FindByTitle(title)
	response.OK(c, "检索完成", data)
}

// FindByDurationLessThan GET /api/v1/videos/search/findByDurationLessThan?duration=
func (h *SearchHandler) FindByDurationLessThan(c *gin.Context) {
	ms, err := strconv.ParseInt(c.Query("duration"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的 duration 参数（毫秒）")
		return
	}

	data := h.searchService.FindByDurationLessThan(ms)
	response.OK(c, "检索完成", data)
}
