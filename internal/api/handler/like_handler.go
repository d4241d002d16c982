package handler

import (
	"vidcat-go/internal/api/middleware"
	"vidcat-go/internal/api/response"
	"vidcat-go/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like POST /api/v1/videos/:id/like
func (h *LikeHandler) Like(c *gin.Context) {
	videoID, err := parseVideoID(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	data, err := h.likeService.Like(videoID, username)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "点赞成功", data)
}

// Unlike POST /api/v1/videos/:id/unlike
func (h *LikeHandler) Unlike(c *gin.Context) {
	videoID, err := parseVideoID(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	data, err := h.likeService.Unlike(videoID, username)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "取消点赞成功", data)
}

// LikedBy GET /api/v1/videos/:id/likedby
func (h *LikeHandler) LikedBy(c *gin.Context) {
	videoID, err := parseVideoID(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	data, err := h.likeService.UsersWhoLiked(videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "获取点赞用户成功", data)
}
