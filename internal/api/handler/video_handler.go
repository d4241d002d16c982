package handler

import (
	"errors"
	"strconv"

	"vidcat-go/internal/api/dto"
	"vidcat-go/internal/api/response"
	"vidcat-go/internal/model"
	"vidcat-go/internal/service"
	"vidcat-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List GET /api/v1/videos
func (h *VideoHandler) List(c *gin.Context) {
	data := h.videoService.List()
	response.OK(c, "获取视频列表成功", data)
}

// Upsert POST /api/v1/videos
func (h *VideoHandler) Upsert(c *gin.Context) {
	var req dto.VideoUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info := h.videoService.Upsert(&req)
	response.OK(c, "保存视频成功", info)
}

// GetByID GET /api/v1/videos/:id
func (h *VideoHandler) GetByID(c *gin.Context) {
	videoID, err := parseVideoID(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	info, err := h.videoService.GetByID(videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "获取视频详情成功", info)
}

// UploadData POST /api/v1/videos/:id/data（multipart 字段 data）
func (h *VideoHandler) UploadData(c *gin.Context) {
	videoID, err := parseVideoID(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	file, err := c.FormFile("data")
	if err != nil {
		response.BadRequest(c, "请在 data 字段中上传视频内容")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	f, err := file.Open()
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer f.Close()

	if err := h.videoService.SaveContent(c.Request.Context(), videoID, contentType, f); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "视频内容上传成功", dto.UploadStatusData{
		VideoID: videoID,
		State:   model.UploadStateReady,
	})
}

// DownloadData GET /api/v1/videos/:id/data
func (h *VideoHandler) DownloadData(c *gin.Context) {
	videoID, err := parseVideoID(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	info, err := h.videoService.GetByID(videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	// 首个字节写出时响应头即定稿，必须先设置
	c.Header("Content-Type", contentType)

	if err := h.videoService.DownloadContent(c.Request.Context(), videoID, c.Writer); err != nil {
		if c.Writer.Written() {
			// 流已写出一部分，只能记录后中断
			logger.Error("Download aborted mid-stream",
				zap.Int64("video_id", videoID), zap.Error(err))
			return
		}
		c.Writer.Header().Del("Content-Type")
		handleVideoError(c, err)
	}
}

func parseVideoID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNoContent):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyLiked):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotLiked):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
