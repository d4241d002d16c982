package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"vidcat-go/internal/api/dto"
	"vidcat-go/internal/content"
	"vidcat-go/internal/ledger"
	"vidcat-go/internal/model"
	"vidcat-go/internal/registry"
	"vidcat-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrVideoNotFound  = errors.New("视频不存在")
	ErrVideoNoContent = errors.New("该视频尚未上传内容")
)

type VideoService struct {
	registry *registry.Registry
	likes    *ledger.Ledger
	store    content.Store
}

func NewVideoService(reg *registry.Registry, likes *ledger.Ledger, store content.Store) *VideoService {
	return &VideoService{registry: reg, likes: likes, store: store}
}

// Upsert 保存视频元数据，返回服务端补全（ID、data_url）后的实体
func (s *VideoService) Upsert(req *dto.VideoUpsertRequest) *dto.VideoInfo {
	stored := s.registry.Upsert(model.Video{
		ID:         req.ID,
		Title:      req.Title,
		DurationMs: req.DurationMs,
	})
	return s.toVideoInfo(&stored)
}

// GetByID 获取单个视频
func (s *VideoService) GetByID(videoID int64) (*dto.VideoInfo, error) {
	v, err := s.registry.Get(videoID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.toVideoInfo(&v), nil
}

// List 获取全部视频的快照
func (s *VideoService) List() *dto.VideoListData {
	videos := s.registry.List()
	return s.buildVideoListData(videos)
}

// SaveContent 保存视频的二进制内容并记录其 MIME 类型
//
// 必须先确认视频已在注册表登记，内容存储本身不校验 ID 合法性。
func (s *VideoService) SaveContent(ctx context.Context, videoID int64, contentType string, r io.Reader) error {
	if !s.registry.Exists(videoID) {
		return ErrVideoNotFound
	}

	if err := s.store.Save(ctx, videoID, r); err != nil {
		logger.Error("Save video content failed",
			zap.Int64("video_id", videoID), zap.Error(err))
		return fmt.Errorf("保存视频内容失败: %w", err)
	}

	if err := s.registry.SetContentType(videoID, contentType); err != nil {
		// 注册表无删除操作，保存成功后条目必然存在
		return err
	}
	return nil
}

// DownloadContent 将视频内容流式写入 w
func (s *VideoService) DownloadContent(ctx context.Context, videoID int64, w io.Writer) error {
	if !s.registry.Exists(videoID) {
		return ErrVideoNotFound
	}

	if err := s.store.CopyTo(ctx, videoID, w); err != nil {
		if errors.Is(err, content.ErrContentNotFound) {
			return ErrVideoNoContent
		}
		logger.Error("Stream video content failed",
			zap.Int64("video_id", videoID), zap.Error(err))
		return fmt.Errorf("读取视频内容失败: %w", err)
	}
	return nil
}

// toVideoInfo 将 model.Video 转换为 dto.VideoInfo，点赞数取自账本
func (s *VideoService) toVideoInfo(v *model.Video) *dto.VideoInfo {
	return &dto.VideoInfo{
		ID:          v.ID,
		Title:       v.Title,
		DurationMs:  v.DurationMs,
		ContentType: v.ContentType,
		DataURL:     v.DataURL,
		LikeCount:   s.likes.Count(v.ID),
	}
}

func (s *VideoService) buildVideoListData(videos []model.Video) *dto.VideoListData {
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *s.toVideoInfo(&videos[i]))
	}
	return &dto.VideoListData{
		Videos: items,
		Total:  int64(len(items)),
	}
}
