package service

import (
	"vidcat-go/internal/api/dto"
	"vidcat-go/internal/ledger"
	"vidcat-go/internal/model"
	"vidcat-go/internal/query"
)

type SearchService struct {
	engine *query.Engine
	likes  *ledger.Ledger
}

func NewSearchService(engine *query.Engine, likes *ledger.Ledger) *SearchService {
	return &SearchService{engine: engine, likes: likes}
}

// FindByTitle 按标题精确检索
func (s *SearchService) FindByTitle(title string) *dto.VideoListData {
	return s.buildListData(s.engine.FindByTitle(title))
}

// FindByDurationLessThan 检索时长严格小于阈值（毫秒）的视频
func (s *SearchService) FindByDurationLessThan(ms int64) *dto.VideoListData {
	return s.buildListData(s.engine.FindByDurationLessThan(ms))
}

func (s *SearchService) buildListData(videos []model.Video) *dto.VideoListData {
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		items = append(items, dto.VideoInfo{
			ID:          v.ID,
			Title:       v.Title,
			DurationMs:  v.DurationMs,
			ContentType: v.ContentType,
			DataURL:     v.DataURL,
			LikeCount:   s.likes.Count(v.ID),
		})
	}
	return &dto.VideoListData{Videos: items, Total: int64(len(items))}
}
