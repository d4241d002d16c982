package dto

// VideoUpsertRequest 视频元数据提交请求
//
// ID 省略或为 0 时由服务端分配；携带已有 ID 时按 ID 覆盖更新。
type VideoUpsertRequest struct {
	ID         int64  `json:"id" binding:"omitempty,gte=0"`
	Title      string `json:"title" binding:"required,min=1,max=200"`
	DurationMs int64  `json:"duration_ms" binding:"omitempty,gte=0"`
}

// VideoInfo 视频详情
type VideoInfo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	DurationMs  int64  `json:"duration_ms"`
	ContentType string `json:"content_type,omitempty"`
	DataURL     string `json:"data_url"`
	LikeCount   int64  `json:"like_count"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos []VideoInfo `json:"videos"`
	Total  int64       `json:"total"`
}

// UploadStatusData 二进制内容上传结果
type UploadStatusData struct {
	VideoID int64  `json:"video_id"`
	State   string `json:"state"`
}
