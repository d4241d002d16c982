package dto

// LikeStatusData 点赞/取消点赞后的最新状态
type LikeStatusData struct {
	VideoID   int64 `json:"video_id"`
	LikeCount int64 `json:"like_count"`
}

// LikedByData 点赞用户列表响应数据
type LikedByData struct {
	VideoID int64    `json:"video_id"`
	Users   []string `json:"users"`
	Total   int64    `json:"total"`
}
