package model

// Video 视频目录条目
//
// ID 为 0 表示尚未入库；注册表分配 ID 时一并计算 DataURL，
// 之后两者都不再改变。ContentType 在上传二进制内容时记录。
type Video struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	DurationMs  int64  `json:"duration_ms"`
	ContentType string `json:"content_type,omitempty"`
	DataURL     string `json:"data_url"`
}

// UploadStateReady 二进制内容已保存完毕，可以下载
const UploadStateReady = "READY"
