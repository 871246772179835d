package types

// UploadImageResponse 图片上传结果
type UploadImageResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"` // OSS 路径
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}
