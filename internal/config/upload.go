package config

import (
	"os"
	"strconv"
	"sync"
)

const defaultMaxUploadSize int64 = 10 * 1024 * 1024

type UploadConfig struct {
	MaxFileSize int64
	OCREnabled  bool
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		maxSize := defaultMaxUploadSize
		if v, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64); err == nil && v > 0 {
			maxSize = v
		}
		ocr, _ := strconv.ParseBool(os.Getenv("OCR_ENABLED"))
		uploadConfig = &UploadConfig{
			MaxFileSize: maxSize,
			OCREnabled:  ocr,
		}
	})
	return uploadConfig
}
