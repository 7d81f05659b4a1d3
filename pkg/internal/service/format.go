package service

import (
	"math"
	"strconv"
	"strings"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize 格式化字节数为人类可读文本，两位小数并去掉末尾 0，
// 例如 0 -> "0 Bytes"，1024 -> "1 KB"，2300000 -> "2.19 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	const k = 1024

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i < 0 {
		i = 0
	}

	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}

	v := float64(bytes) / math.Pow(k, float64(i))

	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	return s + " " + sizeUnits[i]
}

// CoarseFileType 将 MIME 类型归入粗分类 pdf/zip/image/other.
func CoarseFileType(contentType string) string {
	ct := strings.ToLower(contentType)

	switch {
	case strings.Contains(ct, "pdf"):
		return "pdf"
	case strings.Contains(ct, "zip"):
		return "zip"
	case strings.HasPrefix(ct, "image/"):
		return "image"
	default:
		return "other"
	}
}

// MIMEForFileType 下载时按粗分类反推 Content-Type.
func MIMEForFileType(fileType string) string {
	switch fileType {
	case "pdf":
		return "application/pdf"
	case "zip":
		return "application/zip"
	case "image":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
