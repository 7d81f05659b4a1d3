package service

import "testing"

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{1, "1 Bytes"},
		{500, "500 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2300000, "2.19 MB"},
		{10 * 1024 * 1024, "10 MB"},
		{1073741824, "1 GB"},
		// 超出 GB 的量级仍按 GB 展示
		{5 * 1024 * 1024 * 1024 * 1024, "5120 GB"},
	}

	for _, tc := range cases {
		if got := FormatFileSize(tc.bytes); got != tc.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestCoarseFileType(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"application/pdf", "pdf"},
		{"application/zip", "zip"},
		{"application/x-zip-compressed", "zip"},
		{"image/png", "image"},
		{"image/jpeg", "image"},
		{"text/plain", "other"},
		{"", "other"},
	}

	for _, tc := range cases {
		if got := CoarseFileType(tc.contentType); got != tc.want {
			t.Errorf("CoarseFileType(%q) = %q, want %q", tc.contentType, got, tc.want)
		}
	}
}

func TestMIMEForFileType(t *testing.T) {
	cases := []struct {
		fileType string
		want     string
	}{
		{"pdf", "application/pdf"},
		{"zip", "application/zip"},
		{"image", "image/jpeg"},
		{"other", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tc := range cases {
		if got := MIMEForFileType(tc.fileType); got != tc.want {
			t.Errorf("MIMEForFileType(%q) = %q, want %q", tc.fileType, got, tc.want)
		}
	}
}
