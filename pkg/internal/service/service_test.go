package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/pressvault/pkg/configs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/storage/db"
)

var testDBSeq atomic.Int64

// newTestDB 每个测试一个独立的内存库，cache=shared 保证连接池内共享同一实例.
func newTestDB(t *testing.T) *db.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &db.Client{DB: gdb}
}

// fakeBlobStore 内存 blob 存储，可注入第 N 次写入失败.
type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	writes  int
	failAt  int // >0 时第 failAt 次 Write 返回错误
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (f *fakeBlobStore) Write(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.writes++
	if f.failAt > 0 && f.writes == f.failAt {
		return fmt.Errorf("injected write failure")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	f.objects[name] = data

	return nil
}

func (f *fakeBlobStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[name]
	if !ok {
		return nil, fmt.Errorf("object %s not found", name)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeBlobStore) Remove(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, name)

	return nil
}

func (f *fakeBlobStore) Exists(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.objects[name]

	return ok, nil
}

func (f *fakeBlobStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.objects)
}

func newTestArticleService(t *testing.T) (*ArticleService, *fakeBlobStore) {
	t.Helper()

	store := newFakeBlobStore()

	return &ArticleService{dbClient: newTestDB(t), blobs: store}, store
}

func testUploadConfig() configs.UploadConfig {
	return configs.UploadConfig{
		MaxFileSize:  10 * 1024 * 1024,
		MaxFileCount: 10,
		AllowedTypes: []string{
			"application/pdf", "application/zip", "image/jpeg", "image/png", "text/plain",
		},
	}
}

func newTestAttachmentService(t *testing.T, svc *ArticleService, store *fakeBlobStore) *AttachmentService {
	t.Helper()

	return &AttachmentService{
		dbClient: svc.dbClient,
		blobs:    store,
		bucket:   "test-bucket",
		cfg:      testUploadConfig(),
	}
}

func newTestAdminService(t *testing.T) *AdminService {
	t.Helper()

	return &AdminService{
		dbClient: newTestDB(t),
		cfg: configs.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: 1,
			BcryptCost:  bcrypt.MinCost,
		},
	}
}
