// Package testutil 提供各 handler 包测试共用的夹具：
// 内存 sqlite、内存对象存储、最小可用的 ServiceContext。
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"noteshare/config"
	"noteshare/internal/infra/storage"
	"noteshare/internal/models"
	"noteshare/internal/notifier"
	"noteshare/internal/svc"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB 每个测试一个独立的内存库
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试一个独立命名的内存库，cache=shared 让同进程多连接看到同一份
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserFollow{},
		&models.Bookmark{},
		&models.Note{},
		&models.Tag{},
		&models.NoteLike{},
		&models.Comment{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return db
}

// MemoryStore 是测试用的内存 ObjectStore
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string

	// PutErr 不为 nil 时 Put 直接失败，用来测上传后的清理路径
	PutErr error
}

var _ storage.ObjectStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (m *MemoryStore) Put(_ context.Context, objectName string, _ int64, reader io.Reader, contentType string) (string, error) {
	if m.PutErr != nil {
		return "", m.PutErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectName] = data
	m.types[objectName] = contentType
	return m.PublicURL(objectName), nil
}

func (m *MemoryStore) Stat(_ context.Context, objectName string) (storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[objectName]
	if !ok {
		return storage.ObjectInfo{}, fmt.Errorf("object %s not found", objectName)
	}
	return storage.ObjectInfo{Size: int64(len(data)), ContentType: m.types[objectName]}, nil
}

func (m *MemoryStore) Get(_ context.Context, objectName string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[objectName]
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectName)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryStore) Remove(_ context.Context, objectName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, objectName)
	delete(m.types, objectName)
	return nil
}

func (m *MemoryStore) PublicURL(objectName string) string {
	return "http://storage.test/bucket/" + objectName
}

// Has 断言对象在不在存储里
func (m *MemoryStore) Has(objectName string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[objectName]
	return ok
}

// Len 存储里的对象数
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// NewSvc 组一个测试用 ServiceContext：内存库 + 内存存储 + 直写通知
func NewSvc(t *testing.T) (*svc.ServiceContext, *MemoryStore) {
	t.Helper()

	db := NewTestDB(t)
	store := NewMemoryStore()
	cfg := &config.Config{
		AppEnv:            "dev",
		JWTSecretKey:      "test-secret",
		JWTIssuer:         "noteshare-test",
		JWTExpirationTime: time.Hour,
	}

	return &svc.ServiceContext{
		Config:   cfg,
		DB:       db,
		Storage:  store,
		Notifier: notifier.New(db),
	}, store
}

// SeedUser 建一个测试用户
func SeedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "$2a$10$GEQiXL4aHrIS45nS7rX2CuL1llWMjODyqHvA1GCyh9PZuULV1DsnS", // "secret"
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// SeedNote 建一篇测试笔记
func SeedNote(t *testing.T, db *gorm.DB, store *MemoryStore, author models.User, title string, tags ...string) models.Note {
	t.Helper()

	tagModels := make([]models.Tag, 0, len(tags))
	for _, name := range tags {
		var tag models.Tag
		require.NoError(t, db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error)
		tagModels = append(tagModels, tag)
	}

	objectName := fmt.Sprintf("notes/%s.pdf", title)
	if store != nil {
		_, err := store.Put(context.Background(), objectName, 4, bytes.NewReader([]byte("data")), "application/pdf")
		require.NoError(t, err)
	}

	note := models.Note{
		AuthorID:    author.ID,
		Title:       title,
		Description: "notes about " + title,
		FilePath:    objectName,
		FileType:    "PDF",
		FileSize:    4,
		Tags:        tagModels,
	}
	require.NoError(t, db.Create(&note).Error)
	return note
}

// CountNotifications 某个用户收到的通知数
func CountNotifications(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}
