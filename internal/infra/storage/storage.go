package storage

import (
	"context"
	"io"
)

// ObjectInfo 是下载/校验需要的最小对象元信息
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// ObjectStore 是 handler 依赖的文件存储边界，生产实现是 MinIO，
// 测试里用内存实现。
type ObjectStore interface {
	// Put 上传对象，返回外部可访问的 URL
	Put(ctx context.Context, objectName string, size int64, reader io.Reader, contentType string) (string, error)
	// Stat 查询对象元信息，对象不存在时返回错误
	Stat(ctx context.Context, objectName string) (ObjectInfo, error)
	// Get 打开对象读取流，调用方负责 Close
	Get(ctx context.Context, objectName string) (io.ReadCloser, error)
	// Remove 删除对象
	Remove(ctx context.Context, objectName string) error
	// PublicURL 由对象名拼出外部访问地址
	PublicURL(objectName string) string
}
