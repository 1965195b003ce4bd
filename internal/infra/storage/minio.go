package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type FileStorage struct {
	client    *minio.Client
	bucket    string
	endpoint  string
	publicURL string
}

var _ ObjectStore = (*FileStorage)(nil)

// NewFileStorage 初始化 MinIO 连接
// endpoint 内部连接用 ("minio:9000")，publicURL 外部展示用 ("http://localhost:9000")
func NewFileStorage(endpoint, publicURL, accessKey, secretKey, bucketName string) (*FileStorage, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false, // 本地开发通常用 HTTP (false), 生产环境用 HTTPS (true)
	})
	if err != nil {
		return nil, err
	}

	// 自动创建 Bucket (如果不存在)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, errBucket := minioClient.BucketExists(ctx, bucketName)
	if errBucket == nil && !exists {
		err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err == nil {
			// 只有创建成功才设置策略，否则文件无法直接访问
			policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucketName)
			_ = minioClient.SetBucketPolicy(ctx, bucketName, policy)
			zap.L().Info("bucket created", zap.String("bucket", bucketName))
		} else {
			// 记录错误但不 Panic，可能只是权限不足，但 Bucket 已经存在
			zap.L().Warn("failed to create bucket", zap.Error(err))
		}
	}

	return &FileStorage{
		client:    minioClient,
		bucket:    bucketName,
		endpoint:  endpoint,
		publicURL: publicURL,
	}, nil
}

func (s *FileStorage) Put(ctx context.Context, objectName string, size int64, reader io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.PublicURL(objectName), nil
}

func (s *FileStorage) Stat(ctx context.Context, objectName string) (ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Size: info.Size, ContentType: info.ContentType}, nil
}

func (s *FileStorage) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *FileStorage) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}

func (s *FileStorage) PublicURL(objectName string) string {
	// publicURL 可能带尾部斜杠，先去掉再手动拼接
	// 不用 path.Join，它会把 http:// 变成 http:/
	baseURL := strings.TrimRight(s.publicURL, "/")
	return fmt.Sprintf("%s/%s/%s", baseURL, s.bucket, objectName)
}
