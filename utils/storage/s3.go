package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/xalgrow/HRMS/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client
var s3Cfg config.StorageConfig
var presignClient *s3.PresignClient

// InitS3Client wires up the S3 client used for onboarding paperwork.
// Credentials come from the default provider chain (env locally, IAM role
// in production).
func InitS3Client() {
	s3Cfg = config.LoadStorageConfig()
	if !s3Cfg.Enabled() {
		log.Println("document storage disabled (AWS_S3_BUCKET not set)")
		return
	}

	cfg, err := aws_config.LoadDefaultConfig(context.Background(),
		aws_config.WithRegion(s3Cfg.Region),
	)
	if err != nil {
		log.Fatalf("failed to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	presignClient = s3.NewPresignClient(s3Client)

	log.Println("✅ AWS S3 client initialized. Bucket:", s3Cfg.Bucket)
}

// Enabled reports whether InitS3Client set up a working client.
func Enabled() bool {
	return s3Client != nil
}

// UploadFile stores an uploaded document under key and returns the key.
// Objects stay private; reads go through presigned URLs only.
func UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	uploader := manager.NewUploader(s3Client)

	uploadInput := &s3.PutObjectInput{
		Bucket:      aws.String(s3Cfg.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
		ACL:         types.ObjectCannedACLPrivate,
	}

	_, err = uploader.Upload(ctx, uploadInput)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return key, nil
}

// GetPresignedURL returns a time-limited URL for reading a stored document.
func GetPresignedURL(key string) (string, error) {
	req, err := presignClient.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s3Cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))

	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}
	return req.URL, nil
}

// DeleteFile removes an object from S3.
func DeleteFile(ctx context.Context, key string) error {
	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s3Cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete S3 object %s: %w", key, err)
	}
	return nil
}
