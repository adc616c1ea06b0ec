package clients

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ReportsClient represents info about the Amazon S3 client used for
// uploading CSV schedule reports
type ReportsClient struct {
	bucketName string
	region     string
	ctx        context.Context
	s3Logger   *zap.Logger
	s3Client   *s3.Client
}

// NewReportsClient returns ReportsClient
func NewReportsClient(ctx context.Context, accessKey, secretKey, bucket, region string, logger *zap.Logger) (*ReportsClient, error) {
	creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
	sdkConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(region), config.WithCredentialsProvider(creds))
	if err != nil {
		logger.Error("failed to load sdk config", zap.Error(err))
		return nil, err
	}
	s3Client := s3.NewFromConfig(sdkConfig)
	return &ReportsClient{
		bucketName: bucket,
		region:     region,
		ctx:        ctx,
		s3Logger:   logger,
		s3Client:   s3Client,
	}, nil
}

// UploadReport uploads a CSV report under the given object key
func (r *ReportsClient) UploadReport(fileName string, report []byte) error {
	_, err := r.s3Client.PutObject(r.ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(report),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		r.s3Logger.Error("failed to put object", zap.Error(err), zap.String("file_name", fileName))
		return err
	}

	return nil
}

// ListReports returns the object keys matching the given date prefix
func (r *ReportsClient) ListReports(date string) ([]string, error) {
	files := make([]string, 0)
	result, err := r.s3Client.ListObjectsV2(r.ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucketName),
	})
	if err != nil {
		r.s3Logger.Error("failed to list objects", zap.Error(err))
		return nil, err
	}
	for _, object := range result.Contents {
		if strings.Contains(*object.Key, date) {
			files = append(files, *object.Key)
		}
	}
	return files, nil
}

// DeleteReports deletes the given report objects from the bucket
func (r *ReportsClient) DeleteReports(fileNames []string) error {
	for _, fileName := range fileNames {
		_, err := r.s3Client.DeleteObject(r.ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(r.bucketName),
			Key:    aws.String(fileName),
		})
		if err != nil {
			r.s3Logger.Error("failed to delete file", zap.Error(err), zap.String("file_name", fileName))
			return err
		}
	}
	return nil
}
