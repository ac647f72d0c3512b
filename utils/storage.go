package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Storage uploads listing images to an S3-compatible object store.
type S3Storage struct {
	bucket        string
	region        string
	endpoint      string
	accessKey     string
	secretKey     string
	publicBaseURL string
}

func NewS3Storage(bucket, region, endpoint, accessKey, secretKey, publicBaseURL string) *S3Storage {
	return &S3Storage{
		bucket:        bucket,
		region:        region,
		endpoint:      endpoint,
		accessKey:     accessKey,
		secretKey:     secretKey,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *S3Storage) client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(s.region),
		Endpoint: aws.String(s.endpoint),
		Credentials: credentials.NewStaticCredentials(
			s.accessKey, s.secretKey, "",
		),
	}))
	return s3.New(sess)
}

// UploadFile stores the file under folder/fileName and returns its public URL.
func (s *S3Storage) UploadFile(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, filePath), nil
}
