package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ndmitriev/memora/internal/server/config"
	"github.com/ndmitriev/memora/internal/server/models"
	"github.com/ndmitriev/memora/internal/server/repositories/repomanager"
)

// Seams for the AWS SDK, replaceable in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const presignValidity = 15 * time.Minute

// AttachmentService manages note attachments. Payload bytes move directly
// between the client and the S3-compatible store via presigned URLs; the
// server only records metadata.
type AttachmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewAttachmentService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AttachmentService {
	return &AttachmentService{db: db, repomanager: m, config: cfg}
}

// randomStorageKey spreads objects by date so bucket listings stay usable.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("notes/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *AttachmentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// CreateUpload verifies note ownership, records the attachment, and returns
// it together with a presigned PUT URL the client uploads to.
func (s *AttachmentService) CreateUpload(ctx context.Context, userID, noteID, filename string) (*models.Attachment, string, error) {
	// ownership check doubles as existence check
	if _, err := s.repomanager.Notes(s.db).Get(ctx, noteID, userID); err != nil {
		return nil, "", err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, "", err
	}

	bucket := s.config.S3Bucket
	key := randomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return nil, "", err
	}

	att, err := s.repomanager.Attachments(s.db).Create(ctx, &models.Attachment{
		NoteID:     noteID,
		UserID:     userID,
		StorageKey: key,
		Filename:   filename,
	})
	if err != nil {
		return nil, "", err
	}

	return att, req.URL, nil
}

// List returns the attachments recorded for a note owned by userID.
func (s *AttachmentService) List(ctx context.Context, userID, noteID string) ([]*models.Attachment, error) {
	if _, err := s.repomanager.Notes(s.db).Get(ctx, noteID, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Attachments(s.db).ListByNote(ctx, noteID, userID)
}

// DownloadURL returns a presigned GET URL for an attachment the user owns.
func (s *AttachmentService) DownloadURL(ctx context.Context, userID, noteID, storageKey string) (string, error) {
	if _, err := s.repomanager.Attachments(s.db).GetByKey(ctx, noteID, userID, storageKey); err != nil {
		return "", err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &storageKey,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
