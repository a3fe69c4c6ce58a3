package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndmitriev/memora/internal/common"
	"github.com/ndmitriev/memora/internal/server/config"
	"github.com/ndmitriev/memora/internal/server/models"
)

func stubPresign(t *testing.T, putURL, getURL string) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPresign := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		newS3PresignClient = origPresign
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return nil
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: putURL + "/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: getURL + "/" + *in.Key}, nil
	}
}

func newAttachmentFixture(t *testing.T) (*AttachmentService, *fakeRepoManager) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := &fakeRepoManager{
		notes:       &fakeNotesRepo{getOut: &models.Note{ID: "n1", UserID: "u1"}},
		attachments: &fakeAttachmentsRepo{},
	}
	cfg := &config.Config{S3Bucket: "memora", S3Region: "us-east-1"}
	return NewAttachmentService(db, m, cfg), m
}

func TestCreateUpload(t *testing.T) {
	stubPresign(t, "https://s3.local/put", "https://s3.local/get")
	svc, m := newAttachmentFixture(t)

	att, url, err := svc.CreateUpload(context.Background(), "u1", "n1", "report.pdf")

	require.NoError(t, err)
	assert.Equal(t, "report.pdf", att.Filename)
	assert.Equal(t, "n1", att.NoteID)
	assert.NotEmpty(t, att.StorageKey)
	assert.Equal(t, "https://s3.local/put/"+att.StorageKey, url)
	assert.Equal(t, att.StorageKey, m.attachments.created.StorageKey)
}

func TestCreateUpload_NoteNotOwned(t *testing.T) {
	stubPresign(t, "https://s3.local/put", "https://s3.local/get")
	svc, m := newAttachmentFixture(t)
	m.notes.getErr = common.ErrorNotFound

	_, _, err := svc.CreateUpload(context.Background(), "u2", "n1", "report.pdf")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Nil(t, m.attachments.created)
}

func TestDownloadURL(t *testing.T) {
	stubPresign(t, "https://s3.local/put", "https://s3.local/get")
	svc, m := newAttachmentFixture(t)
	m.attachments.byKey = &models.Attachment{ID: "att1", StorageKey: "notes/k"}

	url, err := svc.DownloadURL(context.Background(), "u1", "n1", "notes/k")

	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/get/notes/k", url)
}

func TestDownloadURL_UnknownKey(t *testing.T) {
	stubPresign(t, "https://s3.local/put", "https://s3.local/get")
	svc, m := newAttachmentFixture(t)
	m.attachments.keyErr = common.ErrorNotFound

	_, err := svc.DownloadURL(context.Background(), "u1", "n1", "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
