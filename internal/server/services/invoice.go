package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/northlink/selfcare/internal/common"
	sc "github.com/northlink/selfcare/internal/server/config"
	"github.com/northlink/selfcare/internal/server/models"
	"github.com/northlink/selfcare/internal/server/repositories/repomanager"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AWS SDK seams; tests swap these to avoid touching real object storage.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// InvoiceService lists a user's invoices and hands out short-lived
// presigned URLs for the invoice PDFs stored in S3-compatible storage.
type InvoiceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewInvoiceService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *InvoiceService {
	return &InvoiceService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// NewStorageKey builds the object key used when an invoice PDF is stored.
func NewStorageKey(userID string) string {
	d := time.Now()
	return fmt.Sprintf("invoices/%s/%d/%02d/%v.pdf", userID, d.Year(), d.Month(), uuid.New())
}

// List returns all invoices belonging to userID, newest first.
func (s *InvoiceService) List(ctx context.Context, userID string) ([]*models.Invoice, error) {
	repo := s.repomanager.Invoices(s.db)
	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// GetDownloadURL returns a presigned GET URL for the given invoice's PDF.
// Requesting someone else's invoice yields ErrorUnauthorized.
func (s *InvoiceService) GetDownloadURL(ctx context.Context, userID, invoiceID string) (string, error) {
	repo := s.repomanager.Invoices(s.db)

	invoice, err := repo.Get(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}
	if invoice.UserID != userID {
		return "", common.ErrorUnauthorized
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", common.ErrorInternal
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &invoice.StorageKey,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", common.ErrorInternal
	}

	return req.URL, nil
}

func (s *InvoiceService) getPresignClient() (*s3.PresignClient, error) {
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
