package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	appconfig "github.com/caretrack/caretrack-backend/internal/config"
)

// Mailer sends notification emails. Registration and approval mails go
// through it; a disabled mailer drops them silently so the API keeps
// working without SES credentials.
type Mailer interface {
	Send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error
}

// SESMailer sends email through Amazon SES v2.
type SESMailer struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

func NewSESMailer(cfg *appconfig.Config) (*SESMailer, error) {
	if cfg.SESFromEmail == "" {
		slog.Info("email disabled: SES_FROM_EMAIL not configured")
		return &SESMailer{enabled: false}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	slog.Info("email enabled", "from", cfg.SESFromEmail, "region", cfg.AWSRegion)
	return &SESMailer{
		client:    sesv2.NewFromConfig(awsCfg),
		fromEmail: cfg.SESFromEmail,
		fromName:  cfg.SESFromName,
		enabled:   true,
	}, nil
}

func (m *SESMailer) Send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	if !m.enabled {
		slog.Info("skipping email send (mailer disabled)", "to", toEmail, "subject", subject)
		return nil
	}

	fromAddress := m.fromEmail
	if m.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}
