// internal/notify/service.go
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	awsclients "quote-engine/internal/common/aws"
	"quote-engine/internal/common/logger"
	"quote-engine/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

var (
	ErrNotificationSendFailed = errors.New("NOTIFICATION_SEND_FAILED")
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Service struct {
	config      *Config
	logger      logger.Logger
	sesClient   SESService
	snsClient   SNSService
	templateMap map[string]map[string]interface{}
}

func NewService(config *Config, log logger.Logger) (*Service, error) {
	ctx := context.Background()

	sesClient, err := awsclients.NewSESClient(ctx, config.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("init SES client: %w", err)
	}
	snsClient, err := awsclients.NewSNSClient(ctx, config.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("init SNS client: %w", err)
	}

	return &Service{
		config:      config,
		logger:      log.WithFields(map[string]interface{}{"component": "notify"}),
		sesClient:   sesClient,
		snsClient:   snsClient,
		templateMap: loadTemplates(),
	}, nil
}

// NewServiceWithClients wires explicit SES/SNS clients, used in tests.
func NewServiceWithClients(config *Config, log logger.Logger, sesClient SESService, snsClient SNSService) *Service {
	return &Service{
		config:      config,
		logger:      log.WithFields(map[string]interface{}{"component": "notify"}),
		sesClient:   sesClient,
		snsClient:   snsClient,
		templateMap: loadTemplates(),
	}
}

// Dispatch sends the sales-team notifications for a new lead. Email goes out
// whenever the email channel is enabled; SMS only when the lead priority meets
// the configured threshold.
func (s *Service) Dispatch(ctx context.Context, notificationType string, input *Input) (*Result, error) {
	template, exists := s.templateMap[notificationType]
	if !exists {
		return nil, fmt.Errorf("template not found for type: %s", notificationType)
	}

	data := map[string]interface{}{
		"leadId":      input.LeadID,
		"contactName": input.ContactName,
		"email":       input.Email,
		"priority":    input.Priority,
		"score":       input.Score,
	}
	if input.Metadata != nil {
		for k, v := range input.Metadata {
			data[k] = v
		}
	}

	subject := renderTemplate(template["subject"].(string), data)
	body := renderTemplate(template["body"].(string), data)

	sentAt := time.Now().UTC().Format(time.RFC3339)
	notificationID := uuid.New().String()

	emailSent := false
	smsSent := false

	if s.config.EmailEnabled && s.config.SalesTeamEmail != "" {
		if err := s.sendEmail(ctx, s.config.SalesTeamEmail, subject, body); err != nil {
			s.logger.Error("email send failed", map[string]interface{}{
				"error":  err,
				"leadId": input.LeadID,
			})
			metrics.NotificationsSent.WithLabelValues("email", StatusFailed).Inc()
			return &Result{NotificationID: notificationID, Status: StatusFailed, SentAt: sentAt},
				fmt.Errorf("%w: %v", ErrNotificationSendFailed, err)
		}
		emailSent = true
		metrics.NotificationsSent.WithLabelValues("email", StatusSent).Inc()
	}

	if s.config.SMSEnabled && s.config.SalesPhone != "" && input.Priority == s.config.SMSPriorityThreshold {
		if err := s.sendSMS(ctx, s.config.SalesPhone, body); err != nil {
			s.logger.Error("SMS send failed", map[string]interface{}{
				"error":  err,
				"leadId": input.LeadID,
			})
			metrics.NotificationsSent.WithLabelValues("sms", StatusFailed).Inc()
			return &Result{NotificationID: notificationID, Status: StatusFailed, SentAt: sentAt},
				fmt.Errorf("%w: %v", ErrNotificationSendFailed, err)
		}
		smsSent = true
		metrics.NotificationsSent.WithLabelValues("sms", StatusSent).Inc()
	}

	status := StatusDisabled
	if emailSent || smsSent {
		status = StatusSent
	}

	return &Result{
		NotificationID: notificationID,
		Status:         status,
		SentAt:         sentAt,
	}, nil
}

func (s *Service) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := s.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
				Html: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.config.FromEmail),
	})
	return err
}

func (s *Service) sendSMS(ctx context.Context, to, message string) error {
	_, err := s.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}

// Simplified template rendering with placeholder removal for missing values
func renderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl

	for k, v := range data {
		placeholder := "{{" + k + "}}"
		value := ""
		if s, ok := v.(string); ok {
			value = s
		} else if i, ok := v.(int); ok {
			value = fmt.Sprintf("%d", i)
		} else if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Remove any remaining placeholders (missing values)
	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}

func loadTemplates() map[string]map[string]interface{} {
	return map[string]map[string]interface{}{
		TypeNewLead: {
			"subject": "New Quote Request ({{priority}} priority)",
			"body":    "Lead {{leadId}} requested a quote. Readiness score: {{score}}. Contact: {{contactName}} <{{email}}>.",
		},
		TypeLeadConfirmed: {
			"subject": "Your quote request was received",
			"body":    "Thank you {{contactName}}! Your request {{leadId}} has been recorded and our team will reach out shortly.",
		},
	}
}
