package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// ServiceImpl implements domain.NotificationService: email through SMTP,
// SMS through Twilio.
type ServiceImpl struct {
	mailer       *SMTPMailer
	twilioClient *twilio.RestClient
	fromNumber   string
}

// NewService creates a new notification service
func NewService(mailer *SMTPMailer, twilioSID, twilioToken, fromNumber string) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: twilioSID,
		Password: twilioToken,
	})

	return &ServiceImpl{
		mailer:       mailer,
		twilioClient: client,
		fromNumber:   fromNumber,
	}
}

// SendEmail implements domain.NotificationService
func (s *ServiceImpl) SendEmail(to, subject, body string) error {
	// If SMTP is not configured, log instead of sending
	if s.mailer == nil || s.mailer.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}
	return s.mailer.Send(to, subject, body)
}

// SendSMS implements domain.NotificationService
func (s *ServiceImpl) SendSMS(to, message string) error {
	// If credentials are not configured, log instead of sending
	if s.fromNumber == "" {
		fmt.Printf("[MOCK SMS] To: %s, Message: %s\n", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(message)

	_, err := s.twilioClient.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}
