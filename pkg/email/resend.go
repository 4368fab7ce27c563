package email

import (
	"fmt"
	"strings"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/models"
)

type EmailService struct {
	client    *resend.Client
	from      string
	fromName  string
	helpInbox string
	logger    *zap.Logger
}

func NewEmailService(apiKey, from, fromName, helpInbox string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		from:      from,
		fromName:  fromName,
		helpInbox: helpInbox,
		logger:    logger,
	}
}

func (s *EmailService) sender() string {
	return s.fromName + " <" + s.from + ">"
}

// SendHelpMessage forwards a help-center submission to the support inbox.
func (s *EmailService) SendHelpMessage(msg *models.HelpMessage) error {
	html := fmt.Sprintf(`
		<h2>New Message from Wedding Dream Help Center</h2>
		<p><strong>From:</strong> %s (%s)</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	`, msg.Name, msg.Email, msg.Subject, strings.ReplaceAll(msg.Message, "\n", "<br>"))

	text := fmt.Sprintf("New Message from Wedding Dream Help Center\n\nFrom: %s (%s)\nSubject: %s\n\nMessage:\n%s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message)

	params := &resend.SendEmailRequest{
		From:    s.sender(),
		To:      []string{s.helpInbox},
		ReplyTo: msg.Email,
		Subject: "Help Center: " + msg.Subject,
		Html:    html,
		Text:    text,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send help center email",
			zap.String("from", msg.Email),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("help center email sent",
		zap.String("from", msg.Email),
		zap.String("id", resp.Id),
	)
	return nil
}

func (s *EmailService) SendWelcomeEmail(to, username string) error {
	html := fmt.Sprintf(`
		<h2>Welcome to Wedding Dream, %s!</h2>
		<p>Your planning space is ready: checklist, guest list, budget, vendors and timeline, all in one place.</p>
		<p>Happy planning!</p>
	`, username)

	params := &resend.SendEmailRequest{
		From:    s.sender(),
		To:      []string{to},
		Subject: "Welcome to Wedding Dream!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send welcome email", zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("welcome email sent", zap.String("to", to), zap.String("id", resp.Id))
	return nil
}
