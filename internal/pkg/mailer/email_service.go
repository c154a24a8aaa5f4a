package mailer

import (
	"fmt"
	"html"
	"strings"

	"afrimigrate-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

// Notice is one line-item summary sent to the support desk.
type Notice struct {
	Subject string
	Heading string
	Fields  [][2]string
}

type IEmailService interface {
	SendNotice(toEmail string, notice Notice) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	dialer      sender
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	return newEmailService(gomail.NewDialer(host, port, username, password), username, senderName, log)
}

func newEmailService(d sender, senderEmail, senderName string, log logger.ILogger) *emailService {
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) SendNotice(toEmail string, notice Notice) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", notice.Subject)
	m.SetBody("text/plain", renderText(notice))
	m.AddAlternative("text/html", renderHTML(notice))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send notice", map[string]interface{}{"to": toEmail, "subject": notice.Subject, "error": err})
		return err
	}

	s.logger.Info("MAILER", "Notice sent", map[string]interface{}{"to": toEmail, "subject": notice.Subject})
	return nil
}

func renderText(n Notice) string {
	var b strings.Builder
	b.WriteString(n.Heading)
	b.WriteString("\n\n")
	for _, f := range n.Fields {
		fmt.Fprintf(&b, "%s: %s\n", f[0], f[1])
	}
	return b.String()
}

func renderHTML(n Notice) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">`)
	fmt.Fprintf(&b, "<h2>%s</h2><table>", html.EscapeString(n.Heading))
	for _, f := range n.Fields {
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", html.EscapeString(f[0]), html.EscapeString(f[1]))
	}
	b.WriteString("</table></div>")
	return b.String()
}
