package mailer

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Sender dispatches an outbound mail without blocking the caller.
type Sender interface {
	SendAsync(to, subject, body string)
}

// Mailer sends over SMTP with STARTTLS. Sends are fire-and-forget:
// failures are logged, never reported back to the admin who triggered
// the reply.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/plain", body)

		if err := m.dialer.DialAndSend(msg); err != nil {
			logrus.WithError(err).WithField("to", to).Warn("failed to send reply email")
			return
		}
		logrus.WithField("to", to).Info("reply email sent")
	}()
}
