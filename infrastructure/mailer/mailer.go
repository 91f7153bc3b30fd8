package mailer

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopping-alerter/internal/config"
	"github.com/vfg2006/shopping-alerter/internal/domain"
	"gopkg.in/gomail.v2"
)

// Sender envia mensagens de alerta. O envio é fire-and-forget: nenhuma
// confirmação de entrega é consumida.
type Sender interface {
	Send(mail domain.Mail) error
}

type SMTPSender struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

func New(cfg *config.Config) Sender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
	}
}

func (s *SMTPSender) Send(mail domain.Mail) error {
	if len(mail.To) == 0 {
		return errors.New("nenhum destinatário configurado para o alerta")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.SMTP.From)
	msg.SetHeader("To", mail.To...)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	if mail.HTMLBody != "" {
		msg.AddAlternative("text/html", mail.HTMLBody)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "erro ao enviar e-mail de alerta")
	}

	logrus.WithFields(logrus.Fields{
		"subject":    mail.Subject,
		"recipients": len(mail.To),
	}).Info("E-mail de alerta enviado")

	return nil
}
