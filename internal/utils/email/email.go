package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendLoanReminder sends an upcoming EMI payment reminder
func (s *Sender) SendLoanReminder(to, name string, loan models.Loan) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Upcoming EMI Payment: %s", loan.LoanName)

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your EMI of %.2f for %s is due on %s.\n"+
			"Remaining loan balance: %.2f.\n\n"+
			"Please ensure sufficient funds in your account.\n",
		name, loan.EMIAmount, loan.LoanName, loan.NextDueDate.Format("2006-01-02"), loan.RemainingAmount,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	s.logger.Infof("Loan reminder sent to %s for loan %d", to, loan.ID)
	return nil
}
