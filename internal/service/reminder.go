package service

import (
	"context"
	"fmt"
)

// SendDueLoanReminders emails every user holding an outstanding loan whose
// next due date falls within the configured reminder window. Individual
// delivery failures are logged and skipped; the scan itself failing is
// returned so the scheduler can log it.
func (s *Service) SendDueLoanReminders(ctx context.Context) error {
	if s.sender == nil {
		return fmt.Errorf("no reminder sender configured")
	}

	now := s.clock.Now()
	end := now.AddDate(0, 0, s.config.ReminderDays)
	loans, err := s.repo.ListLoansDueBetween(ctx, now, end)
	if err != nil {
		return fmt.Errorf("failed to scan due loans: %w", err)
	}

	sent := 0
	for _, loan := range loans {
		user, err := s.repo.FindUserByID(ctx, loan.UserID)
		if err != nil {
			s.log.Warnf("Skipping reminder for loan %d: %v", loan.ID, err)
			continue
		}
		if err := s.sender.SendLoanReminder(user.Email, user.Name, loan); err != nil {
			s.log.Warnf("Failed to send reminder for loan %d to %s: %v", loan.ID, user.Email, err)
			continue
		}
		sent++
	}

	s.log.Infof("Loan reminder run complete: %d due, %d sent", len(loans), sent)
	return nil
}
