package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
)

// SendFeeReminders finds every active student with an outstanding balance
// and emails their guardian a per-quarter breakdown. Students without a
// guardian email on file are skipped; one failed send does not stop the
// run.
func SendFeeReminders(db *sql.DB) error {
	log.Println("Starting fee reminder run...")

	engine := feecalc.NewEngine(database.NewStore(db), nil)
	ctx := context.Background()

	studentIDs, err := database.GetActiveStudentIDs(db)
	if err != nil {
		return fmt.Errorf("failed to list active students: %v", err)
	}

	defaulters := make([]*feecalc.StudentFeeDetails, 0)
	defaulterIDs := make([]string, 0)
	for _, id := range studentIDs {
		details, err := engine.ComputeStudentFeeDetails(ctx, id)
		if err != nil {
			log.Printf("Skipping student %s: %v", id, err)
			continue
		}
		if feecalc.HasOutstanding(details) {
			defaulters = append(defaulters, details)
			defaulterIDs = append(defaulterIDs, id)
		}
	}

	if len(defaulters) == 0 {
		log.Println("Fee reminder run completed. No outstanding balances.")
		return nil
	}

	contacts, err := database.GetGuardianContactsForStudents(db, defaulterIDs)
	if err != nil {
		return fmt.Errorf("failed to load guardian contacts: %v", err)
	}

	sent := 0
	for _, details := range defaulters {
		email, ok := contacts[details.Student.ID]
		if !ok {
			log.Printf("No guardian email for %s (%s), skipping", details.Student.FullName(), details.Student.AdmissionNumber)
			continue
		}

		if err := sendReminderEmail(email, details); err != nil {
			log.Printf("Failed to send reminder to %s: %v", email, err)
			continue
		}
		sent++
	}

	log.Printf("Fee reminder run completed. %d defaulters, %d reminders sent.", len(defaulters), sent)
	return nil
}

func buildReminderBody(details *feecalc.StudentFeeDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear Guardian,\r\n\r\n")
	fmt.Fprintf(&b, "This is a reminder that %s (admission no. %s) has outstanding school fees:\r\n\r\n",
		details.Student.FullName(), details.Student.AdmissionNumber)

	for _, qb := range details.Quarters {
		if !feecalc.IsDefaulter(qb) {
			continue
		}
		fmt.Fprintf(&b, "  %s %s: due Rs. %s, paid Rs. %s, balance Rs. %s",
			qb.QuarterName, qb.AcademicYear,
			qb.TotalDue.StringFixed(2), qb.AmountPaid.StringFixed(2), qb.Balance.StringFixed(2))
		if qb.IsOverdue {
			b.WriteString(" (overdue)")
		}
		b.WriteString("\r\n")
	}

	fmt.Fprintf(&b, "\r\nTotal outstanding: Rs. %s\r\n\r\n", details.TotalBalance.StringFixed(2))
	b.WriteString("Please clear the balance at the school office or through the parent portal.\r\n")
	return b.String()
}

func sendReminderEmail(to string, details *feecalc.StudentFeeDetails) error {
	cfg := config.GetSMTP()
	if cfg.Username == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	subject := fmt.Sprintf("Fee reminder for %s", details.Student.FullName())
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		cfg.From, to, subject, buildReminderBody(details))

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	return smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg))
}
