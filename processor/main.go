package main

import (
	"fiber-ims/config"
	"fiber-ims/database"
	"fiber-ims/repositories"
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"
)

// Standalone reorder-alert processor. Run it from cron (or by hand)
// to mail purchasing every product whose stock has fallen to or below
// its reorder rule's minimum threshold.

func sendReorderNotification(toEmails []string, alerts []repositories.ReorderAlert) error {
	var rows strings.Builder
	for _, alert := range alerts {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>",
			alert.ProductID, alert.Quantity, alert.MinThreshold, alert.ReorderPoint))
	}

	subject := fmt.Sprintf("📦 Reorder alert: %d product(s) below threshold", len(alerts))
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Products below reorder threshold</h3>
				<table border="1" cellpadding="4">
					<tr><th>Product ID</th><th>Quantity</th><th>Min Threshold</th><th>Reorder Point</th></tr>
					%s
				</table>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Failed to send email:", err)
		return err
	}

	fmt.Println("✅ Reorder notification sent to:", toEmails)
	return nil
}

func main() {
	config.LoadConfig()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	fmt.Println("🚀 Reorder alert processor running...")

	alertRepo := repositories.NewAlertRepository(db)
	alerts, err := alertRepo.CheckReorderAlerts()
	if err != nil {
		log.Fatalf("Failed to check reorder alerts: %v", err)
	}

	if len(alerts) == 0 {
		fmt.Println("✅ No products below reorder threshold")
		return
	}

	if len(config.AlertRecipients) == 0 {
		log.Fatal("ALERT_RECIPIENTS is not configured")
	}

	if err := sendReorderNotification(config.AlertRecipients, alerts); err != nil {
		log.Fatalf("Failed to send notification: %v", err)
	}
}
