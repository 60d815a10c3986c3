package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"skilltree/config"
)

// SendEmail sends an HTML mail through the configured SMTP account.
// Callers without sender credentials get a silent no-op so local
// development never needs a mailbox.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SkillTree <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A2238; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2238; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLTREE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SkillTree. Keep learning.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

func SendWelcomeEmail(email, name string) {
	subject := "Welcome to SkillTree"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>SkillTree</strong>! Your account has been created.</p>
		<p>Browse the course catalog, pick a learning path and start earning XP.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrolled: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<p>Your lessons are waiting on your dashboard.</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Confirmed", body))
}

func SendCertificateEmail(email, name, courseTitle string) {
	subject := "Certificate issued: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You completed <strong>%s</strong> and your certificate is ready.</p>
		<p>Find it under My Learning &rarr; Certificates.</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Congratulations!", body))
}
