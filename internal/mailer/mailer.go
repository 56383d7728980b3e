package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends enrollment receipts over SMTP. A zero-config mailer is
// disabled and every send becomes a no-op, so local setups work without
// SMTP credentials.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

func New(host string, port int, username, password string) *Mailer {
	return &Mailer{host: host, port: port, username: username, password: password}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.host != "" && m.username != ""
}

// SendReceipt emails a payment confirmation for a committed enrollment.
func (m *Mailer) SendReceipt(to, className, transactionID string, price float64) error {
	if !m.Enabled() {
		return nil
	}

	body := fmt.Sprintf(`
	<html>
	<body>
		<p>Hi,</p>
		<p>Your enrollment in <strong>%s</strong> is confirmed.</p>
		<p>Amount paid: $%.2f<br>Transaction: %s</p>
		<p>Happy learning!</p>
	</body>
	</html>`, className, price, transactionID)

	message := gomail.NewMessage()
	message.SetHeader("From", m.username)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Enrollment confirmed: "+className)
	message.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(message); err != nil {
		log.Printf("Failed to send receipt to %s: %v", to, err)
		return err
	}
	return nil
}
