package mailer

import "fmt"

// EmailJob is the JSON payload placed on the RabbitMQ queue by the signup
// flow and consumed by cmd/email_worker.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeJob builds the signup welcome email for a new account.
func WelcomeJob(to, name string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to Mindfuly",
		Text: fmt.Sprintf(
			"Hi %s,\n\nWelcome to Mindfuly, your personal study focus companion. "+
				"Log your mood, play a focus session and build your streak.\n\n— The Mindfuly team",
			name),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Welcome to <strong>Mindfuly</strong>, your personal study focus companion. "+
				"Log your mood, play a focus session and build your streak.</p><p>— The Mindfuly team</p>",
			name),
	}
}
