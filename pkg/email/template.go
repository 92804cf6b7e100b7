package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"go-portfolio-backend/internal/domain"
)

// contactEmailTemplate is the HTML body the site owner receives
var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New message from your portfolio</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #1F2A44; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #7C7CFF; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9fb; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #7C7CFF; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>New message from your portfolio</h1></div>
        <div class="content">
            <div class="label">From:</div>
            <div>{{.SenderName}} ({{.SenderEmail}})</div>
            <div class="label">Message:</div>
            <div class="message-box">{{.MessageBody}}</div>
        </div>
        <div class="footer">
            <p>Reply directly to this email to answer {{.SenderEmail}}.</p>
        </div>
    </div>
</body>
</html>`))

// RenderHTML renders the notification body for a payload.
func RenderHTML(p domain.MessagePayload) (string, error) {
	var body bytes.Buffer
	if err := contactEmailTemplate.Execute(&body, p); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// RenderText is the plain-text fallback body.
func RenderText(p domain.MessagePayload) string {
	return fmt.Sprintf("From: %s <%s>\n\n%s\n", p.SenderName, p.SenderEmail, p.MessageBody)
}

// Subject builds the notification subject line.
func Subject(p domain.MessagePayload) string {
	return "New message from " + headerSafe(p.SenderName)
}

// headerSafe strips CR/LF so visitor input can never start a new header line.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
