// Package smtp implements mailer.Sender over an authenticated SMTP relay.
//
// A Config either names a well-known Service profile (outlook, hotmail,
// office365, gmail, yahoo) or points at a custom Host. Outlook is the default:
// smtp-mail.outlook.com:587 with STARTTLS.
//
//	sender, err := smtp.New(smtp.Config{
//		Service:  "outlook",
//		Username: os.Getenv("EMAIL_USER"),
//		Password: os.Getenv("EMAIL_PASS"),
//	})
//
// Messages are built and delivered with gomail: multipart/alternative with a
// plain-text and an HTML part. Each message gets a generated Message-ID, which
// Send returns as the message identifier. Send returns when the context ends
// even if the relay has not answered.
package smtp
