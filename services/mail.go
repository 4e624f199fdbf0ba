package services

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/go-gomail/gomail"
)

/*
* SendMail sends a plain-text mail with an optional attachment. SMTP
* settings come from the environment; callers treat failures as
* best-effort and log them.
 */
func SendMail(to, subject, body, attachmentName string, attachmentData []byte) error {
	senderEmail := os.Getenv("SMTP_EMAIL")
	senderPassword := os.Getenv("SMTP_PASSWORD")
	if senderEmail == "" {
		return errors.New("SMTP not configured")
	}
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if attachmentName != "" && attachmentData != nil {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachmentData)
			return err
		}))
	}

	d := gomail.NewDialer(host, port, senderEmail, senderPassword)
	return d.DialAndSend(m)
}
