package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type BookingEmailData struct {
	BookingRef    string
	CustomerName  string
	Date          string
	Hours         string
	TotalAmount   float64
	AdvanceAmount float64
	Status        string
}

// SendBookingEmail mails a booking summary with the reference QR embedded.
// Runs async so it never delays the request that triggered it.
func SendBookingEmail(to, subject string, data BookingEmailData) {
	go func() {
		body := fmt.Sprintf(
			`<h2>Greenfield Cricket Ground</h2>
<p>Hi %s,</p>
<p>Your booking <b>%s</b> for <b>%s</b> (%s) is <b>%s</b>.</p>
<p>Total: %.2f &mdash; Advance received: %.2f</p>
<p>Show the QR code below at the gate.</p>
<img src="cid:booking_qr"/>`,
			data.CustomerName, data.BookingRef, data.Date, data.Hours, data.Status,
			data.TotalAmount, data.AdvanceAmount)

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", body)

		qrBytes, err := GenerateQRCode(data.BookingRef, 256)
		if err != nil {
			log.Printf("booking email: qr generation failed: %v", err)
		} else {
			m.Embed("booking_qr.png",
				gomail.SetCopyFunc(func(w io.Writer) error {
					_, err := w.Write(qrBytes)
					return err
				}),
				gomail.SetHeader(map[string][]string{
					"Content-Type":        {"image/png"},
					"Content-ID":          {"<booking_qr>"},
					"Content-Disposition": {"inline"},
				}),
			)
		}

		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if port == 0 {
			port = 587
		}
		d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("booking email: send to %s failed: %v", to, err)
		}
	}()
}
