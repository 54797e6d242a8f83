package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"skyfleet-backend/internal/domain"
)

type sendgridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func rupees(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func (s *sendgridEmailService) SendBookingConfirmation(_ context.Context, user *domain.User, booking *domain.Booking) error {
	subject := fmt.Sprintf("Booking #%d confirmed", booking.ID)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour drone booking #%d is confirmed.\nRental window: %s to %s\nExpected delivery: %s\nTotal: INR %s\n\nSkyFleet Rentals",
		user.Name,
		booking.ID,
		booking.StartTime.Format(time.RFC1123),
		booking.EndTime.Format(time.RFC1123),
		booking.DeliveryDateTime.Format("02 Jan 2006"),
		rupees(booking.TotalAmountCents),
	)
	return s.send(user.Email, user.Name, subject, body)
}

func (s *sendgridEmailService) SendPaymentReceipt(_ context.Context, user *domain.User, payment *domain.Payment) error {
	subject := fmt.Sprintf("Payment received for booking #%d", payment.BookingID)
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your payment of INR %s for booking #%d.\nOrder reference: %s\n\nSkyFleet Rentals",
		user.Name,
		rupees(payment.AmountPaidCents),
		payment.BookingID,
		payment.RazorpayOrderID,
	)
	return s.send(user.Email, user.Name, subject, body)
}

func (s *sendgridEmailService) SendPenaltyNotice(_ context.Context, user *domain.User, penalty *domain.Penalty) error {
	subject := fmt.Sprintf("Penalty applied to booking #%d", penalty.BookingID)
	body := fmt.Sprintf(
		"Hi %s,\n\nA penalty of INR %s (%s) was applied to your booking #%d.\nPlease settle it at your earliest convenience.\n\nSkyFleet Rentals",
		user.Name,
		rupees(penalty.AmountCents),
		penalty.Reason,
		penalty.BookingID,
	)
	return s.send(user.Email, user.Name, subject, body)
}

func (s *sendgridEmailService) SendReturnReminder(_ context.Context, user *domain.User, booking *domain.Booking) error {
	subject := fmt.Sprintf("Return reminder for booking #%d", booking.ID)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour rental for booking #%d ended on %s and the drone has not been returned.\nLate return charges apply for every extra hour.\n\nSkyFleet Rentals",
		user.Name,
		booking.ID,
		booking.EndTime.Format(time.RFC1123),
	)
	return s.send(user.Email, user.Name, subject, body)
}
