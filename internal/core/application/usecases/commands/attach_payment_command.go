package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAttachPaymentCommandIsNotConstructed = errors.New(
		"AttachPaymentCommand must be created via NewAttachPaymentCommand constructor",
	)
)

// AttachPaymentCommand stores the artifacts of a payment flow started elsewhere:
// a QR code, a provider preference id, or both. Blank values are left untouched.
type AttachPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	qrCode              string
	paymentPreferenceID string

	guard guard.ConstructorGuard
}

// NewAttachPaymentCommand requires a valid order id and at least one non-blank artifact.
func NewAttachPaymentCommand(orderID kernel.UUID, qrCode, paymentPreferenceID string) (AttachPaymentCommand, error) {
	var artifactsErr error
	if strings.TrimSpace(qrCode) == "" && strings.TrimSpace(paymentPreferenceID) == "" {
		artifactsErr = errs.NewValueIsRequiredError("qrCode or paymentPreferenceId")
	}

	if err := errors.Join(orderID.Validate(), artifactsErr); err != nil {
		return AttachPaymentCommand{}, err
	}

	return AttachPaymentCommand{
		orderID:             orderID,
		qrCode:              strings.TrimSpace(qrCode),
		paymentPreferenceID: strings.TrimSpace(paymentPreferenceID),
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPaymentCommand) Validate() error {
	return c.guard.Validate(ErrAttachPaymentCommandIsNotConstructed)
}

func (c AttachPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// QRCode returns the QR code, "" when not supplied.
func (c AttachPaymentCommand) QRCode() string {
	return c.qrCode
}

// PaymentPreferenceID returns the provider reference, "" when not supplied.
func (c AttachPaymentCommand) PaymentPreferenceID() string {
	return c.paymentPreferenceID
}
