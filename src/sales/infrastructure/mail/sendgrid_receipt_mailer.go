package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// SendGridReceiptMailer implementa ReceiptMailer usando SendGrid.
// Envía el recibo de la venta como PDF adjunto al email del cliente.
type SendGridReceiptMailer struct {
	apiKey     string
	from       string
	receiptDir string
}

// NewSendGridReceiptMailer crea el mailer. receiptDir es el directorio
// local donde el renderer deja los PDFs (el locator público solo lleva
// el nombre de archivo).
func NewSendGridReceiptMailer(apiKey, from, receiptDir string) port.ReceiptMailer {
	return &SendGridReceiptMailer{
		apiKey:     apiKey,
		from:       from,
		receiptDir: receiptDir,
	}
}

// SendReceipt envía el recibo al cliente con el PDF adjunto
func (m *SendGridReceiptMailer) SendReceipt(ctx context.Context, toEmail, customerName string, sale *entity.Sale, receiptPath string) error {
	if m.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if toEmail == "" {
		return fmt.Errorf("to address is empty")
	}

	fromEmail := mail.NewEmail("Firmeza", m.from)
	to := mail.NewEmail(customerName, toEmail)

	subject := fmt.Sprintf("Recibo de compra %s", sale.ReceiptNumber)
	plainText := fmt.Sprintf(
		"Hola %s,\n\nGracias por su compra. Adjuntamos el recibo %s por un total de $%s.\n\nFirmeza - Materiales de construccion",
		customerName, sale.ReceiptNumber, sale.Total.StringFixed(2),
	)
	htmlContent := fmt.Sprintf("<pre>%s</pre>", plainText)

	message := mail.NewSingleEmail(fromEmail, subject, to, plainText, htmlContent)

	if att, err := m.buildAttachment(receiptPath); err != nil {
		// El recibo sin adjunto sigue siendo útil: se envía igual y se registra
		log.Printf("⚠️  Could not attach receipt %s: %v", receiptPath, err)
	} else {
		message.AddAttachment(att)
	}

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("[sendgrid] error status=%d, body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	log.Printf("📧 Receipt %s sent to %s (status=%d)", sale.ReceiptNumber, toEmail, response.StatusCode)
	return nil
}

// buildAttachment lee el PDF desde receiptDir y lo codifica para SendGrid
func (m *SendGridReceiptMailer) buildAttachment(receiptPath string) (*mail.Attachment, error) {
	fileName := filepath.Base(receiptPath)
	content, err := os.ReadFile(filepath.Join(m.receiptDir, fileName))
	if err != nil {
		return nil, fmt.Errorf("error reading receipt file: %w", err)
	}

	att := mail.NewAttachment()
	att.SetContent(base64.StdEncoding.EncodeToString(content))
	att.SetType("application/pdf")
	att.SetFilename(fileName)
	att.SetDisposition("attachment")

	return att, nil
}
