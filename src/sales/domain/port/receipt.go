package port

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
)

// ReceiptRenderer renderiza el recibo de una venta persistida y retorna
// su locator (ruta pública del documento). El formato del documento es
// opaco para el workflow.
type ReceiptRenderer interface {
	Render(sale *entity.Sale) (string, error)
}

// ReceiptMailer envía el recibo al email del cliente
type ReceiptMailer interface {
	SendReceipt(ctx context.Context, toEmail, customerName string, sale *entity.Sale, receiptPath string) error
}

// ReceiptDispatcher recibe una venta recién creada para generar y enviar
// su recibo fuera del ciclo request/response. Dispatch nunca bloquea ni
// falla: un recibo que no pudo generarse o enviarse es un resultado
// degradado pero recuperable, no un fallo de la venta.
type ReceiptDispatcher interface {
	Dispatch(sale *entity.Sale, customerName, customerEmail string)
}
