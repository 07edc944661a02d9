package dispatch

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

const (
	defaultQueueSize = 64
	maxSendAttempts  = 3
	jobTimeout       = 30 * time.Second
)

// retryBackoff se acorta en tests
var retryBackoff = 2 * time.Second

// receiptJob es la unidad de trabajo encolada por Dispatch
type receiptJob struct {
	sale          *entity.Sale
	customerName  string
	customerEmail string
}

// AsyncReceiptDispatcher genera y envía recibos en un worker propio,
// fuera del ciclo request/response. La cola es acotada: si se llena,
// el trabajo se descarta con log en vez de bloquear la venta.
type AsyncReceiptDispatcher struct {
	renderer port.ReceiptRenderer
	mailer   port.ReceiptMailer
	saleRepo port.SaleRepository

	jobs chan receiptJob
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewAsyncReceiptDispatcher crea el dispatcher y arranca su worker
func NewAsyncReceiptDispatcher(renderer port.ReceiptRenderer, mailer port.ReceiptMailer, saleRepo port.SaleRepository) *AsyncReceiptDispatcher {
	d := &AsyncReceiptDispatcher{
		renderer: renderer,
		mailer:   mailer,
		saleRepo: saleRepo,
		jobs:     make(chan receiptJob, defaultQueueSize),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// Dispatch encola la generación del recibo. Nunca bloquea ni falla:
// la venta ya está confirmada cuando se llama. Se encola una copia de
// la venta: el worker corre en su propia goroutine y no puede compartir
// el struct que el handler sigue usando para armar la respuesta.
func (d *AsyncReceiptDispatcher) Dispatch(sale *entity.Sale, customerName, customerEmail string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		log.Printf("⚠️  Receipt dispatcher closed, dropping receipt for sale %d", sale.ID)
		return
	}

	snapshot := *sale
	snapshot.CustomerName = customerName
	job := receiptJob{sale: &snapshot, customerName: customerName, customerEmail: customerEmail}
	select {
	case d.jobs <- job:
	default:
		log.Printf("⚠️  Receipt queue full, dropping receipt for sale %d (receipt %s)", sale.ID, sale.ReceiptNumber)
	}
}

// Close deja de aceptar trabajos y espera a que el worker drene la cola
func (d *AsyncReceiptDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *AsyncReceiptDispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		d.process(job)
	}
}

// process genera el PDF, guarda su locator y envía el email.
// Cada paso que falla degrada el resultado pero nunca revierte la venta.
func (d *AsyncReceiptDispatcher) process(job receiptJob) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	receiptPath, err := d.renderer.Render(job.sale)
	if err != nil {
		log.Printf("❌ Error rendering receipt for sale %d: %v", job.sale.ID, err)
		return
	}

	if err := d.saleRepo.UpdateReceiptPath(ctx, job.sale.ID, receiptPath); err != nil {
		// La venta pudo haberse anulado entre el commit y este punto
		log.Printf("⚠️  Could not record receipt path for sale %d: %v", job.sale.ID, err)
	}

	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		err = d.mailer.SendReceipt(ctx, job.customerEmail, job.customerName, job.sale, receiptPath)
		if err == nil {
			return
		}
		log.Printf("⚠️  Attempt %d/%d sending receipt %s failed: %v",
			attempt, maxSendAttempts, job.sale.ReceiptNumber, err)
		if attempt < maxSendAttempts {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
	}

	log.Printf("❌ Giving up on receipt %s for sale %d after %d attempts",
		job.sale.ReceiptNumber, job.sale.ID, maxSendAttempts)
}
