package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productEntity "github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/application/request"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
)

// seedSale registra una venta base: 5 cementos + 2 varillas
func seedSale(t *testing.T, f *saleFixture) int64 {
	t.Helper()
	resp, err := f.createUC().Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	f.dispatcher.dispatched = nil
	return resp.ID
}

func TestUpdateSaleReplacesDetailsAndAdjustsStock(t *testing.T) {
	f := newSaleFixture()
	saleID := seedSale(t, f)
	require.Equal(t, 95, f.productRepo.stockOf(1))
	require.Equal(t, 38, f.productRepo.stockOf(2))

	// Nueva composición: solo 3 cementos
	req := request.UpdateSaleRequest{
		CustomerID: 10,
		Items: []request.SaleItemRequest{
			{ProductID: 1, Quantity: 3, AppliedUnitPrice: decimal.RequireFromString("25500.00")},
		},
		Subtotal: decimal.RequireFromString("76500.00"),
		Tax:      decimal.RequireFromString("14535.00"),
		Total:    decimal.RequireFromString("91035.00"),
	}

	resp, err := f.updateUC().Execute(context.Background(), saleID, req)
	require.NoError(t, err)

	// Los 5 cementos y 2 varillas volvieron; se reservaron 3 cementos
	assert.Equal(t, 97, f.productRepo.stockOf(1))
	assert.Equal(t, 40, f.productRepo.stockOf(2))

	// La colección se reemplazó completa
	require.Len(t, resp.Details, 1)
	assert.Equal(t, int64(1), resp.Details[0].ProductID)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("91035.00")))

	saved, err := f.saleRepo.FindByID(context.Background(), saleID)
	require.NoError(t, err)
	assert.Len(t, saved.Details, 1)

	// El recibo se regenera tras la edición
	assert.Len(t, f.dispatcher.dispatched, 1)
}

func TestUpdateSaleKeepsReceiptNumber(t *testing.T) {
	f := newSaleFixture()
	saleID := seedSale(t, f)

	original, err := f.saleRepo.FindByID(context.Background(), saleID)
	require.NoError(t, err)

	req := request.UpdateSaleRequest{
		CustomerID: 10,
		Items: []request.SaleItemRequest{
			{ProductID: 2, Quantity: 1, AppliedUnitPrice: decimal.RequireFromString("18900.00")},
		},
		Subtotal: decimal.RequireFromString("18900.00"),
		Tax:      decimal.RequireFromString("3591.00"),
		Total:    decimal.RequireFromString("22491.00"),
	}

	resp, err := f.updateUC().Execute(context.Background(), saleID, req)
	require.NoError(t, err)
	assert.Equal(t, original.ReceiptNumber, resp.ReceiptNumber)
	assert.Equal(t, original.SaleDate.Unix(), resp.SaleDate.Unix())
}

func TestUpdateSaleNotFound(t *testing.T) {
	f := newSaleFixture()

	req := request.UpdateSaleRequest{
		CustomerID: 10,
		Items: []request.SaleItemRequest{
			{ProductID: 1, Quantity: 1, AppliedUnitPrice: decimal.RequireFromString("25500.00")},
		},
		Subtotal: decimal.RequireFromString("25500.00"),
		Tax:      decimal.RequireFromString("4845.00"),
		Total:    decimal.RequireFromString("30345.00"),
	}

	_, err := f.updateUC().Execute(context.Background(), 999, req)
	assert.ErrorIs(t, err, entity.ErrSaleNotFound)
}

func TestUpdateSaleRestoresOriginalWhenReservationFails(t *testing.T) {
	f := newSaleFixture()
	saleID := seedSale(t, f)
	require.Equal(t, 95, f.productRepo.stockOf(1))

	// La nueva composición pide más varillas de las que hay
	req := request.UpdateSaleRequest{
		CustomerID: 10,
		Items: []request.SaleItemRequest{
			{ProductID: 2, Quantity: 500, AppliedUnitPrice: decimal.RequireFromString("18900.00")},
		},
		Subtotal: decimal.RequireFromString("9450000.00"),
		Tax:      decimal.RequireFromString("1795500.00"),
		Total:    decimal.RequireFromString("11245500.00"),
	}

	_, err := f.updateUC().Execute(context.Background(), saleID, req)
	assert.ErrorIs(t, err, productEntity.ErrInsufficientStock)

	// Tras restaurar, el inventario queda como antes del intento
	assert.Equal(t, 95, f.productRepo.stockOf(1))
	assert.Equal(t, 38, f.productRepo.stockOf(2))

	// La venta conserva sus líneas originales
	saved, err := f.saleRepo.FindByID(context.Background(), saleID)
	require.NoError(t, err)
	assert.Len(t, saved.Details, 2)
}

func TestUpdateSaleRestoresOriginalWhenPersistFails(t *testing.T) {
	f := newSaleFixture()
	saleID := seedSale(t, f)
	f.saleRepo.updateErr = errDBDown

	req := request.UpdateSaleRequest{
		CustomerID: 10,
		Items: []request.SaleItemRequest{
			{ProductID: 1, Quantity: 1, AppliedUnitPrice: decimal.RequireFromString("25500.00")},
		},
		Subtotal: decimal.RequireFromString("25500.00"),
		Tax:      decimal.RequireFromString("4845.00"),
		Total:    decimal.RequireFromString("30345.00"),
	}

	_, err := f.updateUC().Execute(context.Background(), saleID, req)
	require.Error(t, err)

	assert.Equal(t, 95, f.productRepo.stockOf(1))
	assert.Equal(t, 38, f.productRepo.stockOf(2))
}

func TestUpdateSaleRejectsTotalsMismatchBeforeTouchingStock(t *testing.T) {
	f := newSaleFixture()
	saleID := seedSale(t, f)

	req := request.UpdateSaleRequest{
		CustomerID: 10,
		Items: []request.SaleItemRequest{
			{ProductID: 1, Quantity: 1, AppliedUnitPrice: decimal.RequireFromString("25500.00")},
		},
		Subtotal: decimal.RequireFromString("25500.00"),
		Tax:      decimal.RequireFromString("4845.00"),
		Total:    decimal.RequireFromString("1.00"),
	}

	_, err := f.updateUC().Execute(context.Background(), saleID, req)
	assert.ErrorIs(t, err, entity.ErrTotalsMismatch)
	assert.Equal(t, 95, f.productRepo.stockOf(1))
	assert.Equal(t, 38, f.productRepo.stockOf(2))
}
