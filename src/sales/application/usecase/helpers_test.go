package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	customerEntity "github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	productUsecase "github.com/iquintero24/Firmeza-project/src/products/application/usecase"
	productEntity "github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	domainCriteria "github.com/iquintero24/Firmeza-project/src/shared/domain/criteria"
)

// ---------------------------------------------------------------------------
// Fakes en memoria para el workflow de ventas
// ---------------------------------------------------------------------------

type fakeProductRepo struct {
	products map[int64]*productEntity.Product

	// failDecrementFor fuerza el fallo de la reserva de un producto aun
	// cuando su stock alcanza (simula una venta concurrente que ganó)
	failDecrementFor map[int64]bool

	decrementCalls []int64
	incrementCalls []int64
}

func newFakeProductRepo(products ...*productEntity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products:         map[int64]*productEntity.Product{},
		failDecrementFor: map[int64]bool{},
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Save(ctx context.Context, p *productEntity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *productEntity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return productEntity.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id int64) (*productEntity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, productEntity.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(ctx context.Context, c domainCriteria.Criteria) ([]*productEntity.Product, int, error) {
	out := []*productEntity.Product{}
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, id int64, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return productEntity.ErrProductNotFound
	}
	if r.failDecrementFor[id] || p.Stock < quantity {
		return productEntity.ErrInsufficientStock
	}
	p.Stock -= quantity
	r.decrementCalls = append(r.decrementCalls, id)
	return nil
}

func (r *fakeProductRepo) IncrementStock(ctx context.Context, id int64, quantity int) (bool, error) {
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	p.Stock += quantity
	r.incrementCalls = append(r.incrementCalls, id)
	return true, nil
}

func (r *fakeProductRepo) HasSaleReferences(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func (r *fakeProductRepo) stockOf(id int64) int {
	return r.products[id].Stock
}

type fakeCustomerRepo struct {
	customers map[int64]*customerEntity.Customer
}

func newFakeCustomerRepo(customers ...*customerEntity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[int64]*customerEntity.Customer{}}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Save(ctx context.Context, c *customerEntity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *customerEntity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id int64) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*customerEntity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customerEntity.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindAll(ctx context.Context) ([]*customerEntity.Customer, error) {
	out := []*customerEntity.Customer{}
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) HasSales(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

type fakeSaleRepo struct {
	sales  map[int64]*entity.Sale
	nextID int64

	saveErr   error
	updateErr error
	deleteErr error

	receiptPaths map[int64]string
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:        map[int64]*entity.Sale{},
		nextID:       1,
		receiptPaths: map[int64]string{},
	}
}

func (r *fakeSaleRepo) Save(ctx context.Context, sale *entity.Sale) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	sale.ID = r.nextID
	r.nextID++
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.sales[sale.ID]; !ok {
		return entity.ErrSaleNotFound
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Delete(ctx context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.sales[id]; !ok {
		return entity.ErrSaleNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSaleRepo) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range r.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateReceiptPath(ctx context.Context, id int64, path string) error {
	if _, ok := r.sales[id]; !ok {
		return entity.ErrSaleNotFound
	}
	r.receiptPaths[id] = path
	return nil
}

type dispatchedReceipt struct {
	sale          *entity.Sale
	customerName  string
	customerEmail string
}

type fakeDispatcher struct {
	dispatched []dispatchedReceipt
}

func (d *fakeDispatcher) Dispatch(sale *entity.Sale, customerName, customerEmail string) {
	d.dispatched = append(d.dispatched, dispatchedReceipt{sale, customerName, customerEmail})
}

// ---------------------------------------------------------------------------
// Escenario base: dos productos con stock y un cliente registrado
// ---------------------------------------------------------------------------

type saleFixture struct {
	productRepo  *fakeProductRepo
	customerRepo *fakeCustomerRepo
	saleRepo     *fakeSaleRepo
	dispatcher   *fakeDispatcher
	reserveUC    *productUsecase.ReserveStockUseCase
	releaseUC    *productUsecase.ReleaseStockUseCase
	taxRate      decimal.Decimal
}

func newSaleFixture() *saleFixture {
	cement := &productEntity.Product{ID: 1, Name: "Cemento gris 50kg", UnitPrice: decimal.RequireFromString("25500.00"), Stock: 100}
	rebar := &productEntity.Product{ID: 2, Name: "Varilla 3/8", UnitPrice: decimal.RequireFromString("18900.00"), Stock: 40}
	productRepo := newFakeProductRepo(cement, rebar)

	customer := &customerEntity.Customer{ID: 10, Name: "Constructora Andina", Document: "900123456", Email: "compras@andina.co"}
	customerRepo := newFakeCustomerRepo(customer)

	return &saleFixture{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     newFakeSaleRepo(),
		dispatcher:   &fakeDispatcher{},
		reserveUC:    productUsecase.NewReserveStockUseCase(productRepo),
		releaseUC:    productUsecase.NewReleaseStockUseCase(productRepo),
		taxRate:      decimal.RequireFromString("0.19"),
	}
}

func (f *saleFixture) createUC() *CreateSaleUseCase {
	return NewCreateSaleUseCase(f.saleRepo, f.customerRepo, f.productRepo, f.reserveUC, f.releaseUC, f.dispatcher, f.taxRate)
}

func (f *saleFixture) updateUC() *UpdateSaleUseCase {
	return NewUpdateSaleUseCase(f.saleRepo, f.customerRepo, f.productRepo, f.reserveUC, f.releaseUC, f.dispatcher, f.taxRate)
}

func (f *saleFixture) deleteUC() *DeleteSaleUseCase {
	return NewDeleteSaleUseCase(f.saleRepo, f.releaseUC, f.reserveUC)
}

var errDBDown = errors.New("db down")
