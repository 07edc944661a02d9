package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iquintero24/Firmeza-project/src/customers/application/request"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
)

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
	nextID    int64
	withSales map[int64]bool
	saveErr   error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: map[int64]*entity.Customer{},
		nextID:    1,
		withSales: map[int64]bool{},
	}
}

func (r *fakeCustomerRepo) Save(ctx context.Context, c *entity.Customer) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	c.ID = r.nextID
	r.nextID++
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return entity.ErrCustomerNotFound
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id int64) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	out := []*entity.Customer{}
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) HasSales(ctx context.Context, id int64) (bool, error) {
	return r.withSales[id], nil
}

type fakeCredentialStore struct {
	created  []string
	deleted  []string
	createID string
	fail     bool
}

func (s *fakeCredentialStore) CreateUser(ctx context.Context, email string) (string, error) {
	if s.fail {
		return "", errors.New("credential store down")
	}
	s.created = append(s.created, email)
	return s.createID, nil
}

func (s *fakeCredentialStore) DeleteUser(ctx context.Context, authUserID string) error {
	s.deleted = append(s.deleted, authUserID)
	return nil
}

func createReq(name, document, email string) *request.CreateCustomerRequest {
	return &request.CreateCustomerRequest{
		Name:     name,
		Document: document,
		Email:    email,
		Phone:    "3001234567",
	}
}

func TestCreateCustomer(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := NewCreateCustomerUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), createReq("Constructora Andina", "900123456", "compras@andina.co"))
	require.NoError(t, err)
	assert.Equal(t, "Constructora Andina", resp.Name)
	assert.NotZero(t, resp.ID)
}

func TestCreateCustomerRejectsDuplicateDocument(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := NewCreateCustomerUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), createReq("Cliente A", "900123456", "a@firmeza.co"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), createReq("Cliente B", "900123456", "b@firmeza.co"))
	assert.ErrorIs(t, err, entity.ErrDuplicateCustomer)
}

func TestCreateCustomerRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := NewCreateCustomerUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), createReq("Cliente A", "111", "Compras@Andina.CO"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), createReq("Cliente B", "222", "compras@andina.co"))
	assert.ErrorIs(t, err, entity.ErrDuplicateCustomer)
}

func TestCreateCustomerLinksCredentials(t *testing.T) {
	repo := newFakeCustomerRepo()
	store := &fakeCredentialStore{createID: "auth-123"}
	uc := NewCreateCustomerUseCase(repo, store)

	resp, err := uc.Execute(context.Background(), createReq("Cliente A", "111", "a@firmeza.co"))
	require.NoError(t, err)

	saved := repo.customers[resp.ID]
	require.NotNil(t, saved.AuthUserID)
	assert.Equal(t, "auth-123", *saved.AuthUserID)
	assert.Equal(t, []string{"a@firmeza.co"}, store.created)
}

func TestCreateCustomerRollsBackCredentialsOnSaveFailure(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.saveErr = errors.New("db down")
	store := &fakeCredentialStore{createID: "auth-456"}
	uc := NewCreateCustomerUseCase(repo, store)

	_, err := uc.Execute(context.Background(), createReq("Cliente A", "111", "a@firmeza.co"))
	require.Error(t, err)
	assert.Equal(t, []string{"auth-456"}, store.deleted)
}

func TestUpdateCustomerAllowsOwnIdentity(t *testing.T) {
	repo := newFakeCustomerRepo()
	createUC := NewCreateCustomerUseCase(repo, nil)
	updateUC := NewUpdateCustomerUseCase(repo)

	created, err := createUC.Execute(context.Background(), createReq("Cliente A", "111", "a@firmeza.co"))
	require.NoError(t, err)

	// Cambiar solo el teléfono conservando documento y email propios
	resp, err := updateUC.Execute(context.Background(), created.ID, &request.UpdateCustomerRequest{
		Name:     "Cliente A",
		Document: "111",
		Email:    "a@firmeza.co",
		Phone:    "3119876543",
	})
	require.NoError(t, err)
	assert.Equal(t, "3119876543", resp.Phone)
}

func TestUpdateCustomerRejectsTakenIdentity(t *testing.T) {
	repo := newFakeCustomerRepo()
	createUC := NewCreateCustomerUseCase(repo, nil)
	updateUC := NewUpdateCustomerUseCase(repo)

	_, err := createUC.Execute(context.Background(), createReq("Cliente A", "111", "a@firmeza.co"))
	require.NoError(t, err)
	second, err := createUC.Execute(context.Background(), createReq("Cliente B", "222", "b@firmeza.co"))
	require.NoError(t, err)

	_, err = updateUC.Execute(context.Background(), second.ID, &request.UpdateCustomerRequest{
		Name:     "Cliente B",
		Document: "111",
		Email:    "b@firmeza.co",
	})
	assert.ErrorIs(t, err, entity.ErrDuplicateCustomer)
}

func TestDeleteCustomerWithSalesIsForbidden(t *testing.T) {
	repo := newFakeCustomerRepo()
	createUC := NewCreateCustomerUseCase(repo, nil)
	deleteUC := NewDeleteCustomerUseCase(repo, nil)

	created, err := createUC.Execute(context.Background(), createReq("Cliente A", "111", "a@firmeza.co"))
	require.NoError(t, err)
	repo.withSales[created.ID] = true

	_, err = deleteUC.Execute(context.Background(), created.ID)
	assert.ErrorIs(t, err, entity.ErrCustomerHasSales)
}

func TestDeleteCustomerAbsentIsNotAnError(t *testing.T) {
	repo := newFakeCustomerRepo()
	deleteUC := NewDeleteCustomerUseCase(repo, nil)

	deleted, err := deleteUC.Execute(context.Background(), 999)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteCustomerRemovesCredentials(t *testing.T) {
	repo := newFakeCustomerRepo()
	store := &fakeCredentialStore{createID: "auth-789"}
	createUC := NewCreateCustomerUseCase(repo, store)
	deleteUC := NewDeleteCustomerUseCase(repo, store)

	created, err := createUC.Execute(context.Background(), createReq("Cliente A", "111", "a@firmeza.co"))
	require.NoError(t, err)

	deleted, err := deleteUC.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"auth-789"}, store.deleted)
}
