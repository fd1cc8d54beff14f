package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/muebleria-pos/internal/application/dto"
	"github.com/tu-usuario/muebleria-pos/internal/application/usecase"
	"github.com/tu-usuario/muebleria-pos/internal/domain"
	"github.com/tu-usuario/muebleria-pos/internal/domain/entity"
)

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)      { return r.byID[id], nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.byID[id], nil }
func (r *fakeProductRepo) Search(query string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *fakeProductRepo) DecrementQuantity(id string, qty int) error {
	r.byID[id].Quantity -= qty
	return nil
}
func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func TestProductUseCase_Create(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Sofá 3 puestos",
		Category: "sala",
		Color:    "gris",
		Price:    decimal.NewFromInt(1200),
		Quantity: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Sofá 3 puestos", out.Name)
	assert.Len(t, repo.byID, 1)
}

func TestProductUseCase_Create_Validacion(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	cases := []dto.CreateProductRequest{
		{Name: "", Category: "sala", Price: decimal.NewFromInt(10), Quantity: 1},
		{Name: "Mesa", Category: "", Price: decimal.NewFromInt(10), Quantity: 1},
		{Name: "Mesa", Category: "comedor", Price: decimal.NewFromInt(-1), Quantity: 1},
		{Name: "Mesa", Category: "comedor", Price: decimal.NewFromInt(10), Quantity: -1},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProductUseCase_GetByID_NoExiste_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente no es un error, es nil")
}

func TestProductUseCase_Update_ReemplazaCampos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Silla", Category: "comedor", Price: decimal.NewFromInt(150), Quantity: 10,
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name: "Silla tapizada", Category: "comedor", Color: "beige",
		Price: decimal.NewFromInt(180), Quantity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Silla tapizada", out.Name)
	assert.Equal(t, 8, out.Quantity)
	assert.True(t, decimal.NewFromInt(180).Equal(repo.byID[created.ID].Price))
}

func TestProductUseCase_Update_NoExiste_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{
		Name: "x", Category: "y", Price: decimal.NewFromInt(1), Quantity: 1,
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUseCase_Delete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Mesa", Category: "comedor", Price: decimal.NewFromInt(800), Quantity: 2,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, repo.byID)
}
