package sales

import (
	"context"

	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

// SaleTxRunner ejecuta fn dentro de una transacción con repositorios atados a
// ella. Si fn retorna error se hace Rollback; si no, Commit. Los locks de fila
// tomados por fn (FOR UPDATE) se mantienen hasta ese Commit/Rollback.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
