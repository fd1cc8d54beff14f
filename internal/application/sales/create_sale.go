package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/muebleria-pos/internal/application/dto"
	"github.com/tu-usuario/muebleria-pos/internal/domain"
	"github.com/tu-usuario/muebleria-pos/internal/domain/entity"
	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

// CreateSaleUseCase registra una venta multi-línea y descuenta el inventario
// como una sola unidad atómica: cabecera, líneas y decrementos de stock
// comitean todos o ninguno.
type CreateSaleUseCase struct {
	txRunner SaleTxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner SaleTxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner}
}

// CreateSale ejecuta el flujo completo dentro de una transacción:
//
//  1. Resuelve el cliente por cédula; si no existe, aborta sin efectos
//     (ErrCustomerNotFound).
//  2. Inserta la cabecera de la venta con el reloj del servidor.
//  3. Por cada línea, en el orden enviado: bloquea la fila del producto
//     (SELECT ... FOR UPDATE), verifica stock suficiente, inserta la línea
//     con el precio vigente como foto y decrementa el stock.
//  4. Commit; retorna el id de la venta.
//
// Ante stock insuficiente se aborta en la primera línea que falla
// (InsufficientStockError con producto, disponible y solicitado); las líneas
// posteriores no se evalúan. Cualquier fallo de almacenamiento hace rollback
// y se propaga envuelto.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	// Validación previa, sin tocar la base de datos.
	if in.CustomerCedula == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	saleID := uuid.New().String()

	err := uc.txRunner.RunSale(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		customer, err := customerRepo.GetByCedula(in.CustomerCedula)
		if err != nil {
			return fmt.Errorf("resolver cliente: %w", err)
		}
		if customer == nil {
			return domain.ErrCustomerNotFound
		}

		sale := &entity.Sale{
			ID:            saleID,
			CustomerID:    customer.ID,
			Date:          now,
			Total:         in.Total,
			PaymentMethod: in.PaymentMethod,
			Description:   in.Description,
			CreatedAt:     now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for _, line := range in.Lines {
			// Bloquea la fila del producto hasta el commit/rollback: dos ventas
			// concurrentes sobre el mismo producto se serializan aquí y ninguna
			// lee un stock ya descontado por la otra.
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Quantity < line.Quantity {
				return &domain.InsufficientStockError{
					ProductID: line.ProductID,
					Available: product.Quantity,
					Requested: line.Quantity,
				}
			}
			detail := &entity.SaleDetail{
				ID:          uuid.New().String(),
				SaleID:      saleID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				UnitPrice:   product.Price, // foto del precio al momento de la venta
				Description: line.Description,
			}
			if err := saleRepo.CreateDetail(detail); err != nil {
				return err
			}
			if err := productRepo.DecrementQuantity(line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateSaleResponse{SaleID: saleID, Date: now}, nil
}
