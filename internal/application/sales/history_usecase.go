package sales

import (
	"context"

	"github.com/tu-usuario/muebleria-pos/internal/application/dto"
	"github.com/tu-usuario/muebleria-pos/internal/domain"
	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

// HistoryUseCase consulta el historial de ventas con sus líneas.
type HistoryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(saleRepo repository.SaleRepository) *HistoryUseCase {
	return &HistoryUseCase{saleRepo: saleRepo}
}

// List devuelve las ventas que cumplen el filtro, cada una con su detalle.
func (uc *HistoryUseCase) List(ctx context.Context, filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	rows, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(rows))}
	for _, row := range rows {
		details, err := uc.saleRepo.GetDetailsBySaleID(row.Sale.ID)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, toSaleResponse(row, details))
	}
	out.Total = len(out.Items)
	return out, nil
}

// GetByID devuelve una venta con su detalle.
func (uc *HistoryUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	row, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetailsBySaleID(id)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(row, details)
	return &resp, nil
}

func toSaleResponse(row *repository.SaleWithCustomer, details []*repository.SaleDetailWithProduct) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:             row.Sale.ID,
		Date:           row.Sale.Date,
		CustomerName:   row.CustomerName,
		CustomerCedula: row.CustomerCedula,
		Total:          row.Sale.Total,
		PaymentMethod:  row.Sale.PaymentMethod,
		Description:    row.Sale.Description,
		Details:        make([]dto.SaleDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ProductID:   d.Detail.ProductID,
			ProductName: d.ProductName,
			Quantity:    d.Detail.Quantity,
			UnitPrice:   d.Detail.UnitPrice,
			Description: d.Detail.Description,
		})
	}
	return resp
}
