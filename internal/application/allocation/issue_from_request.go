package allocation

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// IssueFromRequest adapta el request HTTP al caso de uso Issue(ctx, IssueInputDTO).
// Usar desde handlers HTTP que tengan userID y dto.IssueMaterialRequest.
func (uc *IssueUseCase) IssueFromRequest(ctx context.Context, userID string, in dto.IssueMaterialRequest) (*IssueResult, error) {
	input := IssueInputDTO{
		UserID:               userID,
		ProductID:            in.ProductID,
		WarehouseID:          in.WarehouseID,
		Quantity:             in.Quantity,
		ManufacturingOrderID: in.ManufacturingOrderID,
		AllowExpired:         in.AllowExpired,
		Notes:                in.Notes,
	}
	return uc.Issue(ctx, input)
}
