package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// MaterialIssueRepository define el puerto de persistencia para las emisiones
// de materiales y sus líneas de consumo.
type MaterialIssueRepository interface {
	Create(ctx context.Context, issue *entity.MaterialIssue) error
	CreateDetail(ctx context.Context, detail *entity.MaterialIssueDetail) error
	GetByID(ctx context.Context, id string) (*entity.MaterialIssue, error)
	GetDetailsByIssueID(ctx context.Context, issueID string) ([]*entity.MaterialIssueDetail, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.MaterialIssue, error)
}
