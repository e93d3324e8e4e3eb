package shoppinglist

import (
	"context"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio atado a esa tx. Garantiza que lista e ítems se eliminen como
// una unidad: una consulta de precios concurrente nunca ve el borrado a
// medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(listRepo repository.ShoppingListRepository) error) error
}
