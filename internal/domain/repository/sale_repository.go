package repository

import "github.com/jhoicas/siac-ventas-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Los listados devuelven primero la venta más reciente.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// Update reemplaza la venta con el mismo ID; si no existe no hace nada.
	Update(sale *entity.Sale) error
	FindByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	ListByCreator(username string) ([]*entity.Sale, error)
}
