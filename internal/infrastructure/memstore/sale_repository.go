package memstore

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"
	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre go-memdb.
// Los listados recorren el índice seq en reversa: la venta más reciente primero.
type SaleRepo struct {
	store *Store
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// Create inserta la venta al inicio del orden de presentación.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	if dup, err := txn.First(tableSales, indexID, sale.ID); err != nil {
		return fmt.Errorf("create sale: %w", err)
	} else if dup != nil {
		return domain.ErrDuplicate
	}
	row := &saleRow{
		ID:        sale.ID,
		CreatedBy: sale.CreatedBy,
		Seq:       r.store.nextSeq(),
		Sale:      sale.Clone(),
	}
	if err := txn.Insert(tableSales, row); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	txn.Commit()
	return nil
}

// Update reemplaza la venta conservando su posición. Si no existe no hace nada.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableSales, indexID, sale.ID)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if raw == nil {
		return nil
	}
	old := raw.(*saleRow)
	row := &saleRow{
		ID:        sale.ID,
		CreatedBy: sale.CreatedBy,
		Seq:       old.Seq,
		Sale:      sale.Clone(),
	}
	if err := txn.Insert(tableSales, row); err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	txn.Commit()
	return nil
}

// FindByID obtiene una venta por ID; (nil, nil) si no existe.
func (r *SaleRepo) FindByID(id string) (*entity.Sale, error) {
	if id == "" {
		return nil, nil
	}
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(tableSales, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("find sale: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	return raw.(*saleRow).Sale.Clone(), nil
}

// List todas las ventas, la más reciente primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	it, err := txn.GetReverse(tableSales, indexSeq)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collectSales(it), nil
}

// ListByCreator ventas capturadas por username, la más reciente primero.
func (r *SaleRepo) ListByCreator(username string) ([]*entity.Sale, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(tableSales, indexCreatedBy, username)
	if err != nil {
		return nil, fmt.Errorf("list sales by creator: %w", err)
	}
	var rows []*saleRow
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rows = append(rows, raw.(*saleRow))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Seq > rows[j].Seq })
	sales := make([]*entity.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, row.Sale.Clone())
	}
	return sales, nil
}

func collectSales(it memdb.ResultIterator) []*entity.Sale {
	sales := []*entity.Sale{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		sales = append(sales, raw.(*saleRow).Sale.Clone())
	}
	return sales
}
