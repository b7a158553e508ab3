package memstore

import (
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-memdb"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

const (
	tableUsers = "users"
	tableSales = "sales"

	indexID         = "id"
	indexUsername   = "username"
	indexSupervisor = "supervisor_id"
	indexSeq        = "seq"
	indexCreatedBy  = "created_by"
)

// Schema esquema de tablas en memoria. seq es el orden de inserción como texto
// de ancho fijo, así el orden del índice coincide con el numérico.
func Schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableUsers: {
				Name: tableUsers,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexUsername: {
						Name:    indexUsername,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Username", Lowercase: true},
					},
					indexSupervisor: {
						Name:         indexSupervisor,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "SupervisorID"},
					},
					indexSeq: {
						Name:    indexSeq,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Seq"},
					},
				},
			},
			tableSales: {
				Name: tableSales,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexCreatedBy: {
						Name:         indexCreatedBy,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "CreatedBy"},
					},
					indexSeq: {
						Name:    indexSeq,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Seq"},
					},
				},
			},
		},
	}
}

// Store base de datos en memoria compartida por los repositorios.
// Se pierde al reiniciar el proceso.
type Store struct {
	db  *memdb.MemDB
	seq atomic.Uint64
}

// NewStore crea la base vacía.
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(Schema())
	if err != nil {
		return nil, fmt.Errorf("memdb schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) nextSeq() string {
	return fmt.Sprintf("%020d", s.seq.Add(1))
}

// userRow fila indexada; User se guarda como copia propia del store.
type userRow struct {
	ID           string
	Username     string
	SupervisorID string
	Seq          string
	User         *entity.User
}

type saleRow struct {
	ID        string
	CreatedBy string
	Seq       string
	Sale      *entity.Sale
}
