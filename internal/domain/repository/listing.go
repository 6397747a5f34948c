package repository

// ListParams parámetros comunes de listado: búsqueda, filtro de estado,
// ordenamiento y paginación. El handler/use case ya normalizó los valores
// (Limit > 0, Offset >= 0, Order dentro del allow-list del recurso).
type ListParams struct {
	Search   string // substring case-insensitive sobre las columnas de texto buscables
	IsActive *bool  // nil = sin filtro
	Order    string // nombre de columna del allow-list; vacío = sin orden explícito
	Dir      string // asc | desc; solo se aplica junto con Order
	Limit    int
	Offset   int
}
