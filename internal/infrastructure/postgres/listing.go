package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// listSpec describe cómo se lista un recurso: proyección, join opcional,
// columnas buscables y allow-list de ordenamiento. Un spec por repo.
type listSpec struct {
	selectSQL  string            // SELECT cols FROM tabla [alias]
	countSQL   string            // SELECT count(*) FROM tabla [alias]
	join       string            // opcional: " LEFT JOIN ..." (aplica a datos Y conteo)
	searchCols []string          // columnas de texto para el ILIKE (se OR-ean entre sí)
	activeCol  string            // columna del filtro is_active; vacío = sin filtro
	orderCols  map[string]string // nombre expuesto en la API -> columna SQL
}

// buildListQueries arma la consulta de datos (filtro + orden + LIMIT/OFFSET) y la
// de conteo con el MISMO filtro y join, para que total/pages sean consistentes
// con la página devuelta. El search se envuelve en %...% (substring, ILIKE).
func buildListQueries(spec listSpec, p repository.ListParams) (dataSQL string, dataArgs []any, countSQL string, countArgs []any) {
	var where []string
	var args []any

	if p.IsActive != nil && spec.activeCol != "" {
		args = append(args, *p.IsActive)
		where = append(where, fmt.Sprintf("%s = $%d", spec.activeCol, len(args)))
	}

	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		n := len(args)
		ors := make([]string, 0, len(spec.searchCols))
		for _, col := range spec.searchCols {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	var whereSQL string
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	countSQL = spec.countSQL + spec.join + whereSQL
	countArgs = args

	var b strings.Builder
	b.WriteString(spec.selectSQL)
	b.WriteString(spec.join)
	b.WriteString(whereSQL)

	// El orden solo se aplica cuando llegan order y dir juntos.
	if p.Order != "" && p.Dir != "" {
		if col, ok := spec.orderCols[p.Order]; ok {
			dir := "ASC"
			if strings.EqualFold(p.Dir, "desc") {
				dir = "DESC"
			}
			fmt.Fprintf(&b, " ORDER BY %s %s", col, dir)
		}
	}

	dataArgs = append(append([]any{}, args...), p.Limit, p.Offset)
	fmt.Fprintf(&b, " LIMIT $%d OFFSET $%d", len(dataArgs)-1, len(dataArgs))
	dataSQL = b.String()

	return dataSQL, dataArgs, countSQL, countArgs
}
