package usecase

import "strconv"

// normalizePage aplica los defaults de paginación: page 1, page_size el configurado.
func normalizePage(page, size, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	return page, size
}

// missingIDFields arma el mapa de errores por índice para los ids que no existen.
// Clave = índice del id dentro del array recibido, como hace el agrupado por
// primer segmento de path en la validación.
func missingIDFields(ids, found []string) map[string][]string {
	foundSet := make(map[string]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}
	fields := make(map[string][]string)
	for i, id := range ids {
		if _, ok := foundSet[id]; !ok {
			fields[strconv.Itoa(i)] = append(fields[strconv.Itoa(i)], "id does not exist")
		}
	}
	return fields
}
