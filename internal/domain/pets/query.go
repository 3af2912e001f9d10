package pets

import (
	"errors"
	"sort"
	"strings"
)

const (
	DefaultLimit    = 12
	maxSearchLength = 100
)

// ErrSearchTooLong se devuelve antes de aplicar cualquier filtro.
var ErrSearchTooLong = errors.New("search query too long")

// ListParams son los query params del listado, tal como llegan del front.
type ListParams struct {
	Species      string
	Age          string // filtra por ageCategory
	Size         string
	Gender       string
	SpecialNeeds string // "true" => solo con specialNeeds
	GoodWith     string // lista separada por comas, semántica AND
	Search       string
	Status       string // default "available"
	Page         int    // 1-indexed
	Limit        int
	SortBy       string // default "dateAdded"
	SortOrder    string // asc|desc, default "desc"
}

// ListResult es la página resultante más su metadata.
type ListResult struct {
	Pets        []Pet
	TotalCount  int
	CurrentPage int
	TotalPages  int
}

// Query aplica el pipeline completo sobre la colección en memoria:
// status -> filtros de igualdad -> goodWith (AND) -> búsqueda de texto ->
// orden -> paginación. No muta el slice de entrada.
func Query(all []Pet, params ListParams) (ListResult, error) {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	if len(search) > maxSearchLength {
		return ListResult{}, ErrSearchTooLong
	}

	status := params.Status
	if status == "" {
		status = string(StatusAvailable)
	}

	var goodWith []string
	if strings.TrimSpace(params.GoodWith) != "" {
		goodWith = strings.Split(params.GoodWith, ",")
	}

	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if string(p.Status) != status {
			continue
		}
		if params.Species != "" && p.Species != params.Species {
			continue
		}
		if params.Age != "" && p.AgeCategory != params.Age {
			continue
		}
		if params.Size != "" && p.Size != params.Size {
			continue
		}
		if params.Gender != "" && p.Gender != params.Gender {
			continue
		}
		if params.SpecialNeeds != "" && p.SpecialNeeds != (params.SpecialNeeds == "true") {
			continue
		}
		if !hasAllTags(p, goodWith) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}

	sortPets(out, params.SortBy, params.SortOrder)

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(out)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return ListResult{
		Pets:        out[start:end],
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

func hasAllTags(p Pet, tags []string) bool {
	for _, t := range tags {
		if !p.GoodWithTag(strings.TrimSpace(t)) {
			return false
		}
	}
	return true
}

// matchesSearch busca substring case-insensitive en name/description/breed (OR).
// El search ya viene en lowercase y trimmed.
func matchesSearch(p Pet, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Breed), search)
}

// sortPets ordena por el campo pedido (default dateAdded desc).
// Sin desempate explícito: el orden entre claves iguales queda sin especificar.
func sortPets(items []Pet, sortBy, sortOrder string) {
	if sortBy == "" {
		sortBy = "dateAdded"
	}
	asc := sortOrder == "asc"

	var less func(a, b Pet) bool
	switch sortBy {
	case "dateAdded":
		less = func(a, b Pet) bool { return a.DateAdded.Before(b.DateAdded) }
	case "name":
		less = func(a, b Pet) bool { return a.Name < b.Name }
	case "species":
		less = func(a, b Pet) bool { return a.Species < b.Species }
	case "breed":
		less = func(a, b Pet) bool { return a.Breed < b.Breed }
	case "size":
		less = func(a, b Pet) bool { return a.Size < b.Size }
	case "ageCategory":
		less = func(a, b Pet) bool { return a.AgeCategory < b.AgeCategory }
	default:
		less = func(a, b Pet) bool { return a.DateAdded.Before(b.DateAdded) }
	}

	sort.Slice(items, func(i, j int) bool {
		if asc {
			return less(items[i], items[j])
		}
		return less(items[j], items[i])
	})
}
