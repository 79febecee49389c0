package catalog

import "context"

// defaultProducts es el catálogo de arranque que inserta Seed sobre un store vacío.
var defaultProducts = []CreateInput{
	{
		Name:        "Italian Honey Bees (Nucleus)",
		Species:     "Apis mellifera ligustica",
		Description: "Gentle temperament, great honey production. 5-frame nuc with marked queen.",
		Price:       185.0,
		Image:       "https://images.unsplash.com/photo-1506703719100-a0f3a48c0f86?q=80&w=1200&auto=format&fit=crop",
		InStock:     boolPtr(true),
	},
	{
		Name:        "Carniolan Package Bees",
		Species:     "Apis mellifera carnica",
		Description: "Fast spring buildup and overwintering success. 3 lb package with mated queen.",
		Price:       165.0,
		Image:       "https://images.unsplash.com/photo-1470115636492-6d2b56f9146e?q=80&w=1200&auto=format&fit=crop",
		InStock:     boolPtr(true),
	},
	{
		Name:        "Saskatraz Queens",
		Species:     "Apis mellifera",
		Description: "Selected for mite tolerance and productivity. Marked, mated queen ready to introduce.",
		Price:       42.0,
		Image:       "https://images.unsplash.com/photo-1510877073473-6d4545e9c7e1?q=80&w=1200&auto=format&fit=crop",
		InStock:     boolPtr(true),
	},
	{
		Name:        "Native Bumblebee Colony",
		Species:     "Bombus impatiens",
		Description: "Excellent greenhouse pollinators. Complete colony with queen and workers.",
		Price:       299.0,
		Image:       "https://images.unsplash.com/photo-1461354464878-ad92f492a5a0?q=80&w=1200&auto=format&fit=crop",
		InStock:     boolPtr(false),
	},
}

// SeedItemResult es el resultado de un intento de insert durante el seed.
// Err != nil significa que ese item se descartó sin abortar los restantes.
type SeedItemResult struct {
	Name string
	ID   string
	Err  error
}

type SeedResult struct {
	AlreadySeeded bool
	// Count: cantidad ya existente si AlreadySeeded, si no, inserts exitosos.
	Count int64
	Items []SeedItemResult
}

// Seed inserta defaultProducts si el catálogo está vacío.
// Best-effort deliberado: un insert fallido no aborta los restantes ni hace
// rollback de los anteriores. El count-then-insert no toma locks, así que dos
// seeds concurrentes pueden duplicar los defaults (limitación aceptada).
func (s *Service) Seed(ctx context.Context) (SeedResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if count > 0 {
		return SeedResult{AlreadySeeded: true, Count: count}, nil
	}

	res := SeedResult{Items: make([]SeedItemResult, 0, len(defaultProducts))}
	for _, in := range defaultProducts {
		item := SeedItemResult{Name: in.Name}

		p, err := s.Create(ctx, in)
		if err != nil {
			item.Err = err
		} else {
			item.ID = p.ID
			res.Count++
		}

		res.Items = append(res.Items, item)
	}

	return res, nil
}

func boolPtr(b bool) *bool {
	return &b
}
