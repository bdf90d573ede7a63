package console

import (
	"context"
	"time"

	"github.com/jwalitptl/clinic-console/internal/gateway"
	"github.com/jwalitptl/clinic-console/internal/view"
)

// Resolver maps foreign-key ids to display names for table rendering,
// through the short-TTL lookup cache so a page render doesn't refetch a
// reference collection per row.
type Resolver struct {
	lookup  *view.Lookup
	loaders map[string]func(context.Context) (map[string]string, error)
}

func NewResolver(gw *gateway.Clinic) *Resolver {
	return &Resolver{
		lookup: view.NewLookup(30*time.Second, time.Minute),
		loaders: map[string]func(context.Context) (map[string]string, error){
			"medicos": func(ctx context.Context) (map[string]string, error) {
				doctors, err := gw.Doctors.List(ctx)
				if err != nil {
					return nil, err
				}
				names := make(map[string]string, len(doctors))
				for _, d := range doctors {
					names[d.ID] = d.Name
				}
				return names, nil
			},
			"pacientes": func(ctx context.Context) (map[string]string, error) {
				patients, err := gw.Patients.List(ctx)
				if err != nil {
					return nil, err
				}
				names := make(map[string]string, len(patients))
				for _, p := range patients {
					names[p.ID] = p.Name
				}
				return names, nil
			},
			"especialidades": func(ctx context.Context) (map[string]string, error) {
				specialties, err := gw.Specialties.List(ctx)
				if err != nil {
					return nil, err
				}
				names := make(map[string]string, len(specialties))
				for _, s := range specialties {
					names[s.ID] = s.Name
				}
				return names, nil
			},
			"facturas": func(ctx context.Context) (map[string]string, error) {
				invoices, err := gw.Invoices.List(ctx)
				if err != nil {
					return nil, err
				}
				names := make(map[string]string, len(invoices))
				for _, f := range invoices {
					names[f.ID] = f.Number
				}
				return names, nil
			},
		},
	}
}

// Name returns the display name for an id, falling back to the raw id when
// the reference can't be resolved.
func (r *Resolver) Name(collection, id string) string {
	if id == "" {
		return ""
	}
	loader, ok := r.loaders[collection]
	if !ok {
		return id
	}
	names, err := r.lookup.Names(context.Background(), collection, loader)
	if err != nil {
		return id
	}
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

// Invalidate drops a cached reference collection after it is mutated.
func (r *Resolver) Invalidate(collection string) {
	r.lookup.Invalidate(collection)
}
