// Package metadata defines the dataset metadata collaborator consumed by
// the expression engine and CLI.
//
// The engine never re-implements metadata lookup: it reads dataset,
// variable, and sample-value listings through the Service interface to
// populate conditions and cross-check references. The bundled Catalog is an
// in-memory implementation seeded with representative CDISC/ADaM domains
// for local use and tests; production deployments substitute a client for
// the organization's metadata repository.
package metadata

import (
	"fmt"
	"strings"
)

// Dataset describes one CDISC domain or analysis dataset.
type Dataset struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Domain string `json:"domain"` // SDTM, ADaM
}

// Variable describes one variable within a dataset.
type Variable struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"` // Char, Num
}

// Service is the metadata lookup contract. Implementations are expected to
// be read-only; empty filters match everything.
type Service interface {
	// ListDatasets returns datasets, optionally restricted to one domain
	// class (e.g. "ADaM").
	ListDatasets(domainFilter string) ([]Dataset, error)

	// ListVariables returns a dataset's variables, optionally restricted by
	// type ("Char" or "Num").
	ListVariables(dataset, typeFilter string) ([]Variable, error)

	// ListValues returns up to limit distinct sample values for a variable.
	ListValues(dataset, variable string, limit int) ([]string, error)
}

// Catalog is an in-memory Service backed by static listings.
type Catalog struct {
	datasets  []Dataset
	variables map[string][]Variable
	values    map[string][]string // "DATASET.VARIABLE" -> samples
}

// NewCatalog builds a catalog from explicit listings. Keys are normalized
// to upper case.
func NewCatalog(datasets []Dataset, variables map[string][]Variable, values map[string][]string) *Catalog {
	c := &Catalog{
		datasets:  datasets,
		variables: make(map[string][]Variable, len(variables)),
		values:    make(map[string][]string, len(values)),
	}
	for ds, vars := range variables {
		c.variables[strings.ToUpper(ds)] = vars
	}
	for key, samples := range values {
		c.values[strings.ToUpper(key)] = samples
	}
	return c
}

// ListDatasets implements Service.
func (c *Catalog) ListDatasets(domainFilter string) ([]Dataset, error) {
	if domainFilter == "" {
		return append([]Dataset(nil), c.datasets...), nil
	}
	var out []Dataset
	for _, ds := range c.datasets {
		if strings.EqualFold(ds.Domain, domainFilter) {
			out = append(out, ds)
		}
	}
	return out, nil
}

// ListVariables implements Service.
func (c *Catalog) ListVariables(dataset, typeFilter string) ([]Variable, error) {
	vars, ok := c.variables[strings.ToUpper(dataset)]
	if !ok {
		return nil, fmt.Errorf("unknown dataset: %s", dataset)
	}
	if typeFilter == "" {
		return append([]Variable(nil), vars...), nil
	}
	var out []Variable
	for _, v := range vars {
		if strings.EqualFold(v.Type, typeFilter) {
			out = append(out, v)
		}
	}
	return out, nil
}

// ListValues implements Service.
func (c *Catalog) ListValues(dataset, variable string, limit int) ([]string, error) {
	key := strings.ToUpper(dataset) + "." + strings.ToUpper(variable)
	samples, ok := c.values[key]
	if !ok {
		return nil, fmt.Errorf("no sample values for %s.%s", dataset, variable)
	}
	if limit <= 0 || limit > len(samples) {
		limit = len(samples)
	}
	return append([]string(nil), samples[:limit]...), nil
}

// Snapshot flattens the catalog into the dataset -> variable-name map shape
// consumed by clause.CheckReferences.
func (c *Catalog) Snapshot() map[string][]string {
	out := make(map[string][]string, len(c.variables))
	for ds, vars := range c.variables {
		names := make([]string, len(vars))
		for i, v := range vars {
			names[i] = v.Name
		}
		out[ds] = names
	}
	return out
}
