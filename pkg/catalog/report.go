package catalog

import (
	"github.com/mchmarny/aic-catalog/pkg/database"
	"github.com/mchmarny/aic-catalog/pkg/defaults"
	"github.com/mchmarny/aic-catalog/pkg/header"
)

// Report is the serializable summary of a load, printed by `aicctl validate`.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	LoadID   string            `json:"loadId" yaml:"loadId"`
	Sources  map[string]string `json:"sources" yaml:"sources"`
	Stats    database.Stats    `json:"stats" yaml:"stats"`
	Problems []Problem         `json:"problems" yaml:"problems"`
}

// Report summarizes the result. version is recorded in the header metadata.
func (r *Result) Report(version string) *Report {
	rep := &Report{
		LoadID:   r.ID,
		Sources:  r.Sources,
		Stats:    r.Database.Stats(),
		Problems: r.Problems,
	}
	if rep.Problems == nil {
		rep.Problems = []Problem{}
	}
	rep.Init(header.KindLoadReport, defaults.CatalogAPIVersion, version)
	return rep
}
