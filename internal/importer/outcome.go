package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status int

const (
	StatusCreated Status = iota + 1
	StatusUpdated
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusUpdated:
		return "updated"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Reason explains a skipped or failed row, or a warning on a successful one.
type Reason string

const (
	ReasonNoName               Reason = "NoName"
	ReasonShortName            Reason = "ShortName"
	ReasonUnresolvableCategory Reason = "UnresolvableCategory"
	ReasonDuplicateName        Reason = "DuplicateName"
	ReasonPersistenceFailure   Reason = "PersistenceFailure"
	ReasonPanic                Reason = "Panic"

	ReasonSanitizationAnomaly Reason = "SanitizationAnomaly"
	ReasonFetchFailure        Reason = "FetchFailure"
	ReasonInvalidPrice        Reason = "InvalidPrice"
)

type Warning struct {
	Reason Reason
	Detail string
}

// Outcome is the terminal state of one row.
type Outcome struct {
	Row       int
	Name      string
	Status    Status
	Reason    Reason
	Field     string
	Detail    string
	Err       error
	ProductID uuid.UUID
	Category  string
	Brand     string

	CategoryCreated bool
	BrandCreated    bool
	ImagesAttached  int
	Warnings        []Warning
}

// Reasons lists the outcome reason followed by all warning reasons.
func (o Outcome) Reasons() []Reason {
	var out []Reason
	if o.Reason != "" {
		out = append(out, o.Reason)
	}
	for _, w := range o.Warnings {
		out = append(out, w.Reason)
	}
	return out
}

func (o Outcome) String() string {
	s := fmt.Sprintf("row %d %s", o.Row, o.Status)
	if o.Reason != "" {
		s += " (" + string(o.Reason) + ")"
	}
	if o.Name != "" {
		s += fmt.Sprintf(" %q", o.Name)
	}
	if o.Field != "" {
		s += " field=" + o.Field
	}
	if o.Detail != "" {
		s += ": " + o.Detail
	}
	if o.Err != nil {
		s += ": " + o.Err.Error()
	}
	return s
}

func (o *Outcome) warn(r Reason, detail string) {
	o.Warnings = append(o.Warnings, Warning{Reason: r, Detail: detail})
}

type Summary struct {
	Created           int
	Updated           int
	Skipped           int
	Failed            int
	CategoriesCreated int
	BrandsCreated     int
	ImagesFetched     int
	Outcomes          []Outcome
	Duration          time.Duration
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case StatusCreated:
		s.Created++
	case StatusUpdated:
		s.Updated++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
	if o.CategoryCreated {
		s.CategoriesCreated++
	}
	if o.BrandCreated {
		s.BrandsCreated++
	}
	s.ImagesFetched += o.ImagesAttached
	s.Outcomes = append(s.Outcomes, o)
}

func (s Summary) Total() int {
	return s.Created + s.Updated + s.Skipped + s.Failed
}

// SkippedBy counts skipped rows per reason.
func (s Summary) SkippedBy() map[Reason]int {
	m := make(map[Reason]int)
	for _, o := range s.Outcomes {
		if o.Status == StatusSkipped {
			m[o.Reason]++
		}
	}
	return m
}
