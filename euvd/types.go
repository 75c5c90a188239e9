package euvd

import (
	"encoding/json"
	"errors"

	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// ErrValidation is returned when a response does not match the minimum shape
// required for its record type.
var ErrValidation = xerrors.New("invalid EUVD response")

// Vulnerability is a single EUVD vulnerability record. Only the identifier
// is guaranteed by the service. Fields this client does not know about are
// kept in Extra so that re-serializing a record loses nothing.
type Vulnerability struct {
	ID               string
	EnisaUUID        *string
	Description      *string
	DatePublished    *string
	DateUpdated      *string
	BaseScore        *float64
	BaseScoreVersion *string
	BaseScoreVector  *string
	References       *string
	Aliases          *string
	Assigner         *string
	EPSS             *float64

	// cross-reference lists, kept opaque
	Products        []json.RawMessage
	Vendors         []json.RawMessage
	Vulnerabilities []json.RawMessage
	Advisories      []json.RawMessage

	Extra map[string]json.RawMessage
}

func (v *Vulnerability) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return xerrors.Errorf("vulnerability: %w", err)
	}
	if v.ID, err = requiredID(fields); err != nil {
		return xerrors.Errorf("vulnerability: %w", err)
	}

	known := map[string]any{
		"enisaUuid":            &v.EnisaUUID,
		"description":          &v.Description,
		"datePublished":        &v.DatePublished,
		"dateUpdated":          &v.DateUpdated,
		"baseScore":            &v.BaseScore,
		"baseScoreVersion":     &v.BaseScoreVersion,
		"baseScoreVector":      &v.BaseScoreVector,
		"references":           &v.References,
		"aliases":              &v.Aliases,
		"assigner":             &v.Assigner,
		"epss":                 &v.EPSS,
		"enisaIdProduct":       &v.Products,
		"enisaIdVendor":        &v.Vendors,
		"enisaIdVulnerability": &v.Vulnerabilities,
		"enisaIdAdvisory":      &v.Advisories,
	}
	if err := decodeKnown(fields, known); err != nil {
		return xerrors.Errorf("vulnerability %s: %w", v.ID, err)
	}
	v.Extra = extraOrNil(fields)
	return nil
}

func (v Vulnerability) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Extra)+16)
	for key, raw := range v.Extra {
		out[key] = raw
	}
	out["id"] = v.ID
	putString(out, "enisaUuid", v.EnisaUUID)
	putString(out, "description", v.Description)
	putString(out, "datePublished", v.DatePublished)
	putString(out, "dateUpdated", v.DateUpdated)
	putFloat(out, "baseScore", v.BaseScore)
	putString(out, "baseScoreVersion", v.BaseScoreVersion)
	putString(out, "baseScoreVector", v.BaseScoreVector)
	putString(out, "references", v.References)
	putString(out, "aliases", v.Aliases)
	putString(out, "assigner", v.Assigner)
	putFloat(out, "epss", v.EPSS)
	putList(out, "enisaIdProduct", v.Products)
	putList(out, "enisaIdVendor", v.Vendors)
	putList(out, "enisaIdVulnerability", v.Vulnerabilities)
	putList(out, "enisaIdAdvisory", v.Advisories)
	return json.Marshal(out)
}

// AdvisorySource identifies the party that issued an advisory.
type AdvisorySource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Advisory is a vendor- or assigner-issued document referencing one or more
// vulnerabilities. Same open-record rules as Vulnerability.
type Advisory struct {
	ID            string
	Description   *string
	Summary       *string
	DatePublished *string
	DateUpdated   *string
	BaseScore     *float64
	References    *string
	Aliases       *string
	Source        *AdvisorySource

	Products        []json.RawMessage
	EnisaIDs        []json.RawMessage
	Vulnerabilities []json.RawMessage

	Extra map[string]json.RawMessage
}

func (a *Advisory) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return xerrors.Errorf("advisory: %w", err)
	}
	if a.ID, err = requiredID(fields); err != nil {
		return xerrors.Errorf("advisory: %w", err)
	}

	known := map[string]any{
		"description":           &a.Description,
		"summary":               &a.Summary,
		"datePublished":         &a.DatePublished,
		"dateUpdated":           &a.DateUpdated,
		"baseScore":             &a.BaseScore,
		"references":            &a.References,
		"aliases":               &a.Aliases,
		"source":                &a.Source,
		"advisoryProduct":       &a.Products,
		"enisaIdAdvisories":     &a.EnisaIDs,
		"vulnerabilityAdvisory": &a.Vulnerabilities,
	}
	if err := decodeKnown(fields, known); err != nil {
		return xerrors.Errorf("advisory %s: %w", a.ID, err)
	}
	a.Extra = extraOrNil(fields)
	return nil
}

func (a Advisory) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Extra)+12)
	for key, raw := range a.Extra {
		out[key] = raw
	}
	out["id"] = a.ID
	putString(out, "description", a.Description)
	putString(out, "summary", a.Summary)
	putString(out, "datePublished", a.DatePublished)
	putString(out, "dateUpdated", a.DateUpdated)
	putFloat(out, "baseScore", a.BaseScore)
	putString(out, "references", a.References)
	putString(out, "aliases", a.Aliases)
	if a.Source != nil {
		out["source"] = a.Source
	}
	putList(out, "advisoryProduct", a.Products)
	putList(out, "enisaIdAdvisories", a.EnisaIDs)
	putList(out, "vulnerabilityAdvisory", a.Vulnerabilities)
	return json.Marshal(out)
}

// VulnerabilityList is the bare-array shape returned by the latest,
// exploited and critical endpoints.
type VulnerabilityList []Vulnerability

func (l *VulnerabilityList) UnmarshalJSON(data []byte) error {
	var items []Vulnerability
	if err := json.Unmarshal(data, &items); err != nil {
		if errors.Is(err, ErrValidation) {
			return err
		}
		return xerrors.Errorf("expected a JSON array of vulnerabilities: %w", ErrValidation)
	}
	// a JSON null decodes into a nil slice without error
	if items == nil {
		return xerrors.Errorf("expected a JSON array of vulnerabilities: %w", ErrValidation)
	}
	*l = items
	return nil
}

func (l VulnerabilityList) Len() int {
	return len(l)
}

// IDs returns the identifiers of all records in order.
func (l VulnerabilityList) IDs() []string {
	return lo.Map(l, func(v Vulnerability, _ int) string { return v.ID })
}

// SearchResult is one page of search results. The service is not consistent
// about its envelope key names, so construction accepts the alternatives and
// normalizes them; serialization always emits the canonical shape.
type SearchResult struct {
	Items         []Vulnerability
	TotalElements int
	TotalPages    int
	Page          int
	Size          int
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return xerrors.Errorf("search response: %w", err)
	}

	r.Items = nil
	if raw, ok := firstPresent(fields, "content", "data"); ok {
		if err := json.Unmarshal(raw, &r.Items); err != nil {
			if errors.Is(err, ErrValidation) {
				return xerrors.Errorf("search response: %w", err)
			}
			return xerrors.Errorf("search response items must be an array: %w", ErrValidation)
		}
	}

	// absent totals default to what this page holds
	r.TotalElements = len(r.Items)
	if raw, ok := firstPresent(fields, "totalElements", "total"); ok {
		if err := json.Unmarshal(raw, &r.TotalElements); err != nil {
			return xerrors.Errorf("search response total must be a number: %w", ErrValidation)
		}
	}
	if r.TotalPages, err = intField(fields, "totalPages", 0); err != nil {
		return xerrors.Errorf("search response: %w", err)
	}
	if r.Page, err = intField(fields, "page", 0); err != nil {
		return xerrors.Errorf("search response: %w", err)
	}
	if r.Size, err = intField(fields, "size", len(r.Items)); err != nil {
		return xerrors.Errorf("search response: %w", err)
	}
	return nil
}

func (r SearchResult) MarshalJSON() ([]byte, error) {
	items := r.Items
	if items == nil {
		items = []Vulnerability{}
	}
	return json.Marshal(map[string]any{
		"content":       items,
		"totalElements": r.TotalElements,
		"totalPages":    r.TotalPages,
		"page":          r.Page,
		"size":          r.Size,
	})
}

func (r *SearchResult) Len() int {
	return len(r.Items)
}
