package euvd_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/vuln-tools/euvd-mcp/euvd"
)

func TestSearchFilterParams(t *testing.T) {
	tests := []struct {
		name   string
		filter euvd.SearchFilter
		want   map[string]string
	}{
		{
			name:   "no filters yields nil",
			filter: euvd.SearchFilter{},
			want:   nil,
		},
		{
			name:   "from score",
			filter: euvd.SearchFilter{FromScore: lo.ToPtr(7.5)},
			want:   map[string]string{"fromScore": "7.5"},
		},
		{
			name:   "to score without trailing zeros",
			filter: euvd.SearchFilter{ToScore: lo.ToPtr(10.0)},
			want:   map[string]string{"toScore": "10"},
		},
		{
			name:   "from epss",
			filter: euvd.SearchFilter{FromEPSS: lo.ToPtr(0.5)},
			want:   map[string]string{"fromEpss": "0.5"},
		},
		{
			name:   "to epss",
			filter: euvd.SearchFilter{ToEPSS: lo.ToPtr(99.9)},
			want:   map[string]string{"toEpss": "99.9"},
		},
		{
			name:   "from date",
			filter: euvd.SearchFilter{FromDate: lo.ToPtr("2024-01-01")},
			want:   map[string]string{"fromDate": "2024-01-01"},
		},
		{
			name:   "to date",
			filter: euvd.SearchFilter{ToDate: lo.ToPtr("2024-12-31")},
			want:   map[string]string{"toDate": "2024-12-31"},
		},
		{
			name:   "from updated date",
			filter: euvd.SearchFilter{FromUpdatedDate: lo.ToPtr("2024-06-01")},
			want:   map[string]string{"fromUpdatedDate": "2024-06-01"},
		},
		{
			name:   "to updated date",
			filter: euvd.SearchFilter{ToUpdatedDate: lo.ToPtr("2024-06-30")},
			want:   map[string]string{"toUpdatedDate": "2024-06-30"},
		},
		{
			name:   "product",
			filter: euvd.SearchFilter{Product: lo.ToPtr("Windows")},
			want:   map[string]string{"product": "Windows"},
		},
		{
			name:   "vendor",
			filter: euvd.SearchFilter{Vendor: lo.ToPtr("Microsoft")},
			want:   map[string]string{"vendor": "Microsoft"},
		},
		{
			name:   "assigner",
			filter: euvd.SearchFilter{Assigner: lo.ToPtr("mitre")},
			want:   map[string]string{"assigner": "mitre"},
		},
		{
			name:   "exploited true serializes to the literal token",
			filter: euvd.SearchFilter{Exploited: lo.ToPtr(true)},
			want:   map[string]string{"exploited": "true"},
		},
		{
			name:   "exploited false serializes to the literal token",
			filter: euvd.SearchFilter{Exploited: lo.ToPtr(false)},
			want:   map[string]string{"exploited": "false"},
		},
		{
			name:   "free text",
			filter: euvd.SearchFilter{Text: lo.ToPtr("remote code execution")},
			want:   map[string]string{"text": "remote code execution"},
		},
		{
			name:   "explicit zero page is kept",
			filter: euvd.SearchFilter{Page: lo.ToPtr(0)},
			want:   map[string]string{"page": "0"},
		},
		{
			name:   "size",
			filter: euvd.SearchFilter{Size: lo.ToPtr(100)},
			want:   map[string]string{"size": "100"},
		},
		{
			name: "all filters",
			filter: euvd.SearchFilter{
				FromScore:       lo.ToPtr(7.5),
				ToScore:         lo.ToPtr(10.0),
				FromEPSS:        lo.ToPtr(0.5),
				ToEPSS:          lo.ToPtr(99.9),
				FromDate:        lo.ToPtr("2024-01-01"),
				ToDate:          lo.ToPtr("2024-12-31"),
				FromUpdatedDate: lo.ToPtr("2024-06-01"),
				ToUpdatedDate:   lo.ToPtr("2024-06-30"),
				Product:         lo.ToPtr("Windows"),
				Vendor:          lo.ToPtr("Microsoft"),
				Assigner:        lo.ToPtr("mitre"),
				Exploited:       lo.ToPtr(true),
				Text:            lo.ToPtr("rce"),
				Page:            lo.ToPtr(2),
				Size:            lo.ToPtr(50),
			},
			want: map[string]string{
				"fromScore":       "7.5",
				"toScore":         "10",
				"fromEpss":        "0.5",
				"toEpss":          "99.9",
				"fromDate":        "2024-01-01",
				"toDate":          "2024-12-31",
				"fromUpdatedDate": "2024-06-01",
				"toUpdatedDate":   "2024-06-30",
				"product":         "Windows",
				"vendor":          "Microsoft",
				"assigner":        "mitre",
				"exploited":       "true",
				"text":            "rce",
				"page":            "2",
				"size":            "50",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Params()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
