package euvd

import (
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/xerrors"
)

// PublishedAt parses the record's publication timestamp. The service is not
// consistent about date formats, so parsing is lenient.
func (v Vulnerability) PublishedAt() (time.Time, error) {
	return parseDate(v.DatePublished)
}

// UpdatedAt parses the record's last-update timestamp.
func (v Vulnerability) UpdatedAt() (time.Time, error) {
	return parseDate(v.DateUpdated)
}

// PublishedAt parses the advisory's publication timestamp.
func (a Advisory) PublishedAt() (time.Time, error) {
	return parseDate(a.DatePublished)
}

// UpdatedAt parses the advisory's last-update timestamp.
func (a Advisory) UpdatedAt() (time.Time, error) {
	return parseDate(a.DateUpdated)
}

func parseDate(s *string) (time.Time, error) {
	if s == nil {
		return time.Time{}, xerrors.New("date not set")
	}
	t, err := dateparse.ParseAny(*s)
	if err != nil {
		return time.Time{}, xerrors.Errorf("unable to parse date %q: %w", *s, err)
	}
	return t, nil
}
