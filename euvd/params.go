package euvd

import "strconv"

// SearchFilter holds the optional criteria accepted by the search endpoint.
// Nil fields are left out of the request entirely; the service owns all
// range and format validation, so no combination is rejected here.
type SearchFilter struct {
	FromScore       *float64
	ToScore         *float64
	FromEPSS        *float64
	ToEPSS          *float64
	FromDate        *string
	ToDate          *string
	FromUpdatedDate *string
	ToUpdatedDate   *string
	Product         *string
	Vendor          *string
	Assigner        *string
	Exploited       *bool
	Text            *string
	Page            *int
	Size            *int
}

// Params maps the present filters to their wire parameter names. It returns
// nil when no filter is set so callers can skip the query string altogether.
func (f SearchFilter) Params() map[string]string {
	params := map[string]string{}
	setFloat := func(name string, v *float64) {
		if v != nil {
			params[name] = strconv.FormatFloat(*v, 'f', -1, 64)
		}
	}
	setString := func(name string, v *string) {
		if v != nil {
			params[name] = *v
		}
	}
	setInt := func(name string, v *int) {
		if v != nil {
			params[name] = strconv.Itoa(*v)
		}
	}

	setFloat("fromScore", f.FromScore)
	setFloat("toScore", f.ToScore)
	setFloat("fromEpss", f.FromEPSS)
	setFloat("toEpss", f.ToEPSS)
	setString("fromDate", f.FromDate)
	setString("toDate", f.ToDate)
	setString("fromUpdatedDate", f.FromUpdatedDate)
	setString("toUpdatedDate", f.ToUpdatedDate)
	setString("product", f.Product)
	setString("vendor", f.Vendor)
	setString("assigner", f.Assigner)
	if f.Exploited != nil {
		// the service expects the literal tokens, not a JSON boolean
		params["exploited"] = strconv.FormatBool(*f.Exploited)
	}
	setString("text", f.Text)
	setInt("page", f.Page)
	setInt("size", f.Size)

	if len(params) == 0 {
		return nil
	}
	return params
}
