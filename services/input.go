package services

import (
	"strings"

	"gorm.io/datatypes"

	"hostel-backend/utils"
)

type field struct {
	name string
	ok   bool
}

// required reports every field whose ok flag is false in a single
// validation error.
func required(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return validationf("missing required fields: %s", strings.Join(missing, ", "))
}

func present(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}

// optional treats a blank string the same as an omitted one.
func optional(p *string) *string {
	if !present(p) {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func optionalID(p *uint) *uint {
	if p == nil || *p == 0 {
		return nil
	}
	return p
}

func date(name string, p *string) (datatypes.Date, error) {
	d, err := utils.ParseDate(text(p))
	if err != nil {
		return datatypes.Date{}, validationf("%s: %v", name, err)
	}
	return d, nil
}
