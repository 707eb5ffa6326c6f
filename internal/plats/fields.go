package plats

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldTitle = cases.Title(language.AmericanEnglish)

// FieldDisplayName renders the regulator's all-caps field identifiers as
// display labels, appending the conventional "Field" suffix when absent:
// "AAGARD RANCH" -> "Aagard Ranch Field".
func FieldDisplayName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	label := fieldTitle.String(strings.ToLower(name))
	if !strings.HasSuffix(strings.ToUpper(name), " FIELD") {
		label += " Field"
	}
	return label
}
