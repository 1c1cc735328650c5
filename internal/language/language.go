// Package language holds the fixed set of languages offered by the language
// prompt, mapped to the lookup service's internal codes.
package language

import "strings"

// Language pairs a display name with the lookup service's internal code.
type Language struct {
	Name string
	Code string
}

// Supported is the set offered to the user, in display order. The codes are
// the service's own identifiers and are sent verbatim as the /language/
// query segment.
var Supported = []Language{
	{"English", "39"},
	{"Spanish", "76"},
	{"French", "41"},
	{"German", "114"},
	{"Italian", "118"},
	{"Portuguese", "130"},
	{"Dutch", "137"},
	{"Russian", "138"},
	{"Polish", "131"},
	{"Swedish", "175"},
	{"Turkish", "97"},
	{"Arabic", "14"},
	{"Japanese", "120"},
	{"Korean", "121"},
	{"Mandarin Chinese", "186"},
}

// Code resolves a display name (case-insensitive) to the service code. A
// value that already is a known code is passed through unchanged. Unknown
// values return false; callers may still forward them raw, since code
// validation is the server's job.
func Code(nameOrCode string) (string, bool) {
	for _, l := range Supported {
		if strings.EqualFold(l.Name, nameOrCode) || l.Code == nameOrCode {
			return l.Code, true
		}
	}
	return "", false
}

// Names returns the display names of the supported set, in display order.
func Names() []string {
	names := make([]string, 0, len(Supported))
	for _, l := range Supported {
		names = append(names, l.Name)
	}
	return names
}
