/*
Copyright © 2025 the DotSpatial-Go authors.
This file is part of DotSpatial-Go.

DotSpatial-Go is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DotSpatial-Go is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DotSpatial-Go.  If not, see <http://www.gnu.org/licenses/>.
*/

package positioning

import (
	"strings"

	"golang.org/x/text/language"
)

// Culture carries the locale conventions used when measurement values
// are rendered as or parsed from text. Only the numeric separators
// matter for the conversion bridge.
type Culture struct {
	Tag language.Tag

	decimal rune
	group   rune
}

// InvariantCulture uses '.' as the decimal separator and ',' as the
// group separator regardless of the environment.
var InvariantCulture = Culture{Tag: language.Und, decimal: '.', group: ','}

// commaDecimalBases lists the language bases that write decimals with a
// comma. The set is not exhaustive; unknown languages fall back to the
// invariant separators.
var commaDecimalBases = map[string]bool{
	"cs": true, "da": true, "de": true, "el": true, "es": true,
	"fi": true, "fr": true, "hu": true, "id": true, "it": true,
	"nb": true, "nl": true, "no": true, "pl": true, "pt": true,
	"ro": true, "ru": true, "sv": true, "tr": true, "uk": true,
	"vi": true,
}

// CultureFor returns the culture for the given language tag.
func CultureFor(tag language.Tag) Culture {
	base, _ := tag.Base()
	if commaDecimalBases[base.String()] {
		return Culture{Tag: tag, decimal: ',', group: '.'}
	}
	return Culture{Tag: tag, decimal: '.', group: ','}
}

// normalizeNumber rewrites a culture-formatted numeric string into the
// form accepted by strconv.ParseFloat.
func (c Culture) normalizeNumber(s string) string {
	if c.group != 0 {
		s = strings.ReplaceAll(s, string(c.group), "")
	}
	if c.decimal != '.' && c.decimal != 0 {
		s = strings.Replace(s, string(c.decimal), ".", 1)
	}
	return s
}
