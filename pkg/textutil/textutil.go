package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// Así "Cerámica Monarca" y "ceramica monarca" normalizan al mismo valor.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeSearch normaliza un término de búsqueda: minúsculas, sin tildes,
// espacios colapsados. Se usa para búsqueda insensible a acentos de nombres
// de productos y clientes en español.
func NormalizeSearch(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
