package scan

import "golang.org/x/text/unicode/norm"

// normalizeText applies NFKC normalization to convert mathematical/stylistic
// Unicode variants to their plain equivalents before keyword matching
//
// Examples:
//
//	𝐮𝐫𝐠𝐞𝐧𝐭𝐞 → urgente (mathematical bold)
//	ｕｒｇｅｎｔｅ → urgente (fullwidth)
//
// NFKC is the identity on the catalog's pt-BR keywords, so matching
// semantics are unchanged for plain text.
func normalizeText(text string) string {
	return norm.NFKC.String(text)
}
