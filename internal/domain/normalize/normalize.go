package normalize

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"aprendiz/internal/domain/apprentice"
)

// Row is one spreadsheet-shaped record: unpredictable key casing, optional
// accents, locale-formatted values. Every canonical field may be absent.
type Row map[string]any

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
}

// Board statuses as written by earlier spreadsheet revisions.
var legacyStatuses = map[string]string{
	"nao-avaliado": apprentice.StatusNotEvaluated,
	"nao avaliado": apprentice.StatusNotEvaluated,
	"desligar":     apprentice.StatusDismiss,
	"recuperar":    apprentice.StatusRecover,
	"apto":         apprentice.StatusFit,
}

// Apprentice maps a raw row onto the canonical record. It never fails:
// missing or unparseable fields get explicit defaults.
func Apprentice(row Row) apprentice.Apprentice {
	record := apprentice.Apprentice{
		Registration:    String(row, "matricula", "id"),
		Name:            String(row, "nome", "name"),
		Role:            String(row, "cargo", "funcao", "setor"),
		Supervisor:      String(row, "supervisor"),
		Gender:          String(row, "sexo", "genero"),
		BirthDate:       Date(row, "nascimento", "datanascimento"),
		AdmissionDate:   Date(row, "admissao", "dataadmissao"),
		TerminationDate: Date(row, "termino", "demissao"),
		Photo:           String(row, "foto"),
		Status:          Status(String(row, "status")),
		Cycle:           int(Number(row, "ciclo", "cycle")),
		LastScore:       Number(row, "nota", "lastscore"),
	}
	if record.Cycle < 1 {
		record.Cycle = 1
	}
	if record.Cycle > 4 {
		record.Cycle = 4
	}
	if record.LastScore < 0 {
		record.LastScore = 0
	}
	return record
}

// Status folds a raw board status onto the canonical set, defaulting to
// not_evaluated for anything missing or unknown.
func Status(raw string) string {
	folded := FoldKey(raw)
	if folded == "" {
		return apprentice.StatusNotEvaluated
	}
	if apprentice.ValidStatus(folded) {
		return folded
	}
	if mapped, ok := legacyStatuses[folded]; ok {
		return mapped
	}
	return apprentice.StatusNotEvaluated
}

// String returns the first non-empty value among the aliased keys.
func String(row Row, keys ...string) string {
	value, ok := lookup(row, keys...)
	if !ok {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	default:
		return ""
	}
}

// Number parses a locale-tolerant decimal, accepting both "." and "," as the
// decimal separator. Unparseable input yields 0.
func Number(row Row, keys ...string) float64 {
	value, ok := lookup(row, keys...)
	if !ok {
		return 0
	}
	switch typed := value.(type) {
	case float64:
		return typed
	case int:
		return float64(typed)
	case string:
		return ParseDecimal(typed)
	default:
		return 0
	}
}

func ParseDecimal(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if strings.Contains(cleaned, ",") {
		// "1.234,5" is thousands-dot plus decimal-comma.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// Date parses the aliased keys into a calendar date. Values that do not parse
// or predate the year 2000 collapse to the zero time sentinel, never an error.
func Date(row Row, keys ...string) time.Time {
	value, ok := lookup(row, keys...)
	if !ok {
		return time.Time{}
	}
	switch typed := value.(type) {
	case time.Time:
		return validated(typed)
	case string:
		return ParseDate(typed)
	default:
		return time.Time{}
	}
}

func ParseDate(raw string) time.Time {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return validated(parsed)
		}
	}
	return time.Time{}
}

func validated(parsed time.Time) time.Time {
	if parsed.Year() < 2000 {
		return time.Time{}
	}
	return parsed
}

func lookup(row Row, keys ...string) (any, bool) {
	if len(row) == 0 {
		return nil, false
	}
	for rawKey, value := range row {
		folded := FoldKey(rawKey)
		for _, key := range keys {
			if folded == key {
				return value, true
			}
		}
	}
	return nil, false
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldKey lowercases, trims and strips diacritics so that "Matrícula",
// " matricula " and "MATRICULA" all address the same field.
func FoldKey(key string) string {
	folded, _, err := transform.String(foldTransformer, key)
	if err != nil {
		folded = key
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
