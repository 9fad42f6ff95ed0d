package usecase

import (
	"sort"
	"strings"
	"unicode"

	"github.com/winery-map/internal/domain"
)

// Порядок флагов услуг как в схеме коллекции
var serviceOrder = []string{
	"pet_friendly",
	"corporate_events",
	"motorhome_parking",
	"accommodation",
	"ev_charging",
	"restaurant",
}

// Булевы поля верхнего уровня, показываемые как отличительные черты
var highlightFields = []string{
	"wine_tours",
	"children_activities",
	"starlight_destination",
}

// TitleCase делает заглавной первую букву каждого слова.
// Границы слов: начало строки, пробельные символы и дефис. Остальные буквы не меняются.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	boundary := true
	for _, r := range s {
		if boundary && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToTitle(r))
		} else {
			b.WriteRune(r)
		}
		boundary = unicode.IsSpace(r) || r == '-'
	}

	return b.String()
}

// Classifications приводит поле классификации к канонической форме - списку строк.
// Одиночная строка - устаревшая форма, она становится списком из одного элемента.
func Classifications(v any) []string {
	switch c := v.(type) {
	case string:
		if strings.TrimSpace(c) == "" {
			return nil
		}
		return []string{c}
	case []string:
		return nonEmpty(c)
	case []any:
		out := make([]string, 0, len(c))
		for _, item := range c {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return nonEmpty(out)
	default:
		return nil
	}
}

// FormatClassification - значения классификации через ", " в title case
func FormatClassification(v any) string {
	values := Classifications(v)
	for i, s := range values {
		values[i] = TitleCase(strings.TrimSpace(s))
	}
	return strings.Join(values, ", ")
}

// FlagLabel - "pet_friendly" -> "Pet Friendly"
func FlagLabel(field string) string {
	return TitleCase(strings.ReplaceAll(field, "_", " "))
}

// ServiceLabels возвращает подписи только для флагов со значением true.
// Известные флаги идут в порядке схемы, остальные - по алфавиту после них.
func ServiceLabels(flags map[string]any) []string {
	labels := make([]string, 0, len(flags))

	known := make(map[string]struct{}, len(serviceOrder))
	for _, key := range serviceOrder {
		known[key] = struct{}{}
		if isTrue(flags[key]) {
			labels = append(labels, FlagLabel(key))
		}
	}

	extra := make([]string, 0)
	for key, v := range flags {
		if _, ok := known[key]; ok {
			continue
		}
		if isTrue(v) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)

	for _, key := range extra {
		labels = append(labels, FlagLabel(key))
	}

	return labels
}

// BuildDetailView готовит поля записи для панели деталей
func BuildDetailView(rec domain.Record) domain.DetailView {
	attrs := rec.Attributes

	services, _ := attrs[domain.FieldServices].(map[string]any)

	languages := Classifications(attrs[domain.FieldTourLanguages])
	for i, lang := range languages {
		languages[i] = TitleCase(lang)
	}

	highlights := make([]string, 0, len(highlightFields))
	for _, field := range highlightFields {
		if isTrue(attrs[field]) {
			highlights = append(highlights, FlagLabel(field))
		}
	}

	if languages == nil {
		languages = []string{}
	}

	return domain.DetailView{
		ID:             rec.ID,
		Name:           attrs.String(domain.FieldName),
		Address:        attrs.String(domain.FieldAddress),
		Website:        attrs.String(domain.FieldWebsite),
		Classification: FormatClassification(attrs[domain.FieldClassification]),
		Services:       ServiceLabels(services),
		TourLanguages:  languages,
		Highlights:     highlights,
	}
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, s := range values {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
