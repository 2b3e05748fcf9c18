// Package format holds the display helpers shared by the receipt printer and
// the terminal front-end. Everything here is pure.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Formatter renders numbers for one locale.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for a BCP 47 locale such as "pt-BR". Unknown or
// empty locales fall back to Brazilian Portuguese.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.BrazilianPortuguese
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Money formats v with exactly two fraction digits, e.g. 1.234,50 for pt-BR.
func (f *Formatter) Money(v decimal.Decimal) string {
	return f.printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// Currency prefixes Money with the Real symbol.
func (f *Formatter) Currency(v decimal.Decimal) string {
	return "R$ " + f.Money(v)
}

// Today returns the wire date for t.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// Date converts a YYYY-MM-DD wire date into dd/mm/yyyy. Unparseable input is
// returned unchanged.
func Date(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// DateTime renders a timestamp as dd/mm/yyyy hh:mm:ss.
func DateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// Time renders the clock part of a timestamp.
func Time(t time.Time) string {
	return t.Format("15:04:05")
}

var (
	weekdays = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}
	months   = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

// LongDate renders the header date, e.g. "sábado, 17 de outubro de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

var productLabels = map[string]string{
	"lanche":         "Lanche",
	"lanche_gourmet": "Lanche Gourmet",
	"porcao":         "Porção",
	"bebida":         "Bebida",
}

// ProductTypeLabel returns the display label for a product type code.
// Unknown codes are capitalised.
func ProductTypeLabel(code string) string {
	if label, ok := productLabels[code]; ok {
		return label
	}
	if code == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(code)
	return string(unicode.ToUpper(r)) + code[size:]
}

// Truncate shortens s to at most n runes, marking the cut with a dot.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n-1])) + "."
}
