package dialect

import (
	"fmt"

	"csvprobe/internal/config"
)

// Quoting is the field-quoting convention of a delimited file.
type Quoting int

const (
	QuoteMinimal Quoting = iota
	QuoteAll
	QuoteNonNumeric
	QuoteNone
)

func (q Quoting) String() string {
	switch q {
	case QuoteAll:
		return "QUOTE_ALL"
	case QuoteNonNumeric:
		return "QUOTE_NONNUMERIC"
	case QuoteNone:
		return "QUOTE_NONE"
	default:
		return "QUOTE_MINIMAL"
	}
}

// ParseQuoting maps a configured quoting name to its Quoting value.
func ParseQuoting(name string) (Quoting, error) {
	switch name {
	case config.QuoteAll:
		return QuoteAll, nil
	case config.QuoteMinimal:
		return QuoteMinimal, nil
	case config.QuoteNonNumeric:
		return QuoteNonNumeric, nil
	case config.QuoteNone:
		return QuoteNone, nil
	}
	return QuoteMinimal, fmt.Errorf("unknown quoting mode %q", name)
}

// Dialect is the set of syntactic conventions needed to split raw text
// into records and fields. It is constructed once per run, either from
// explicit overrides or by sniffing, and never mutated afterwards.
type Dialect struct {
	Delimiter        rune
	Quoting          Quoting
	QuoteChar        rune
	EscapeChar       rune // 0 when no escape character is in effect
	LineTerminator   string
	SkipInitialSpace bool
	DoubleQuote      bool
}

// HeaderState records whether the first sampled record is a header and,
// if so, holds it so it can be excluded from field statistics.
type HeaderState struct {
	HasHeader bool
	Header    []string
}
