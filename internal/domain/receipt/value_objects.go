package receipt

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field patterns are anchored full matches. \p{L}\p{N} rather than Go's
// ASCII-only \w: retailers and descriptions may carry letters in any script.
var (
	retailerPattern    = regexp.MustCompile(`^[\p{L}\p{N}_\s\-&]+$`)
	descriptionPattern = regexp.MustCompile(`^[\p{L}\p{N}_\s\-]+$`)
	amountPattern      = regexp.MustCompile(`^\d+\.\d{2}$`)
	clockPattern       = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Accepted purchase date layouts, tried in order; first match wins.
var dateLayouts = []string{
	"January 2, 2006",
	"2 January 2006",
	"01/02/2006",
	"2006-01-02",
	"02 01 06",
	"02 01 2006",
}

const dateFormatExamples = "January 1, 2022 | 1 February 2022 | 01/01/2022 | 2022-01-01 | 01 01 22 | 01 01 2022"

type Retailer struct {
	value string
}

func NewRetailer(v string) (Retailer, error) {
	if !retailerPattern.MatchString(v) {
		return Retailer{}, fmt.Errorf("retailer must be non-empty and contain only letters, digits, underscores, spaces, hyphens and ampersands")
	}
	return Retailer{value: v}, nil
}

func (r Retailer) String() string { return r.value }

type PurchaseDate struct {
	value  string
	parsed time.Time
}

func NewPurchaseDate(v string) (PurchaseDate, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return PurchaseDate{value: v, parsed: t}, nil
		}
	}
	return PurchaseDate{}, fmt.Errorf("purchaseDate is not in an accepted format (examples: %s)", dateFormatExamples)
}

func (d PurchaseDate) String() string  { return d.value }
func (d PurchaseDate) Time() time.Time { return d.parsed }

type PurchaseTime struct {
	value   string
	minutes int // since midnight
}

func NewPurchaseTime(v string) (PurchaseTime, error) {
	if !clockPattern.MatchString(v) {
		return PurchaseTime{}, fmt.Errorf("purchaseTime must be a 24-hour time in HH:MM form")
	}
	hour := int(v[0]-'0')*10 + int(v[1]-'0')
	minute := int(v[3]-'0')*10 + int(v[4]-'0')
	return PurchaseTime{value: v, minutes: hour*60 + minute}, nil
}

func (t PurchaseTime) String() string            { return t.value }
func (t PurchaseTime) MinutesSinceMidnight() int { return t.minutes }

// Amount is a money field kept in exact decimal form; the original submitted
// string is retained verbatim for storage.
type Amount struct {
	value  string
	parsed decimal.Decimal
}

func NewAmount(field, v string) (Amount, error) {
	if !amountPattern.MatchString(v) {
		return Amount{}, fmt.Errorf("%s must be an amount with exactly two decimal places (e.g. 2.25)", field)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		// unreachable for strings matching the pattern
		return Amount{}, fmt.Errorf("%s is not a parseable amount", field)
	}
	return Amount{value: v, parsed: d}, nil
}

func (a Amount) String() string           { return a.value }
func (a Amount) Decimal() decimal.Decimal { return a.parsed }

// Clamped floors negative values at zero. The accepted pattern cannot encode
// a sign, but scoring must never let a negative amount subtract points.
func (a Amount) Clamped() decimal.Decimal {
	if a.parsed.IsNegative() {
		return decimal.Zero
	}
	return a.parsed
}

type Description struct {
	value string
}

func NewDescription(field, v string) (Description, error) {
	if !descriptionPattern.MatchString(v) {
		return Description{}, fmt.Errorf("%s must be non-empty and contain only letters, digits, underscores, spaces and hyphens", field)
	}
	return Description{value: v}, nil
}

func (d Description) String() string { return d.value }

// TrimmedLength counts runes after stripping outer whitespace; interior
// whitespace still counts.
func (d Description) TrimmedLength() int {
	return utf8.RuneCountInString(strings.TrimSpace(d.value))
}
