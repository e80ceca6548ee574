// Package grading interprets raw grade cells.
package grading

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

const (
	// PassingThreshold is the lowest passing grade (inclusive).
	PassingThreshold = 7.0
	// TEPThreshold is the lowest grade valorated TEP rather than TED.
	TEPThreshold = 4.0
)

// pendingCodes are administrative codes accepted in final columns.
var pendingCodes = []string{"CSA", "CCA"}

// Outcome is the classification of a single grade cell.
type Outcome int

const (
	// Empty is a blank cell; it is not scored.
	Empty Outcome = iota
	// Invalid is a non-blank cell without a readable grade; it is not scored.
	Invalid
	// Passing is a numeric grade at or above PassingThreshold.
	Passing
	// Deficient is a numeric grade below PassingThreshold.
	Deficient
	// Pending is a CSA/CCA code in a final column.
	Pending
)

func (o Outcome) String() string {
	switch o {
	case Empty:
		return "empty"
	case Invalid:
		return "invalid"
	case Passing:
		return "passing"
	case Deficient:
		return "deficient"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Scored reports whether the outcome takes part in tallies.
func (o Outcome) Scored() bool {
	return o == Passing || o == Deficient || o == Pending
}

// IsDeficient reports whether the outcome counts as a deficiency.
// Pending codes are deficiency-equivalent.
func (o Outcome) IsDeficient() bool {
	return o == Deficient || o == Pending
}

// Classify interprets value according to the rules of a column kind.
func Classify(value models.Cell, kind models.ColumnKind) Outcome {
	if isBlank(value) {
		return Empty
	}
	if kind == models.KindFinal && IsPendingCode(value) {
		return Pending
	}
	n, ok := Numeric(value)
	if !ok {
		return Invalid
	}
	if n >= PassingThreshold {
		return Passing
	}
	return Deficient
}

// Valoration is the period valoration of a grade.
type Valoration string

const (
	None Valoration = ""
	TEA  Valoration = "TEA"
	TEP  Valoration = "TEP"
	TED  Valoration = "TED"
)

// Valorate maps a cell to TEA, TEP or TED. Unscored cells map to None.
func Valorate(value models.Cell, kind models.ColumnKind) Valoration {
	switch Classify(value, kind) {
	case Passing:
		return TEA
	case Pending:
		return TEP
	case Deficient:
		n, _ := Numeric(value)
		if n >= TEPThreshold {
			return TEP
		}
		return TED
	default:
		return None
	}
}

// IsPendingCode reports whether value starts with a CSA or CCA code.
func IsPendingCode(value models.Cell) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, code := range pendingCodes {
		if strings.HasPrefix(s, code) {
			return true
		}
	}
	return false
}

// Numeric returns the numeric grade held by value.
// Text is read up to the end of its leading number; both '.' and ','
// are accepted as decimal separator.
func Numeric(value models.Cell) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return leadingNumber(strings.TrimSpace(v))
	default:
		return leadingNumber(strings.TrimSpace(fmt.Sprint(v)))
	}
}

func leadingNumber(s string) (float64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	end := i
	if i < len(s) && (s[i] == '.' || s[i] == ',') {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if frac > 0 || digits > 0 {
			digits += frac
			end = j
		}
	}
	if digits == 0 {
		return 0, false
	}
	num := strings.Replace(s[:end], ",", ".", 1)
	num = strings.TrimSuffix(num, ".")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isBlank(value models.Cell) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}
