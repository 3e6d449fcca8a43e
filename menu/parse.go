package menu

import (
	"fmt"
	"strconv"
	"strings"

	"food-picker/models"

	"golang.org/x/text/width"
)

// FormatError means a token is neither "name" nor "name(weight)".
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid menu item %q: expected name or name(weight)", e.Token)
}

// ValidationError means a token had a weight of zero or below, or above MaxWeight.
type ValidationError struct {
	Token    string
	TooLarge bool
}

func (e *ValidationError) Error() string {
	if e.TooLarge {
		return fmt.Sprintf("invalid menu item %q: weight must not exceed %s", e.Token, FormatWeight(MaxWeight))
	}
	return fmt.Sprintf("invalid menu item %q: weight must not be negative", e.Token)
}

// Parse turns tokens such as "面包(2)", "鸡蛋" or "粥（0.5）" into entries for
// one scope. A missing weight means 1. The name is everything before the
// trailing "(weight)", so "奶茶(大杯)(2)" names "奶茶(大杯)". The whole batch fails on the first bad
// token, so callers never see a partial result.
func Parse(userID string, menuType models.MenuType, tokens []string) ([]models.MenuEntry, error) {
	entries := make([]models.MenuEntry, 0, len(tokens))
	for _, tok := range tokens {
		name, weight, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		e, err := models.NewMenuEntry(userID, name, menuType, weight)
		if err != nil {
			return nil, fmt.Errorf("build entry %q: %w", tok, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseToken(raw string) (string, float64, error) {
	tok := normalizeParens(strings.TrimSpace(raw))
	if tok == "" {
		return "", 0, &FormatError{Token: raw}
	}

	if !strings.HasSuffix(tok, ")") {
		if strings.ContainsAny(tok, "()") {
			return "", 0, &FormatError{Token: raw}
		}
		return tok, 1, nil
	}

	open := strings.LastIndexByte(tok, '(')
	if open <= 0 {
		return "", 0, &FormatError{Token: raw}
	}
	name, num := tok[:open], tok[open+1:len(tok)-1]

	if rest, neg := strings.CutPrefix(num, "-"); neg {
		if isDecimal(rest) {
			return "", 0, &ValidationError{Token: raw}
		}
		return "", 0, &FormatError{Token: raw}
	}
	if !isDecimal(num) {
		return "", 0, &FormatError{Token: raw}
	}
	w, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", 0, &FormatError{Token: raw}
	}
	if w <= 0 {
		return "", 0, &ValidationError{Token: raw}
	}
	if w > MaxWeight {
		return "", 0, &ValidationError{Token: raw, TooLarge: true}
	}
	return name, w, nil
}

// isDecimal accepts 12, 1.5 and .5.
func isDecimal(s string) bool {
	intPart, frac, hasDot := strings.Cut(s, ".")
	if !hasDot {
		return s != "" && allDigits(s)
	}
	return allDigits(intPart) && frac != "" && allDigits(frac)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeParens folds fullwidth parentheses to ASCII and leaves every other
// rune alone, so fullwidth letters in item names survive.
func normalizeParens(s string) string {
	return strings.Map(func(r rune) rune {
		p := width.LookupRune(r)
		if p.Kind() != width.EastAsianFullwidth {
			return r
		}
		if n := p.Narrow(); n == '(' || n == ')' {
			return n
		}
		return r
	}, s)
}
