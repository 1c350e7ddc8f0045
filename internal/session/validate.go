package session

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	positiveIntPattern = regexp.MustCompile(`^[1-9][0-9]*$`)
	currencyPattern    = regexp.MustCompile(`^[0-9]{1,3}(,?[0-9]{3})*(\.[0-9]{1,2})?$`)
)

func validatePositiveInt(s string) error {
	if !positiveIntPattern.MatchString(strings.TrimSpace(s)) {
		return errors.New("please enter a valid whole number")
	}
	return nil
}

// validateID accepts a positive integer no greater than max. The bound is
// queried fresh for every validation cycle, never cached across sessions.
func validateID(max int64) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if !positiveIntPattern.MatchString(s) {
			return errors.New("please enter a valid ID")
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id > max {
			return errors.New("please enter a valid ID")
		}
		return nil
	}
}

func validateCurrency(s string) error {
	if !currencyPattern.MatchString(strings.TrimSpace(s)) {
		return errors.New("please enter a valid positive USD amount")
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("please enter a name")
	}
	return nil
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, err)
	}
	return n, nil
}
