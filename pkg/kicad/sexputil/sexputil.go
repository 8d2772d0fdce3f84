// Package sexputil provides navigation and extraction helpers over parsed
// S-expressions, used to inspect generated footprint files.
package sexputil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/sexp"
)

// atomText renders an atom's text. The sexp interface exposes formatting
// through fmt.Formatter rather than a String method.
func atomText(s sexp.Sexp) string {
	return fmt.Sprintf("%v", s)
}

// Items flattens an S-expression list into a slice via Head/Tail walking.
// Atoms and nil yield an empty slice.
func Items(s sexp.Sexp) []sexp.Sexp {
	var items []sexp.Sexp
	if s == nil || s.IsLeaf() {
		return items
	}

	// Bounded walk; generated footprints are small but zone-like payloads
	// from other tools may not be.
	for i := 0; i < 100000; i++ {
		if s == nil || s.LeafCount() == 0 {
			break
		}
		if head := s.Head(); head != nil {
			items = append(items, head)
		}
		if s.LeafCount() <= 1 {
			break
		}
		s = s.Tail()
		if s == nil || s.IsLeaf() {
			break
		}
	}
	return items
}

// NodeName returns the head symbol of a list, or the atom text itself.
func NodeName(s sexp.Sexp) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil s-expression")
	}
	if s.IsLeaf() {
		return atomText(s), nil
	}
	head := s.Head()
	if head == nil || !head.IsLeaf() {
		return "", fmt.Errorf("list does not start with a symbol")
	}
	return atomText(head), nil
}

// FindNode returns the first child list whose head symbol equals key.
func FindNode(s sexp.Sexp, key string) (sexp.Sexp, bool) {
	for _, item := range Items(s) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, err := NodeName(item); err == nil && name == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes returns every child list whose head symbol equals key.
func FindAllNodes(s sexp.Sexp, key string) []sexp.Sexp {
	var results []sexp.Sexp
	for _, item := range Items(s) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, err := NodeName(item); err == nil && name == key {
			results = append(results, item)
		}
	}
	return results
}

// GetString extracts the atom at index in a list. Index 0 is the head symbol.
func GetString(s sexp.Sexp, index int) (string, error) {
	items := Items(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}
	if !items[index].IsLeaf() {
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}
	return atomText(items[index]), nil
}

// GetFloat extracts and parses a numeric atom at index.
func GetFloat(s sexp.Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return v, nil
}

// QuotedString extracts a possibly quoted string starting at index. The
// underlying parser splits quoted strings containing spaces into several
// atoms, so the pieces are re-joined until the closing quote.
func QuotedString(s sexp.Sexp, index int) (string, error) {
	items := Items(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}
	if !items[index].IsLeaf() {
		return "", fmt.Errorf("expected atom at index %d", index)
	}

	first := atomText(items[index])
	if !strings.HasPrefix(first, `"`) {
		return first, nil
	}

	if strings.HasSuffix(first, `"`) && len(first) >= 2 {
		return strings.TrimSuffix(strings.TrimPrefix(first, `"`), `"`), nil
	}

	parts := []string{strings.TrimPrefix(first, `"`)}
	for i := index + 1; i < len(items); i++ {
		if !items[i].IsLeaf() {
			break
		}
		part := atomText(items[i])
		if strings.HasSuffix(part, `"`) {
			parts = append(parts, strings.TrimSuffix(part, `"`))
			return strings.Join(parts, " "), nil
		}
		parts = append(parts, part)
	}
	// Unclosed quote; return what was collected.
	return strings.Join(parts, " "), nil
}
