package service

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidSortOrder is returned for any sort directive other than asc or desc.
var ErrInvalidSortOrder = errors.New("Invalid sort order. Valid options are 'asc' or 'desc'")

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case string(Ascending):
		return Ascending, nil
	case string(Descending):
		return Descending, nil
	default:
		return "", ErrInvalidSortOrder
	}
}

// SortNames orders names in place by byte-wise comparison, without case folding.
func SortNames(names []string, order SortOrder) {
	if order == Descending {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
		return
	}
	sort.Strings(names)
}
