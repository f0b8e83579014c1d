package locations

import "strings"

// Level identifies one tier of the ward/area/locality/street hierarchy.
type Level int

const (
	LevelWard Level = iota
	LevelArea
	LevelLocality
	LevelStreet
)

// Record is one flat master-data row. Every property record carries the full
// name path from ward down to street.
type Record struct {
	WardName     string
	AreaName     string
	LocalityName string
	StreetName   string
}

// Selection holds the user's current choices, outermost first. Empty string
// means "not selected".
type Selection struct {
	Ward     string
	Area     string
	Locality string
	Street   string
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sameName(a, b string) bool {
	return norm(a) == norm(b)
}

func (s Selection) value(level Level) string {
	switch level {
	case LevelWard:
		return s.Ward
	case LevelArea:
		return s.Area
	case LevelLocality:
		return s.Locality
	case LevelStreet:
		return s.Street
	}
	return ""
}

func (r Record) value(level Level) string {
	switch level {
	case LevelWard:
		return r.WardName
	case LevelArea:
		return r.AreaName
	case LevelLocality:
		return r.LocalityName
	case LevelStreet:
		return r.StreetName
	}
	return ""
}

// Choose returns the selection with the given level set and every deeper
// level cleared. Changing an ancestor always invalidates its descendants.
func (s Selection) Choose(level Level, value string) Selection {
	switch level {
	case LevelWard:
		return Selection{Ward: value}
	case LevelArea:
		return Selection{Ward: s.Ward, Area: value}
	case LevelLocality:
		return Selection{Ward: s.Ward, Area: s.Area, Locality: value}
	case LevelStreet:
		return Selection{Ward: s.Ward, Area: s.Area, Locality: s.Locality, Street: value}
	}
	return s
}

// Enabled reports whether the control at the given level may be used: a
// level is enabled only when its parent level has a selection. Ward is
// always enabled.
func (s Selection) Enabled(level Level) bool {
	if level == LevelWard {
		return true
	}
	return s.value(level-1) != ""
}

// matchesAbove reports whether the record agrees with every selection
// strictly above the given level.
func matchesAbove(r Record, s Selection, level Level) bool {
	for l := LevelWard; l < level; l++ {
		if !sameName(r.value(l), s.value(l)) {
			return false
		}
	}
	return true
}

// Options computes the distinct values offered at a level, restricted to
// records matching every ancestor selection. Values keep first-seen order so
// the list is deterministic; an empty filtered set yields an empty list.
func Options(records []Record, s Selection, level Level) []string {
	seen := make(map[string]bool)
	options := []string{}
	for _, r := range records {
		if !matchesAbove(r, s, level) {
			continue
		}
		v := strings.TrimSpace(r.value(level))
		if v == "" {
			continue
		}
		key := norm(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, v)
	}
	return options
}

// Match reports whether a record satisfies every non-empty field of the
// selection. Comparison is whitespace-trimmed and case-insensitive.
func Match(r Record, s Selection) bool {
	for l := LevelWard; l <= LevelStreet; l++ {
		want := s.value(l)
		if strings.TrimSpace(want) == "" {
			continue
		}
		if !sameName(r.value(l), want) {
			return false
		}
	}
	return true
}

// Filter returns the records matching the selection, in input order.
func Filter(records []Record, s Selection) []Record {
	matched := []Record{}
	for _, r := range records {
		if Match(r, s) {
			matched = append(matched, r)
		}
	}
	return matched
}
