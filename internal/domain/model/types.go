// Package model contains the domain types shared between the catalog,
// the computation pipeline, and the query surface.
package model

import "fmt"

// EventType identifies the tournament class of a catalog event.
type EventType string

// Tournament classes recognized by the catalog.
const (
	WinterOlympics       EventType = "winter-olympics"
	SummerOlympics       EventType = "summer-olympics"
	WorldChampionship    EventType = "world-championship"
	EuropeanChampionship EventType = "european-championship"
	ThayerTuttTrophy     EventType = "thayer-tutt"
	DevelopmentCup       EventType = "development-cup"
	RegionalTrophy       EventType = "regional"
)

// typeKeys are the short keys used in spreadsheet sheet names,
// e.g. "1931_WC".
var typeKeys = map[EventType]string{
	WinterOlympics:       "WOG",
	SummerOlympics:       "SOG",
	WorldChampionship:    "WC",
	EuropeanChampionship: "EC",
	ThayerTuttTrophy:     "TTT",
	DevelopmentCup:       "DC",
	RegionalTrophy:       "REG",
}

// Valid reports whether t is one of the recognized tournament classes.
func (t EventType) Valid() bool {
	_, ok := typeKeys[t]
	return ok
}

// Key returns the short spreadsheet key for the event type, or "" for
// unrecognized types.
func (t EventType) Key() string {
	return typeKeys[t]
}

// Kind reports which selection bucket the event type belongs to.
// Olympic results are capped separately from championships during
// window selection, and Other counts only when explicitly configured.
func (t EventType) Kind() Kind {
	switch t {
	case WinterOlympics, SummerOlympics, ThayerTuttTrophy:
		return KindOlympic
	case WorldChampionship, EuropeanChampionship, DevelopmentCup:
		return KindChampionship
	default:
		return KindOther
	}
}

// Seniority orders event types inside a merged superevent; participants
// of a lower value rank above those of a higher one. The Thayer Tutt
// Trophy, contested by teams absent from the Olympic tournament, slots
// below the championships it shares a season with.
func (t EventType) Seniority() int {
	switch t {
	case WinterOlympics:
		return 1
	case SummerOlympics:
		return 2
	case WorldChampionship:
		return 3
	case EuropeanChampionship:
		return 4
	case ThayerTuttTrophy:
		return 5
	case DevelopmentCup:
		return 6
	default:
		return 7
	}
}

// ParseEventType accepts either the long form ("world-championship") or
// the spreadsheet key ("WC").
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if t.Valid() {
		return t, nil
	}
	for et, key := range typeKeys {
		if key == s {
			return et, nil
		}
	}
	return "", fmt.Errorf("unrecognized event type %q", s)
}

// Kind buckets superevents for window selection.
type Kind string

const (
	KindOlympic      Kind = "olympic"
	KindChampionship Kind = "championship"
	KindOther        Kind = "other"
)

// letter returns the single-character suffix used in superevent labels.
func (k Kind) letter() string {
	switch k {
	case KindOlympic:
		return "O"
	case KindChampionship:
		return "C"
	default:
		return "X"
	}
}

// Ordering declares how an event's internal order arose. The grouper
// consumes it uniformly so exceptional years stay data, not code.
type Ordering string

const (
	// OrderingResults marks explicit final ranks from played rounds.
	OrderingResults Ordering = "results"
	// OrderingGroups marks group-stage positions with no head-to-head
	// final order across groups.
	OrderingGroups Ordering = "groups"
	// OrderingSeeding marks placements resolved from seeding, e.g. for
	// a year disrupted by withdrawals. Taken as given.
	OrderingSeeding Ordering = "seeding"
)
