package player

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	ParamName          = "name"
	ParamTitle         = "title"
	ParamRace          = "race"
	ParamProfession    = "profession"
	ParamAfter         = "after"
	ParamBefore        = "before"
	ParamBanned        = "banned"
	ParamMinExperience = "minExperience"
	ParamMaxExperience = "maxExperience"
	ParamMinLevel      = "minLevel"
	ParamMaxLevel      = "maxLevel"
	ParamOrder         = "order"
	ParamPageNumber    = "pageNumber"
	ParamPageSize      = "pageSize"
)

// ParseCriteria reads the filter dimensions present in the query. Absent or
// empty parameters place no constraint.
func ParseCriteria(q url.Values) (Criteria, error) {
	b := NewCriteriaBuilder()

	if v, ok := lookup(q, ParamName); ok {
		b.SetName(v)
	}
	if v, ok := lookup(q, ParamTitle); ok {
		b.SetTitle(v)
	}
	if v, ok := lookup(q, ParamRace); ok {
		r := Race(strings.ToUpper(v))
		if !r.Valid() {
			return Criteria{}, fmt.Errorf("unknown race [%s]", v)
		}
		b.SetRace(r)
	}
	if v, ok := lookup(q, ParamProfession); ok {
		p := Profession(strings.ToUpper(v))
		if !p.Valid() {
			return Criteria{}, fmt.Errorf("unknown profession [%s]", v)
		}
		b.SetProfession(p)
	}
	if v, ok := lookup(q, ParamAfter); ok {
		t, err := parseInstant(ParamAfter, v)
		if err != nil {
			return Criteria{}, err
		}
		b.SetAfter(t)
	}
	if v, ok := lookup(q, ParamBefore); ok {
		t, err := parseInstant(ParamBefore, v)
		if err != nil {
			return Criteria{}, err
		}
		b.SetBefore(t)
	}
	if v, ok := lookup(q, ParamBanned); ok {
		banned, err := strconv.ParseBool(v)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid %s [%s]", ParamBanned, v)
		}
		b.SetBanned(banned)
	}

	bounds := []struct {
		name string
		set  func(int64) *CriteriaBuilder
	}{
		{ParamMinExperience, b.SetMinExperience},
		{ParamMaxExperience, b.SetMaxExperience},
		{ParamMinLevel, b.SetMinLevel},
		{ParamMaxLevel, b.SetMaxLevel},
	}
	for _, bound := range bounds {
		v, ok := lookup(q, bound.name)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid %s [%s]", bound.name, v)
		}
		bound.set(n)
	}

	return b.Build(), nil
}

// ParseOrderParam reads the order key, defaulting to id.
func ParseOrderParam(q url.Values) (Order, error) {
	v, ok := lookup(q, ParamOrder)
	if !ok {
		return OrderId, nil
	}
	return ParseOrder(v)
}

// ParsePage reads the page window, defaulting to the first page of three.
func ParsePage(q url.Values) (Page, error) {
	page := DefaultPage()
	if v, ok := lookup(q, ParamPageNumber); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Page{}, fmt.Errorf("invalid %s [%s]", ParamPageNumber, v)
		}
		page.Number = uint32(n)
	}
	if v, ok := lookup(q, ParamPageSize); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Page{}, fmt.Errorf("invalid %s [%s]", ParamPageSize, v)
		}
		page.Size = uint32(n)
	}
	return page, nil
}

func lookup(q url.Values, key string) (string, bool) {
	v := q.Get(key)
	if v == "" {
		return "", false
	}
	return v, true
}

func parseInstant(name string, v string) (time.Time, error) {
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s [%s]", name, v)
	}
	return time.UnixMilli(ms).UTC(), nil
}
