package player

import (
	"cmp"
	"fmt"
	"strings"
)

// Order selects the field a player query is sorted by
type Order string

const (
	OrderId         Order = "ID"
	OrderName       Order = "NAME"
	OrderExperience Order = "EXPERIENCE"
	OrderBirthday   Order = "BIRTHDAY"
	OrderLevel      Order = "LEVEL"
)

// ParseOrder parses an order key, ignoring case.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToUpper(strings.TrimSpace(s))); o {
	case OrderId, OrderName, OrderExperience, OrderBirthday, OrderLevel:
		return o, nil
	default:
		return "", fmt.Errorf("unknown order [%s]", s)
	}
}

// FieldName returns the lower case field name the order sorts on
func (o Order) FieldName() string {
	return strings.ToLower(string(o))
}

// Compare orders two players ascending on the selected field.
func (o Order) Compare(a, b Player) int {
	switch o {
	case OrderName:
		return strings.Compare(a.Name(), b.Name())
	case OrderExperience:
		return cmp.Compare(a.Experience(), b.Experience())
	case OrderBirthday:
		return a.Birthday().Compare(b.Birthday())
	case OrderLevel:
		return cmp.Compare(a.Level(), b.Level())
	default:
		return cmp.Compare(a.Id(), b.Id())
	}
}
