package rubric

import (
	"strconv"
	"strings"
)

// process assigns identifiers from category/item order. Item IDs are
// "<categoryIndex>.<itemIndex>" (1-based), so they are role-scoped and
// collide across roles; a rubric swap must always reset ratings.
func process(raw []Category) []Category {
	out := make([]Category, len(raw))
	for ci, cat := range raw {
		c := cat
		c.ID = "cat_" + strconv.Itoa(ci+1)
		c.Items = make([]Item, len(cat.Items))
		for ii, it := range cat.Items {
			code := strconv.Itoa(ci+1) + "." + strconv.Itoa(ii+1)
			it.ID = code
			it.Code = code
			c.Items[ii] = it
		}
		out[ci] = c
	}
	return out
}

// ForRole returns the processed rubric for a role. The result is always
// non-empty; unrecognized roles fall back to the Manager rubric.
func ForRole(role Role) []Category {
	switch role {
	case RoleManager:
		return process(dataManager)
	case RoleShiftLeader:
		return process(dataShiftLeader)
	case RoleOperator:
		return process(dataOperator)
	case RoleDriver:
		return process(dataDriver)
	case RoleWorker:
		return process(dataWorker)
	case RoleAccountant:
		return process(dataAccountant)
	default:
		return process(dataManager)
	}
}

// FindItem looks an item up by its role-scoped ID.
func FindItem(cats []Category, id string) (Item, bool) {
	for _, c := range cats {
		for _, it := range c.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// DetectRole matches a printed role label against the known role names,
// case-insensitively. ok is false when no label matches.
func DetectRole(label string) (Role, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return "", false
	}
	for _, r := range Roles {
		if strings.ToLower(RoleNames[r]) == l {
			return r, true
		}
	}
	return "", false
}
