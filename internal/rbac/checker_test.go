package rbac

import "testing"

func TestCheckerHas(t *testing.T) {
	c := NewChecker(nil)

	tests := []struct {
		role string
		perm string
		want bool
	}{
		{"evaluator", "rubric:view", true},
		{"evaluator", "evaluation:edit", true}, // via evaluation:*
		{"evaluator", "evaluation:view", true},
		{"evaluator", "users:list", false},
		{"admin", "users:list", true}, // via *
		{"admin", "anything:at-all", true},
		{"ghost", "rubric:view", false},
		{"", "rubric:view", false},
	}
	for _, tc := range tests {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestCheckerAny(t *testing.T) {
	c := NewChecker(nil)
	if !c.Any("evaluator", "users:list", "report:view") {
		t.Error("Any should pass when one permission matches")
	}
	if c.Any("evaluator", "users:list", "users:delete") {
		t.Error("Any should fail when none match")
	}
}
