package ui

import "testing"

func TestPagerLayout_Panels(t *testing.T) {
	l := PagerLayout{StripHeight: 2}
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, PanelTabs},
		{39, 1, PanelTabs},
		{0, 2, PanelContent},
		{10, 8, PanelContent},
		{0, 9, PanelHelp},
		{40, 0, ""},
		{0, 10, ""},
	}
	for _, tt := range tests {
		if got := l.PanelAt(tt.x, tt.y, 40, 10); got != tt.want {
			t.Errorf("PanelAt(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPagerLayout_ContentHeight(t *testing.T) {
	l := PagerLayout{StripHeight: 3}
	if got := l.ContentHeight(10); got != 6 {
		t.Errorf("ContentHeight(10) = %d, want 6", got)
	}
	if got := l.ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
	if got := (PagerLayout{}).ContentHeight(5); got != 3 {
		t.Errorf("zero strip height counts as one row, got %d", got)
	}
}

func TestPagerLayout_FocusOrder(t *testing.T) {
	order := PagerLayout{}.FocusOrder()
	if len(order) != 2 || order[0] != PanelTabs || order[1] != PanelContent {
		t.Errorf("FocusOrder = %v", order)
	}
}
