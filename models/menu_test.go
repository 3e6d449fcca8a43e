package models

import "testing"

func TestParseMenuType(t *testing.T) {
	tests := []struct {
		in     string
		want   MenuType
		wantOK bool
	}{
		{"breakfast", MenuBreakfast, true},
		{"Lunch", MenuLunch, true},
		{" dinner ", MenuDinner, true},
		{"早饭", MenuBreakfast, true},
		{"午餐", MenuLunch, true},
		{"晚饭", MenuDinner, true},
		{"小吃", MenuSnacks, true},
		{"喝的", MenuDrink, true},
		{"supper", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMenuType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMenuType(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMenuTypeForHour(t *testing.T) {
	tests := []struct {
		hour int
		want MenuType
	}{
		{0, MenuDinner},
		{3, MenuDinner},
		{4, MenuBreakfast},
		{10, MenuBreakfast},
		{11, MenuLunch},
		{15, MenuLunch},
		{16, MenuDinner},
		{23, MenuDinner},
	}
	for _, tt := range tests {
		if got := MenuTypeForHour(tt.hour); got != tt.want {
			t.Errorf("MenuTypeForHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestNewMenuEntry(t *testing.T) {
	if _, err := NewMenuEntry("telegram:1", "面包", MenuBreakfast, 2); err != nil {
		t.Fatalf("valid entry: %v", err)
	}
	bad := []struct {
		name   string
		user   string
		item   string
		typ    MenuType
		weight float64
	}{
		{"no user", "", "面包", MenuBreakfast, 1},
		{"no item", "telegram:1", "", MenuBreakfast, 1},
		{"bad type", "telegram:1", "面包", "brunch", 1},
		{"zero weight", "telegram:1", "面包", MenuBreakfast, 0},
		{"negative weight", "telegram:1", "面包", MenuBreakfast, -1},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMenuEntry(tt.user, tt.item, tt.typ, tt.weight); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMenuEntryWithScope(t *testing.T) {
	e := MenuEntry{UserID: "telegram:1", ItemName: "粥", MenuType: MenuBreakfast, Weight: 3}
	moved := e.WithScope("telegram:2", MenuLunch)
	if moved.UserID != "telegram:2" || moved.MenuType != MenuLunch || moved.Weight != 3 {
		t.Errorf("WithScope = %+v", moved)
	}
	if e.UserID != "telegram:1" || e.MenuType != MenuBreakfast {
		t.Error("WithScope mutated the receiver")
	}
	if !e.SameKey(e.WithWeight(9)) {
		t.Error("weight must not be part of the key")
	}
	if UserID("telegram", 42) != "telegram:42" {
		t.Errorf("UserID = %q", UserID("telegram", 42))
	}
}
