package menu

import (
	"errors"
	"testing"

	"food-picker/models"
)

const testUser = "telegram:1"

func TestParse(t *testing.T) {
	entries, err := Parse(testUser, models.MenuBreakfast, []string{"面包(2)", "鸡蛋"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ItemName != "面包" || entries[0].Weight != 2 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].ItemName != "鸡蛋" || entries[1].Weight != 1 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	for _, e := range entries {
		if e.UserID != testUser || e.MenuType != models.MenuBreakfast {
			t.Errorf("entry scope = %+v", e)
		}
	}
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		tok    string
		name   string
		weight float64
	}{
		{"鸡蛋", "鸡蛋", 1},
		{"面包(2)", "面包", 2},
		{"粥（3）", "粥", 3},
		{"粥(0.5)", "粥", 0.5},
		{"粥（.25）", "粥", 0.25},
		{"豆浆(10.75)", "豆浆", 10.75},
		{"  油条(4)  ", "油条", 4},
		{"ＡＢＣ(2)", "ＡＢＣ", 2},
		{"a(1)(2)", "a(1)", 2},
		{"奶茶（大杯）(3)", "奶茶(大杯)", 3},
		{"a((1)", "a(", 1},
		{"米线(1000000000)", "米线", MaxWeight},
	}
	for _, tt := range tests {
		name, w, err := parseToken(tt.tok)
		if err != nil {
			t.Errorf("parseToken(%q): %v", tt.tok, err)
			continue
		}
		if name != tt.name || w != tt.weight {
			t.Errorf("parseToken(%q) = %q, %v, want %q, %v", tt.tok, name, w, tt.name, tt.weight)
		}
	}
}

func TestParseRejectsFormat(t *testing.T) {
	bad := []string{"", "(2)", "a()", "a(x)", "a(1.)", "a(1", "a)", "a(1)b", "奶茶(大杯)", "a(1e3)", "a(-x)", "a(+1)"}
	for _, tok := range bad {
		_, err := Parse(testUser, models.MenuLunch, []string{tok})
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("Parse(%q) err = %v, want FormatError", tok, err)
		}
	}
}

func TestParseRejectsNegativeWeight(t *testing.T) {
	for _, tok := range []string{"牛奶(-1)", "牛奶（-0.5）", "牛奶(0)", "牛奶(0.0)"} {
		entries, err := Parse(testUser, models.MenuDrink, []string{tok})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Parse(%q) err = %v, want ValidationError", tok, err)
		}
		if entries != nil {
			t.Errorf("Parse(%q) returned entries %v", tok, entries)
		}
	}
	_, err := Parse(testUser, models.MenuDrink, []string{"牛奶(-1)"})
	if err == nil || err.Error() != `invalid menu item "牛奶(-1)": weight must not be negative` {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParseRejectsHugeWeight(t *testing.T) {
	for _, tok := range []string{"牛奶(1000000001)", "牛奶(179769313486231570000000000000000000000000000000000)"} {
		_, err := Parse(testUser, models.MenuDrink, []string{tok})
		var ve *ValidationError
		if !errors.As(err, &ve) || !ve.TooLarge {
			t.Errorf("Parse(%q) err = %v, want ValidationError with TooLarge", tok, err)
		}
	}
	_, err := Parse(testUser, models.MenuDrink, []string{"牛奶(2000000000)"})
	if err == nil || err.Error() != `invalid menu item "牛奶(2000000000)": weight must not exceed 1000000000` {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParseIsAllOrNothing(t *testing.T) {
	entries, err := Parse(testUser, models.MenuLunch, []string{"a(1)", "bad("})
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FormatError", err)
	}
	if fe.Token != "bad(" {
		t.Errorf("FormatError.Token = %q", fe.Token)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want none", len(entries))
	}
}

func TestParseAndMergeLeavesMenuOnError(t *testing.T) {
	m := New(models.MenuEntry{UserID: testUser, ItemName: "a", MenuType: models.MenuLunch, Weight: 1})
	got, inc, err := m.ParseAndMerge(testUser, models.MenuLunch, []string{"a(5)", "b(-1)"})
	if err == nil {
		t.Fatal("expected error")
	}
	if inc.Len() != 0 {
		t.Errorf("increments = %v", inc)
	}
	if got.Entries()[0].Weight != 1 || got.Len() != 1 {
		t.Errorf("menu changed on error: %+v", got.Entries())
	}
}
