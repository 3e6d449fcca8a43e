package bot

import (
	"reflect"
	"testing"

	"food-picker/models"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text   string
		want   command
		wantOK bool
	}{
		{"/eat", command{name: cmdEat, args: []string{}}, true},
		{"/eat lunch", command{name: cmdEat, args: []string{"lunch"}}, true},
		{"/EAT@FoodPickerBot 午饭", command{name: cmdEat, args: []string{"午饭"}}, true},
		{"/eat@OtherBot", command{}, false},
		{"/add 早饭 面包(2) 鸡蛋", command{name: cmdAdd, args: []string{"早饭", "面包(2)", "鸡蛋"}}, true},
		{"/orders", command{}, false},
		{"吃什么", command{name: cmdEat, args: []string{}}, true},
		{"吃什么 晚饭", command{name: cmdEat, args: []string{"晚饭"}}, true},
		{"早饭吃什么", command{name: cmdEat, args: []string{"breakfast"}}, true},
		{"喝什么", command{name: cmdEat, args: []string{"drink"}}, true},
		{"吃什么 添加 午饭 面条", command{name: cmdAdd, args: []string{"午饭", "面条"}}, true},
		{"吃什么.添加 午饭 面条", command{name: cmdAdd, args: []string{"午饭", "面条"}}, true},
		{"吃什么.清空", command{name: cmdClear, args: []string{}}, true},
		{"添加零食 薯片", command{name: cmdAdd, args: []string{"snacks", "薯片"}}, true},
		{"复制午饭 晚饭", command{name: cmdCopy, args: []string{"lunch", "晚饭"}}, true},
		{"早饭吃什么 添加 面包(2)", command{name: cmdAdd, args: []string{"breakfast", "面包(2)"}}, true},
		{"喝什么 添加 可乐 茶", command{name: cmdAdd, args: []string{"drink", "可乐", "茶"}}, true},
		{"吃什么.早饭 添加 面包", command{name: cmdAdd, args: []string{"breakfast", "面包"}}, true},
		{"吃什么 零食 添加 薯片", command{name: cmdAdd, args: []string{"snacks", "薯片"}}, true},
		{"吃什么.早饭", command{name: cmdEat, args: []string{"早饭"}}, true},
		{"早饭添加 面包", command{name: cmdAdd, args: []string{"breakfast", "面包"}}, true},
		{"添加早餐 面包", command{name: cmdAdd, args: []string{"breakfast", "面包"}}, true},
		{"添加小吃 薯片", command{name: cmdAdd, args: []string{"snacks", "薯片"}}, true},
		{".添加喝的 可乐", command{name: cmdAdd, args: []string{"drink", "可乐"}}, true},
		{".添加.早饭 面包", command{name: cmdAdd, args: []string{"早饭", "面包"}}, true},
		{"吃什么.添加晚饭 饺子", command{name: cmdAdd, args: []string{"dinner", "饺子"}}, true},
		{"零食复制 饮料", command{name: cmdCopy, args: []string{"snacks", "饮料"}}, true},
		{".复制小吃 饮料", command{name: cmdCopy, args: []string{"snacks", "饮料"}}, true},
		{".复制喝的 零食", command{name: cmdCopy, args: []string{"drink", "零食"}}, true},
		{".早餐", command{name: cmdEat, args: []string{"早餐"}}, true},
		{"添加宵夜 泡面", command{}, false},
		{".", command{}, false},
		{"今天吃什么", command{}, false},
		{"", command{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseCommand(tt.text, "FoodPickerBot")
			if ok != tt.wantOK {
				t.Fatalf("parseCommand(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.name != tt.want.name || len(got.args) != len(tt.want.args) {
				t.Fatalf("parseCommand(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
			if len(got.args) > 0 && !reflect.DeepEqual(got.args, tt.want.args) {
				t.Errorf("parseCommand(%q) args = %q, want %q", tt.text, got.args, tt.want.args)
			}
		})
	}
}

func TestMenuArg(t *testing.T) {
	if mt, ok := menuArg(nil); !ok || mt != nil {
		t.Errorf("menuArg(nil) = %v, %v", mt, ok)
	}
	if mt, ok := menuArg([]string{"零食"}); !ok || *mt != models.MenuSnacks {
		t.Errorf("menuArg(零食) = %v, %v", mt, ok)
	}
	if _, ok := menuArg([]string{"supper"}); ok {
		t.Error("menuArg(supper) should fail")
	}
}

func TestFillTemplate(t *testing.T) {
	tests := []struct {
		tpl, food, want string
	}{
		{"你的早饭就吃[food]吧", "包子", "你的早饭就吃包子吧"},
		{"[food]! [food]!", "tea", "tea! [food]!"},
		{"Dinner:", "pizza", "Dinner: pizza"},
	}
	for _, tt := range tests {
		if got := fillTemplate(tt.tpl, tt.food); got != tt.want {
			t.Errorf("fillTemplate(%q, %q) = %q, want %q", tt.tpl, tt.food, got, tt.want)
		}
	}
}
