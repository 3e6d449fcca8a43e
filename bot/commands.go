package bot

import (
	"strings"

	"food-picker/models"
)

const (
	cmdStart  = "start"
	cmdHelp   = "help"
	cmdEat    = "eat"
	cmdAdd    = "add"
	cmdMenu   = "menu"
	cmdDelete = "delete"
	cmdCopy   = "copy"
	cmdClear  = "clear"
)

type command struct {
	name string
	args []string
}

var slashCommands = map[string]bool{
	cmdStart: true, cmdHelp: true, cmdEat: true, cmdAdd: true,
	cmdMenu: true, cmdDelete: true, cmdCopy: true, cmdClear: true,
}

// shortcut is a plain-text alias that may carry a menu type as its first argument.
type shortcut struct {
	name string
	menu models.MenuType
}

var textShortcuts = map[string]shortcut{
	"吃什么":   {cmdEat, ""},
	"吃啥":    {cmdEat, ""},
	"早饭吃什么": {cmdEat, models.MenuBreakfast},
	"早饭吃啥":  {cmdEat, models.MenuBreakfast},
	"午饭吃什么": {cmdEat, models.MenuLunch},
	"午饭吃啥":  {cmdEat, models.MenuLunch},
	"吃什么午饭": {cmdEat, models.MenuLunch},
	"晚饭吃什么": {cmdEat, models.MenuDinner},
	"晚饭吃啥":  {cmdEat, models.MenuDinner},
	"吃什么晚饭": {cmdEat, models.MenuDinner},
	"吃什么零食": {cmdEat, models.MenuSnacks},
	"喝什么":   {cmdEat, models.MenuDrink},
	"喝什么饮料": {cmdEat, models.MenuDrink},
}

// verbShortcuts join a verb and a meal name in either order: 添加早饭,
// 早饭添加, 复制小吃, 喝的复制.
var verbShortcuts = map[string]string{
	"添加": cmdAdd,
	"复制": cmdCopy,
}

// subcommands follow 吃什么, either after a space or a dot.
var subcommands = map[string]string{
	"添加": cmdAdd,
	"查看": cmdMenu,
	"菜单": cmdMenu,
	"删除": cmdDelete,
	"复制": cmdCopy,
	"拷贝": cmdCopy,
	"清空": cmdClear,
	"帮助": cmdHelp,
}

// parseCommand recognises "/cmd[@bot] args..." and the Chinese text aliases.
// A slash command addressed to another bot is not ours.
func parseCommand(text, botName string) (command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return command{}, false
	}
	head, rest := fields[0], fields[1:]

	if strings.HasPrefix(head, "/") {
		name, target, _ := strings.Cut(head[1:], "@")
		if target != "" && botName != "" && !strings.EqualFold(target, botName) {
			return command{}, false
		}
		name = strings.ToLower(name)
		if !slashCommands[name] {
			return command{}, false
		}
		return command{name: name, args: rest}, true
	}

	// 吃什么.添加 早饭 ... is the same as 吃什么 添加 早饭 ..., and a leading
	// dot stands for 吃什么: .早餐, .添加喝的, .添加.早饭
	if strings.HasPrefix(head, ".") && strings.Trim(head, ".") != "" {
		head = "吃什么" + head
	}
	if strings.Contains(head, ".") {
		var parts []string
		for _, p := range strings.Split(head, ".") {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			return command{}, false
		}
		head, rest = parts[0], append(parts[1:], rest...)
	}
	return resolveAlias(head, rest)
}

func resolveAlias(head string, rest []string) (command, bool) {
	sc, ok := lookupShortcut(head)
	if !ok {
		return command{}, false
	}

	if sc.name == cmdEat && sc.menu == "" && len(rest) > 0 {
		if name, ok := subcommands[rest[0]]; ok {
			return command{name: name, args: rest[1:]}, true
		}
		if _, ok := lookupShortcut(rest[0]); ok {
			return resolveAlias(rest[0], rest[1:])
		}
		// 吃什么.早饭 添加 面包 adds to that meal
		if mt, ok := models.ParseMenuType(rest[0]); ok && len(rest) > 1 && subcommands[rest[1]] == cmdAdd {
			return command{name: cmdAdd, args: append([]string{string(mt)}, rest[2:]...)}, true
		}
	}

	if sc.menu != "" {
		// 早饭吃什么 添加 面包 as well
		if sc.name == cmdEat && len(rest) > 0 && subcommands[rest[0]] == cmdAdd {
			return command{name: cmdAdd, args: append([]string{string(sc.menu)}, rest[1:]...)}, true
		}
		rest = append([]string{string(sc.menu)}, rest...)
	}
	return command{name: sc.name, args: rest}, true
}

func lookupShortcut(head string) (shortcut, bool) {
	if sc, ok := textShortcuts[head]; ok {
		return sc, true
	}
	return verbShortcut(head)
}

// verbShortcut splits a verbShortcuts alias into its command and meal.
func verbShortcut(head string) (shortcut, bool) {
	for verb, name := range verbShortcuts {
		meal, ok := strings.CutPrefix(head, verb)
		if !ok {
			meal, ok = strings.CutSuffix(head, verb)
		}
		if !ok || meal == "" {
			continue
		}
		if mt, ok := models.ParseMenuType(meal); ok {
			return shortcut{name: name, menu: mt}, true
		}
	}
	return shortcut{}, false
}

// menuArg resolves an optional menu-type argument. ok is false when an
// argument is present but names no menu.
func menuArg(args []string) (t *models.MenuType, ok bool) {
	if len(args) == 0 {
		return nil, true
	}
	mt, ok := models.ParseMenuType(args[0])
	if !ok {
		return nil, false
	}
	return &mt, true
}

// fillTemplate substitutes the drawn item for the first "[food]".
func fillTemplate(tpl, food string) string {
	if !strings.Contains(tpl, "[food]") {
		return tpl + " " + food
	}
	return strings.Replace(tpl, "[food]", food, 1)
}
