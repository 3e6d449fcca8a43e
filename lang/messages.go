package lang

var messages = map[string]map[string]string{
	Zh: {
		"menu_breakfast": "早饭",
		"menu_lunch":     "午饭",
		"menu_dinner":    "晚饭",
		"menu_snacks":    "零食",
		"menu_drink":     "饮料",

		"help": "吃什么？\n" +
			"/eat [早饭/午饭/晚饭/零食/饮料] 抽一个吃的\n" +
			"/add 早饭 面包(2) 鸡蛋 添加菜单，括号里是权重\n" +
			"/menu [菜单名] 查看菜单\n" +
			"/delete 食物名1 食物名2 删除\n" +
			"/copy 午饭 晚饭 复制晚饭菜单到午饭；回复别人的消息 /copy [菜单名] 复制别人的菜单\n" +
			"/clear [菜单名] 清空菜单",

		"eat_usage":       "指令格式：\n/eat [早饭/午饭/晚饭/零食/饮料]",
		"draw_empty":      "你的%[1]s菜单是空的...用指令\n/add %[1]s 食物名1 食物名2 ...\n来添加菜单",
		"draw_empty_copy": "你的%[1]s菜单是空的...但是你有%[2]s菜单，用指令\n/copy %[1]s %[2]s\n来复制%[2]s菜单到%[1]s菜单",
		"draw_failed":     "抽取菜单失败！",

		"add_usage":    "指令格式：\n/add 早饭/午饭/晚饭/零食/饮料 食物名1 食物名2 ...\n可以在食物名后面加上(数字)表示权重如\n/add 早饭 面包(2) 鸡蛋(1)",
		"added":        "已添加%s菜单",
		"increments":   "以下食物权重增加：\n%s",
		"format_error": "参数格式错误！应为 食物名1(权重) 食物名2(权重) ...\n权重需要放在括号内，可以不写但不能小于0",
		"weight_error": "权重不能小于0...",
		"weight_limit": "权重不能超过%s...",

		"menu_line":       "当前%s菜单： %s",
		"view_all":        "你的菜单如下：",
		"view_one":        "菜单如下：",
		"view_empty_all":  "你的菜单是空的，用指令\n/add 早饭/午饭/晚饭/零食/饮料 食物名1 食物名2 ...\n来添加菜单",
		"view_empty_one":  "你的%[1]s菜单是空的，用指令\n/add %[1]s 食物名1 食物名2 ...\n来添加菜单",
		"view_usage":      "指令格式：\n/menu 早饭/午饭/晚饭/零食/饮料",
		"delete_usage":    "指令格式：\n/delete 食物名1 食物名2 ...",
		"delete_ok":       "删除%s成功！",
		"delete_missing":  "你的菜单中没有%s，删除失败！",
		"copy_usage":      "指令格式：\n回复别人的消息 /copy\n或\n回复别人的消息 /copy 早饭/午饭/晚饭/零食/饮料\n或\n/copy 早饭/午饭/晚饭/零食/饮料 菜单名",
		"copy_menu":       "从%s复制到%s菜单成功！",
		"copy_from_user":  "从 %s 复制%s菜单成功！",
		"copy_all":        "从 %s 复制菜单成功！",
		"clear_usage":     "指令格式：\n/clear [早饭/午饭/晚饭/零食/饮料]",
		"clear_confirm":   "不输入菜单名会视为清空全部菜单，你确定要清空所有菜单吗？如果确认要这么做，请在%d秒内输入“确认”",
		"clear_all_ok":    "清空所有菜单成功！",
		"clear_cancelled": "没有输入确认，已取消清空",
		"clear_ok":        "清空%s菜单成功！",
		"error":           "出错了，请稍后再试",

		"remind_breakfast": "早上好！该吃早饭啦！",
		"remind_lunch":     "中午好！该吃午饭啦！",
		"remind_dinner":    "晚上好！该吃晚饭啦！",

		"cmd_eat":    "这顿该吃啥？",
		"cmd_add":    "添加菜单",
		"cmd_menu":   "查看菜单",
		"cmd_delete": "删除食物",
		"cmd_copy":   "复制菜单",
		"cmd_clear":  "清空菜单",
		"cmd_help":   "帮助",
	},
	En: {
		"menu_breakfast": "breakfast",
		"menu_lunch":     "lunch",
		"menu_dinner":    "dinner",
		"menu_snacks":    "snacks",
		"menu_drink":     "drink",

		"help": "What should I eat?\n" +
			"/eat [breakfast/lunch/dinner/snacks/drink] draw something\n" +
			"/add breakfast bread(2) egg add items, weight in brackets\n" +
			"/menu [menu] show menus\n" +
			"/delete item1 item2 remove items\n" +
			"/copy lunch dinner copy dinner into lunch; reply to someone with /copy [menu] to copy theirs\n" +
			"/clear [menu] clear menus",

		"eat_usage":       "Usage:\n/eat [breakfast/lunch/dinner/snacks/drink]",
		"draw_empty":      "Your %[1]s menu is empty... use\n/add %[1]s item1 item2 ...\nto add some",
		"draw_empty_copy": "Your %[1]s menu is empty... but you have a %[2]s menu, use\n/copy %[1]s %[2]s\nto copy it",
		"draw_failed":     "Could not draw from the menu!",

		"add_usage":    "Usage:\n/add breakfast/lunch/dinner/snacks/drink item1 item2 ...\nAppend (number) to set a weight, e.g.\n/add breakfast bread(2) egg(1)",
		"added":        "Updated your %s menu",
		"increments":   "These items gained weight:\n%s",
		"format_error": "Bad format! Use item1(weight) item2(weight) ...\nThe weight goes in brackets; it may be omitted but must not be negative",
		"weight_error": "Weight must not be negative...",
		"weight_limit": "Weight must not exceed %s...",

		"menu_line":       "Current %s menu: %s",
		"view_all":        "Your menus:",
		"view_one":        "Menu:",
		"view_empty_all":  "Your menus are empty, use\n/add breakfast/lunch/dinner/snacks/drink item1 item2 ...\nto add some",
		"view_empty_one":  "Your %[1]s menu is empty, use\n/add %[1]s item1 item2 ...\nto add some",
		"view_usage":      "Usage:\n/menu breakfast/lunch/dinner/snacks/drink",
		"delete_usage":    "Usage:\n/delete item1 item2 ...",
		"delete_ok":       "Removed %s!",
		"delete_missing":  "%s is not on your menus!",
		"copy_usage":      "Usage:\nreply to someone with /copy\nor\nreply to someone with /copy breakfast/lunch/dinner/snacks/drink\nor\n/copy <target menu> <source menu>",
		"copy_menu":       "Copied %s into your %s menu!",
		"copy_from_user":  "Copied the %[2]s menu of %[1]s!",
		"copy_all":        "Copied all menus of %s!",
		"clear_usage":     "Usage:\n/clear [breakfast/lunch/dinner/snacks/drink]",
		"clear_confirm":   "No menu named, so this clears ALL your menus. Reply \"confirm\" within %d seconds to go ahead",
		"clear_all_ok":    "All menus cleared!",
		"clear_cancelled": "Not confirmed, nothing was cleared",
		"clear_ok":        "Cleared your %s menu!",
		"error":           "Something went wrong, try again later",

		"remind_breakfast": "Good morning! Time for breakfast!",
		"remind_lunch":     "Good afternoon! Time for lunch!",
		"remind_dinner":    "Good evening! Time for dinner!",

		"cmd_eat":    "What should I eat?",
		"cmd_add":    "Add menu items",
		"cmd_menu":   "Show menus",
		"cmd_delete": "Remove items",
		"cmd_copy":   "Copy a menu",
		"cmd_clear":  "Clear menus",
		"cmd_help":   "Help",
	},
}
