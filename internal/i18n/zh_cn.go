package i18n

// ZhCNMessages 简体中文文案
// ZhCNMessages Simplified Chinese message catalog
var ZhCNMessages = map[string]string{
	"app.welcome":    "🚀 欢迎使用 Scratchpad！输入 'exit' 退出。",
	"app.goodbye":    "👋 再见！",
	"app.unexpected": "意外错误：%v",

	"warn.history_init": "历史文件不可用：%v",
	"warn.line_editor":  "行编辑器不可用，回退到基础输入：%v",

	"screen.title":         "📝 便笺",
	"screen.empty":         "📭 还没有便笺。输入 'add <文本>' 开始！",
	"screen.status":        "📊 便笺 (%d/%d) | %s",
	"screen.clipboard_on":  "📋 剪贴板：开",
	"screen.clipboard_off": "📋 剪贴板：关",
	"screen.commands":      "💡 命令：",

	"add.done":    "已添加第 %d 条",
	"add.evicted": "已移除最早的便笺（上限：%d）",
	"add.empty":   "不能添加空文本",

	"copy.done":     "已复制第 %d 条",
	"copy.all_done": "已复制全部 %d 条",
	"copy.empty":    "没有可复制的内容",

	"delete.done":     "已删除：'%s'",
	"delete.all_done": "已删除全部 %d 条",
	"delete.empty":    "没有可删除的内容",

	"search.empty_query": "请提供搜索词",
	"search.none":        "没有包含 '%s' 的便笺",
	"search.title":       "🔍 '%s' 的搜索结果：",
	"search.found":       "找到 %d 条。按回车继续...",

	"error.index":   "无效的编号",
	"error.usage":   "用法：%s",
	"error.unknown": "未知命令。输入 'help' 查看可用命令",

	"history.failed":        "写入历史失败：%v",
	"clipboard.unavailable": "剪贴板不可用",
	"clipboard.failed":      "复制失败：%v",
	"clipboard.fallback":    "📋 文本内容：%s",

	"help.title":        "📚 便笺帮助",
	"help.commands":     "命令",
	"help.add":          "添加一条便笺",
	"help.copy":         "复制第 N 条到剪贴板",
	"help.copy_all":     "复制全部便笺到剪贴板",
	"help.delete":       "删除第 N 条",
	"help.delete_all":   "删除全部便笺",
	"help.search":       "搜索包含关键字的便笺",
	"help.help":         "显示帮助",
	"help.exit":         "退出程序",
	"help.tips":         "💡 提示",
	"help.tip_history":  "便笺会自动保存到 %s",
	"help.tip_truncate": "长便笺在列表中截断显示，但复制完整内容",
	"help.tip_max":      "内存中最多保留 %d 条",
	"help.continue":     "按回车继续...",
}
