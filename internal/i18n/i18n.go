// Package i18n holds the UI string tables. Lookup misses return the key
// unchanged, so an untranslated string renders as itself instead of failing.
package i18n

type Lang string

const (
	LangEN Lang = "en"
	LangZH Lang = "zh"
)

var languages = map[Lang]map[string]string{
	LangEN: {
		"title":            "Simple & Clear To-Do",
		"add_task":         "Add Task",
		"task_desc":        "Task Description",
		"task_placeholder": "What needs to be done?",
		"due_date":         "Due Date",
		"completed":        "Completed",
		"no_tasks":         "All clear! No tasks here.",
		"mark_complete":    "Mark as complete",
		"mark_incomplete":  "Mark as incomplete",
		"delete":           "Delete",
		"history":          "Activity Log",
		"no_history":       "No activity yet",
		"task_type":        "Category",
		"daily":            "General",
		"weekly":           "Weekly",
		"monthly":          "Monthly",
		"color":            "Color",
		"Overdue":          "Overdue",
		"days":             "days",
		"Due today":        "Due today",
		"Due in":           "Due in",
		"Due":              "Due",
		"Completed":        "Completed",
		"Added":            "Added",
		"Deleted":          "Deleted",
		"Uncompleted":      "Uncompleted",
		"Completed_action": "Completed",
	},
	LangZH: {
		"title":            "轻简待办事项",
		"add_task":         "添加任务",
		"task_desc":        "任务描述",
		"task_placeholder": "需要做什么？",
		"due_date":         "截止日期",
		"completed":        "已完成",
		"no_tasks":         "太棒了，当前没有任务！",
		"mark_complete":    "标记完成",
		"mark_incomplete":  "取消完成",
		"delete":           "删除",
		"history":          "操作记录",
		"no_history":       "暂无操作记录",
		"task_type":        "分类",
		"daily":            "日常",
		"weekly":           "每周",
		"monthly":          "每月",
		"color":            "颜色",
		"Overdue":          "已过期",
		"days":             "天",
		"Due today":        "今日截止",
		"Due in":           "还剩",
		"Due":              "截止于",
		"Completed":        "完成于",
		"Added":            "已添加",
		"Deleted":          "已删除",
		"Uncompleted":      "已取消完成",
		"Completed_action": "已完成",
	},
}

// T resolves key for lang. Unknown languages fall back to English; unknown
// keys come back unchanged.
func T(lang Lang, key string) string {
	table, ok := languages[lang]
	if !ok {
		table = languages[LangEN]
	}
	if value, ok := table[key]; ok {
		return value
	}
	return key
}

// Toggle cycles between the supported languages.
func Toggle(lang Lang) Lang {
	if lang == LangEN {
		return LangZH
	}
	return LangEN
}
