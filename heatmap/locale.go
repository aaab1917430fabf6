package heatmap

import (
	"fmt"
	"strings"
	"time"
)

// Formatter resolves display text for one locale. Implementations must be
// safe for reuse across renders; the built-in ones are stateless.
type Formatter interface {
	// MonthLabel returns the display name for a month.
	MonthLabel(m time.Month) string
	// WeekdayLabel returns the display name for a weekday row label.
	WeekdayLabel(d time.Weekday) string
	// YearLegend returns the legend line for the total count of the window.
	YearLegend(total int) string
	// CellTooltip returns the hover text for a single day cell.
	CellTooltip(date time.Time, count int) string
}

// ForLocale returns the built-in formatter for a locale tag. Chinese tags
// ("zh", "zh-CN", ...) select the Chinese formatter; everything else falls
// back to English.
func ForLocale(tag string) Formatter {
	if strings.HasPrefix(strings.ToLower(tag), "zh") {
		return ChineseFormatter{}
	}
	return EnglishFormatter{}
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// EnglishFormatter is the default locale formatter.
type EnglishFormatter struct{}

func (EnglishFormatter) MonthLabel(m time.Month) string {
	return monthNames[m-1]
}

func (EnglishFormatter) WeekdayLabel(d time.Weekday) string {
	return d.String()[:3]
}

func (EnglishFormatter) YearLegend(total int) string {
	return fmt.Sprintf("most-recent-year record: %d notes", total)
}

func (EnglishFormatter) CellTooltip(date time.Time, count int) string {
	return fmt.Sprintf("%s: %d", date.Format("2006-01-02"), count)
}

// chineseMonths maps English month tokens to their Chinese names. A month
// token absent from the table falls back to the token itself.
var chineseMonths = map[string]string{
	"Jan": "一月",
	"Feb": "二月",
	"Mar": "三月",
	"Apr": "四月",
	"May": "五月",
	"Jun": "六月",
	"Jul": "七月",
	"Aug": "八月",
	"Sep": "九月",
	"Oct": "十月",
	"Nov": "十一月",
	"Dec": "十二月",
}

var chineseWeekdays = map[time.Weekday]string{
	time.Monday:    "周一",
	time.Wednesday: "周三",
	time.Friday:    "周五",
	time.Sunday:    "周日",
}

// ChineseFormatter renders labels in Simplified Chinese.
type ChineseFormatter struct{}

func (ChineseFormatter) MonthLabel(m time.Month) string {
	token := monthNames[m-1]
	if name, ok := chineseMonths[token]; ok {
		return name
	}
	// Unmapped tokens render as-is; a missing translation is not fatal.
	return token
}

func (ChineseFormatter) WeekdayLabel(d time.Weekday) string {
	if name, ok := chineseWeekdays[d]; ok {
		return name
	}
	return d.String()[:3]
}

func (ChineseFormatter) YearLegend(total int) string {
	return fmt.Sprintf("最近一年记录 %d 条笔记", total)
}

func (ChineseFormatter) CellTooltip(date time.Time, count int) string {
	return fmt.Sprintf("%s: %d", date.Format("2006年01月02日"), count)
}
