package unit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// 机组编号别名：3号机组按1号机组统计，4号机组按2号机组统计
var numberAliases = map[int]int{
	3: 1,
	4: 2,
}

var (
	strictPattern  = regexp.MustCompile(`(\d+)\s*(?:号)?\s*机组`)
	genericPattern = regexp.MustCompile(`\d+`)
)

// Alias 机组编号归一化
func Alias(number int) int {
	if canonical, ok := numberAliases[number]; ok {
		return canonical
	}
	return number
}

// Key 把机组名称原始文本归一化为筛选键
//
// 优先匹配 "<n>号机组"/"<n>机组"；匹配不到时取文本中最后一段数字
// （历史数据里机组编号常跟在日期之后，所以取最后一段而不是第一段）；
// 完全没有数字时直接用去掉首尾空白的原文作为键。
// 空白输入没有键，返回 ok=false。
func Key(raw string) (key string, ok bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}

	number, found := extractNumber(text)
	if !found {
		return text, true
	}
	return fmt.Sprintf("UNIT-%d", Alias(number)), true
}

func extractNumber(text string) (int, bool) {
	if m := strictPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	runs := genericPattern.FindAllString(text, -1)
	if len(runs) > 0 {
		n, err := strconv.Atoi(runs[len(runs)-1])
		if err == nil {
			return n, true
		}
	}
	return 0, false
}
