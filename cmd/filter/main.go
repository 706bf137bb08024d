package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tradesheet/internal/filter"
)

const dateFormat = "2006-01-02"

// unitList 可重复的 -unit 参数，也接受逗号分隔的多个值
type unitList []string

func (u *unitList) String() string { return strings.Join(*u, ",") }

func (u *unitList) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*u = append(*u, v)
		}
	}
	return nil
}

var (
	inputPath  = flag.String("input", filepath.Join("output", "合并交易量价数据.xlsx"), "需要处理的 Excel 文件路径")
	outputPath = flag.String("output", filepath.Join("output", "筛选交易量价数据.xlsx"), "筛选后的结果文件")
	startDate  = flag.String("start", "", "筛选区间起始日期，格式 YYYY-MM-DD (示例: 2026-01-10)")
	endDate    = flag.String("end", "", "筛选区间结束日期，格式 YYYY-MM-DD")
	s1         = flag.String("s1", "", "Excel 宏中的 s1 机组编号，将自动加入筛选列表")
	s2         = flag.String("s2", "", "Excel 宏中的 s2 机组编号，将自动加入筛选列表")
	status     = flag.String("status", filter.DefaultStatus, "期望的机组状态，空串表示保留全部状态")
	dateCol    = flag.String("date-column", filter.DefaultDateColumn, "日期列列名")
	unitCol    = flag.String("unit-column", filter.DefaultUnitColumn, "机组编号/名称所在列")
	statusCol  = flag.String("status-column", filter.DefaultStatusColumn, "状态列列名")
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "错误："+format+"\n", args...)
	os.Exit(1)
}

func mustDate(name, value string) time.Time {
	if value == "" {
		fail("必须提供 -%s 参数", name)
	}
	d, err := time.Parse(dateFormat, value)
	if err != nil {
		fail("日期 %q 不符合 %s 格式", value, "YYYY-MM-DD")
	}
	return d
}

func main() {
	var units unitList
	flag.Var(&units, "unit", "需要保留的机组编号或名称，可重复传入 (示例: -unit 3号机组 -unit 4号机组)")
	flag.Parse()

	start := mustDate("start", *startDate)
	end := mustDate("end", *endDate)
	if start.After(end) {
		fail("开始日期不能晚于结束日期")
	}
	if len(units) == 0 && *s1 == "" && *s2 == "" {
		fail("必须至少提供一个机组编号，可使用 -unit 或 -s1/-s2")
	}

	summary, err := filter.Run(filter.Options{
		InputPath:    *inputPath,
		OutputPath:   *outputPath,
		StartDate:    start,
		EndDate:      end,
		Units:        units,
		S1:           *s1,
		S2:           *s2,
		Status:       *status,
		DateColumn:   *dateCol,
		UnitColumn:   *unitCol,
		StatusColumn: *statusCol,
	})
	if err != nil {
		fail("%v", err)
	}

	summary.Print(os.Stdout)
}
