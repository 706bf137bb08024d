package filter

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"tradesheet/internal/exporter"
	"tradesheet/internal/model"
	"tradesheet/internal/parser"
	"tradesheet/internal/unit"
)

// ResultSheet 筛选结果的输出工作表名
const ResultSheet = "筛选结果"

// TimeColumn 排序用的次级时间列，存在时参与排序
const TimeColumn = "时间"

// 列名默认值
const (
	DefaultDateColumn   = "日期"
	DefaultUnitColumn   = "机组名称"
	DefaultStatusColumn = "机组状态"
)

// DefaultStatus 默认只保留运行中的机组
const DefaultStatus = "运行"

// Options 筛选参数
type Options struct {
	InputPath  string
	OutputPath string

	StartDate time.Time
	EndDate   time.Time

	Units  []string // 显式传入的机组编号/名称
	S1, S2 string   // Excel 宏传入的机组编号，并入 Units

	Status string // 期望的机组状态，空串表示不过滤状态

	DateColumn   string
	UnitColumn   string
	StatusColumn string
}

// Summary 一次筛选的结果汇总
type Summary struct {
	InputPath  string
	OutputPath string
	StartDate  time.Time
	EndDate    time.Time
	UnitIDs    []string // 去重后的原始机组标识，保持首次出现顺序
	Status     string
	TotalRows  int
	ResultRows int
	Preview    *model.Table // 前 10 行
}

// Run 执行筛选：加载工作簿、构造谓词、排序并写出结果
//
// 结果为空也会写出文件，方便下游流程。
func Run(opts Options) (*Summary, error) {
	opts.StartDate = dateOnly(opts.StartDate)
	opts.EndDate = dateOnly(opts.EndDate)
	if opts.StartDate.After(opts.EndDate) {
		return nil, fmt.Errorf("开始日期不能晚于结束日期")
	}

	unitIDs, unitKeys, err := collectUnitIDs(opts)
	if err != nil {
		return nil, err
	}

	if opts.DateColumn == "" {
		opts.DateColumn = DefaultDateColumn
	}
	if opts.UnitColumn == "" {
		opts.UnitColumn = DefaultUnitColumn
	}
	if opts.StatusColumn == "" {
		opts.StatusColumn = DefaultStatusColumn
	}

	if _, err := os.Stat(opts.InputPath); err != nil {
		return nil, fmt.Errorf("找不到输入文件: %s", opts.InputPath)
	}
	table, err := parser.ReadSheet(opts.InputPath, "", 0)
	if err != nil {
		return nil, fmt.Errorf("读取输入文件失败: %w", err)
	}

	if !table.HasColumn(opts.DateColumn) {
		return nil, fmt.Errorf("输入文件缺少日期列: %s", opts.DateColumn)
	}
	var missing []string
	for _, col := range []string{opts.UnitColumn, opts.StatusColumn} {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("输入文件缺少以下列: %s", strings.Join(missing, ", "))
	}

	dates, parsedAny := parseDateColumn(table.Column(opts.DateColumn))
	if !parsedAny && table.Len() > 0 {
		return nil, fmt.Errorf("日期列解析失败，请检查列名或日期格式")
	}

	units := table.Column(opts.UnitColumn)
	statuses := table.Column(opts.StatusColumn)
	status := strings.TrimSpace(opts.Status)

	var kept []int
	for i := 0; i < table.Len(); i++ {
		if dates[i] == nil {
			continue
		}
		if dates[i].Before(opts.StartDate) || dates[i].After(opts.EndDate) {
			continue
		}
		key, ok := unit.Key(units[i])
		if !ok || !unitKeys[key] {
			continue
		}
		if status != "" && strings.TrimSpace(statuses[i]) != status {
			continue
		}
		kept = append(kept, i)
	}

	timeIdx := table.ColumnIndex(TimeColumn)
	sort.SliceStable(kept, func(a, b int) bool {
		da, db := dates[kept[a]], dates[kept[b]]
		if !da.Equal(*db) {
			return da.Before(*db)
		}
		if timeIdx < 0 {
			return false
		}
		return table.Rows[kept[a]][timeIdx] < table.Rows[kept[b]][timeIdx]
	})

	result := model.NewTable(table.Columns)
	for _, idx := range kept {
		result.AppendRow(table.Rows[idx])
	}

	if err := exporter.WriteWorkbook(opts.OutputPath, []exporter.NamedTable{
		{Name: ResultSheet, Table: result},
	}); err != nil {
		return nil, err
	}

	preview := model.NewTable(result.Columns)
	for i := 0; i < result.Len() && i < 10; i++ {
		preview.AppendRow(result.Rows[i])
	}

	return &Summary{
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		StartDate:  opts.StartDate,
		EndDate:    opts.EndDate,
		UnitIDs:    unitIDs,
		Status:     status,
		TotalRows:  table.Len(),
		ResultRows: result.Len(),
		Preview:    preview,
	}, nil
}

// collectUnitIDs 合并显式列表与宏参数，去重并保持首次出现顺序
func collectUnitIDs(opts Options) ([]string, map[string]bool, error) {
	raw := append([]string(nil), opts.Units...)
	raw = append(raw, opts.S1, opts.S2)

	var ordered []string
	seen := make(map[string]bool)
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		ordered = append(ordered, v)
		seen[v] = true
	}
	if len(ordered) == 0 {
		return nil, nil, fmt.Errorf("必须至少提供一个机组编号")
	}

	keys := make(map[string]bool, len(ordered))
	for _, v := range ordered {
		if key, ok := unit.Key(v); ok {
			keys[key] = true
		}
	}
	return ordered, keys, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDateColumn 逐行解析日期，解析失败的行为 nil；
// 只要有一行解析成功就认为列格式正确
func parseDateColumn(values []string) ([]*time.Time, bool) {
	dates := make([]*time.Time, len(values))
	parsedAny := false
	for i, v := range values {
		if d, ok := parseDate(v); ok {
			day := dateOnly(d)
			dates[i] = &day
			parsedAny = true
		}
	}
	return dates, parsedAny
}

var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006年1月2日",
	"2006-1-2 15:04:05",
	"2006/1/2 15:04:05",
	"01-02-06",
}

func parseDate(value string) (time.Time, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, text); err == nil {
			return d, true
		}
	}
	// Excel 日期序列号
	if serial, err := strconv.ParseFloat(text, 64); err == nil && serial > 0 {
		if d, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
