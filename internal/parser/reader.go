package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
	"tradesheet/internal/model"
)

// CompanyColumn 合并数据中的公司名称列
const CompanyColumn = "公司名称"

// 部分上游工具导出的文件带有自动生成的占位列名
var unnamedPattern = regexp.MustCompile(`^Unnamed: \d+$`)

// ReadSheet 读取单个工作表为 Table
//
// headerOffset 为表头所在行的下标（0 起）：headerOffset=1 表示跳过首行
// 标签行，第二行为列名，数据从第三行开始。sheet 为空时读第一个工作表。
// 读出后即执行清洗：去掉占位列、全空列与全空行。
func ReadSheet(path, sheet string, headerOffset int) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("打开文件失败: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %q 失败: %w", sheet, err)
	}
	if len(rows) <= headerOffset {
		return model.NewTable(nil), nil
	}

	headers := make([]string, len(rows[headerOffset]))
	for i, h := range rows[headerOffset] {
		headers[i] = strings.TrimSpace(h)
	}

	table := model.NewTable(headers)
	for _, row := range rows[headerOffset+1:] {
		table.AppendRow(row)
	}

	table.DropColumns(func(name string) bool {
		return name == "" || unnamedPattern.MatchString(name)
	})
	CleanTable(table)
	return table, nil
}

// CleanTable 去掉全空列与全空行；合并拼接后需要再跑一遍
func CleanTable(t *model.Table) {
	if t == nil {
		return
	}
	t.DropEmptyColumns()
	t.DropEmptyRows()
}

// TagCompany 写入公司名称列，已有值会被覆盖；列不存在时插入为第一列
func TagCompany(t *model.Table, company string) {
	if t == nil || t.Len() == 0 {
		return
	}
	t.SetColumnValue(CompanyColumn, company)
}
