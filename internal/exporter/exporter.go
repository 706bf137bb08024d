package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"tradesheet/internal/model"
)

// PlaceholderSheet 没有任何有效数据时写入的占位表名
const PlaceholderSheet = "提示"

// NamedTable 输出工作表
type NamedTable struct {
	Name  string
	Table *model.Table
}

// WriteWorkbook 把若干张表写入一个工作簿
//
// tables 为空时写一张占位表说明未找到有效数据。输出目录不存在时自动创建；
// 已有同名文件会被覆盖。整个工作簿一次性 SaveAs，写失败不会留下半成品。
func WriteWorkbook(path string, tables []NamedTable) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if len(tables) == 0 {
		if err := f.SetSheetName("Sheet1", PlaceholderSheet); err != nil {
			return fmt.Errorf("创建占位表失败: %w", err)
		}
		if err := f.SetCellValue(PlaceholderSheet, "A1", "未找到有效数据"); err != nil {
			return fmt.Errorf("写入占位表失败: %w", err)
		}
	} else {
		for i, nt := range tables {
			if err := writeSheet(f, i, nt); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("保存工作簿失败: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, index int, nt NamedTable) error {
	if index == 0 {
		if err := f.SetSheetName("Sheet1", nt.Name); err != nil {
			return fmt.Errorf("创建工作表 %q 失败: %w", nt.Name, err)
		}
	} else {
		if _, err := f.NewSheet(nt.Name); err != nil {
			return fmt.Errorf("创建工作表 %q 失败: %w", nt.Name, err)
		}
	}

	header := append([]string(nil), nt.Table.Columns...)
	if err := f.SetSheetRow(nt.Name, "A1", &header); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	for r, row := range nt.Table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("定位单元格失败: %w", err)
		}
		values := append([]string(nil), row...)
		if err := f.SetSheetRow(nt.Name, cell, &values); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", r+2, err)
		}
	}
	return nil
}
