package exporter

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"tradesheet/internal/model"
)

func TestWriteWorkbook_Roundtrip(t *testing.T) {
	t.Parallel()

	basic := model.NewTable([]string{"公司名称", "日期"})
	basic.AppendRow([]string{"同承", "2026-01-10"})
	trade := model.NewTable([]string{"公司名称", "电量"})
	trade.AppendRow([]string{"同承", "100"})

	path := filepath.Join(t.TempDir(), "输出", "合并.xlsx")
	err := WriteWorkbook(path, []NamedTable{
		{Name: "基础信息", Table: basic},
		{Name: "交易量价数据信息", Table: trade},
	})
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("打开输出: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "基础信息" || sheets[1] != "交易量价数据信息" {
		t.Fatalf("sheets=%v", sheets)
	}
	rows, err := f.GetRows("基础信息")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 || rows[0][0] != "公司名称" || rows[1][0] != "同承" {
		t.Fatalf("rows=%v", rows)
	}
}

func TestWriteWorkbook_Placeholder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "空.xlsx")
	if err := WriteWorkbook(path, nil); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("打开输出: %v", err)
	}
	defer f.Close()

	value, err := f.GetCellValue(PlaceholderSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if value != "未找到有效数据" {
		t.Fatalf("A1=%q", value)
	}
}

func TestWriteWorkbook_HeaderOnlyTable(t *testing.T) {
	t.Parallel()

	empty := model.NewTable([]string{"日期", "电量"})
	path := filepath.Join(t.TempDir(), "表头.xlsx")
	if err := WriteWorkbook(path, []NamedTable{{Name: "筛选结果", Table: empty}}); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("打开输出: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("筛选结果")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 || len(rows[0]) != 2 {
		t.Fatalf("rows=%v", rows)
	}
}
