package model

import "strings"

// Table 无固定 schema 的表格数据
//
// 列名有序，行与列名一一对齐；单元格值保留 Excel 读出的字符串形式，
// 空单元格为空字符串。
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable 创建空表
func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len 数据行数
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex 查找列位置，不存在返回 -1
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// HasColumn 列是否存在
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// AppendRow 追加数据行，长度不足时补空格，超长时截断
func (t *Table) AppendRow(row []string) {
	aligned := make([]string, len(t.Columns))
	copy(aligned, row)
	t.Rows = append(t.Rows, aligned)
}

// Column 取整列值，列不存在时返回 nil
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// SetColumnValue 将整列写为同一个值；列不存在时插入为第一列
func (t *Table) SetColumnValue(name, value string) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		t.Columns = append([]string{name}, t.Columns...)
		for i, row := range t.Rows {
			t.Rows[i] = append([]string{value}, row...)
		}
		return
	}
	for _, row := range t.Rows {
		row[idx] = value
	}
}

// DropColumns 删除名称满足条件的列
func (t *Table) DropColumns(drop func(name string) bool) {
	keep := make([]int, 0, len(t.Columns))
	for i, col := range t.Columns {
		if !drop(col) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.Columns) {
		return
	}
	columns := make([]string, len(keep))
	for i, idx := range keep {
		columns[i] = t.Columns[idx]
	}
	for r, row := range t.Rows {
		next := make([]string, len(keep))
		for i, idx := range keep {
			next[i] = row[idx]
		}
		t.Rows[r] = next
	}
	t.Columns = columns
}

// DropEmptyColumns 删除所有行均为空白的列
func (t *Table) DropEmptyColumns() {
	empty := make(map[string]bool, len(t.Columns))
	for i, col := range t.Columns {
		allEmpty := true
		for _, row := range t.Rows {
			if strings.TrimSpace(row[i]) != "" {
				allEmpty = false
				break
			}
		}
		if allEmpty {
			empty[col] = true
		}
	}
	if len(empty) == 0 {
		return
	}
	t.DropColumns(func(name string) bool { return empty[name] })
}

// DropEmptyRows 删除所有列均为空白的行
func (t *Table) DropEmptyRows() {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if !blank {
			kept = append(kept, row)
		}
	}
	t.Rows = kept
}

// Append 纵向拼接另一张表，列取并集，缺失列补空值
func (t *Table) Append(other *Table) {
	if other == nil || other.Len() == 0 {
		// 空表也参与列并集
		t.mergeColumns(other)
		return
	}
	t.mergeColumns(other)
	srcIdx := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		srcIdx[i] = other.ColumnIndex(col)
	}
	for _, row := range other.Rows {
		next := make([]string, len(t.Columns))
		for i, idx := range srcIdx {
			if idx >= 0 {
				next[i] = row[idx]
			}
		}
		t.Rows = append(t.Rows, next)
	}
}

func (t *Table) mergeColumns(other *Table) {
	if other == nil {
		return
	}
	for _, col := range other.Columns {
		if !t.HasColumn(col) {
			t.Columns = append(t.Columns, col)
			for i, row := range t.Rows {
				t.Rows[i] = append(row, "")
			}
		}
	}
}
