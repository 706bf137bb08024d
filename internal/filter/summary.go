package filter

import (
	"fmt"
	"io"
	"strings"
)

// Print 输出筛选汇总，格式对齐合并工具的控制台报告
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "数据筛选完成")
	fmt.Fprintf(w, "输入文件: %s\n", s.InputPath)
	fmt.Fprintf(w, "总行数: %d\n", s.TotalRows)

	status := s.Status
	if status == "" {
		status = "全部"
	}
	fmt.Fprintf(w, "筛选条件: 日期 %s 至 %s; 机组 %s; 状态 %s\n",
		s.StartDate.Format("2006-01-02"), s.EndDate.Format("2006-01-02"),
		strings.Join(s.UnitIDs, ", "), status)

	fmt.Fprintf(w, "结果行数: %d\n", s.ResultRows)
	fmt.Fprintf(w, "输出文件: %s\n", s.OutputPath)

	if s.ResultRows == 0 {
		fmt.Fprintln(w, "未找到符合条件的数据，已输出空文件方便后续流程。")
	} else {
		fmt.Fprintln(w, "示例数据(前10行):")
		fmt.Fprintf(w, "  %s\n", strings.Join(s.Preview.Columns, "\t"))
		for _, row := range s.Preview.Rows {
			fmt.Fprintf(w, "  %s\n", strings.Join(row, "\t"))
		}
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
}
