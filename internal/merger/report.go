package merger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Print 输出合并汇总，文件按发现顺序列出
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "合并完成 (run %s)\n", r.RunID)
	fmt.Fprintf(w, "处理文件数: %d\n", len(r.Files))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	var total time.Duration
	for _, f := range r.Files {
		fmt.Fprintf(w, "%s -> 公司: %s (%v)\n", f.Filename, f.Company, f.Duration.Round(time.Millisecond))
		for i, kind := range SheetKinds {
			fmt.Fprintf(w, "  %s: %d 行\n", kind.Source, f.Rows[i])
		}
		for _, e := range f.Errors {
			fmt.Fprintf(w, "  错误: %s\n", e)
		}
		total += f.Duration
	}
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i, kind := range SheetKinds {
		if r.TotalRows[i] > 0 {
			fmt.Fprintf(w, "%s 总行数: %d\n", kind.Target, r.TotalRows[i])
		}
	}
	if len(r.MergedSheets) == 0 {
		fmt.Fprintln(w, "未找到有效数据，已写入占位表")
	}
	if n := len(r.Files); n > 0 {
		fmt.Fprintf(w, "单文件平均耗时: %v\n", (total / time.Duration(n)).Round(time.Millisecond))
	}
	fmt.Fprintf(w, "总耗时: %v\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "输出文件: %s\n", r.OutputPath)
	fmt.Fprintln(w, strings.Repeat("=", 80))
}
