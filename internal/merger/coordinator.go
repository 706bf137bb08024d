package merger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"tradesheet/internal/exporter"
	"tradesheet/internal/model"
	"tradesheet/internal/parser"
)

// SheetKind 一类需要跨文件合并的工作表
type SheetKind struct {
	Source string // 源文件中的工作表名
	Target string // 输出工作簿中的工作表名
}

// SheetKinds 三类固定合并的工作表
var SheetKinds = []SheetKind{
	{Source: "1.基础信息", Target: "基础信息"},
	{Source: "1.日前申报-信息", Target: "日前申报信息"},
	{Source: "1.交易量价数据信息", Target: "交易量价数据信息"},
}

// 源文件首行为标签行，第二行才是列名
const headerOffset = 1

// DefaultWorkers 并行读取的默认工作协程数
const DefaultWorkers = 4

// Options 合并选项
type Options struct {
	InputDir   string
	OutputPath string
	Workers    int // 并行读取的工作协程数，<=0 时取 DefaultWorkers
}

// FileResult 单个源文件的处理结果
type FileResult struct {
	Filename string
	Company  string
	Rows     []int // 与 SheetKinds 对齐的行数
	Errors   []string
	Duration time.Duration
}

// Report 一次合并的汇总报告，Files 始终按文件发现顺序排列
type Report struct {
	RunID        string
	OutputPath   string
	Files        []FileResult
	TotalRows    []int // 与 SheetKinds 对齐
	MergedSheets []string
	Duration     time.Duration
}

type fileResult struct {
	index    int
	record   model.WorkbookRecord
	tables   []*model.Table
	errors   []string
	duration time.Duration
}

// Discover 枚举输入目录下的工作簿文件
// 先 .xlsx 后 .xls，各组内按文件名排序；目录不存在或没有文件时报错。
func Discover(dir string) ([]model.WorkbookRecord, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("目录 %s 不存在", dir)
	}
	var records []model.WorkbookRecord
	for _, ext := range []string{".xlsx", ".xls"} {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("枚举目录 %s 失败: %w", dir, err)
		}
		sort.Strings(matches)
		for _, path := range matches {
			name := filepath.Base(path)
			if strings.HasPrefix(name, "~$") {
				// Excel 打开文件时的锁文件
				continue
			}
			records = append(records, model.WorkbookRecord{
				Path:    path,
				Company: parser.CompanyFromFilename(name),
			})
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("目录 %s 中没有找到 Excel 文件", dir)
	}
	return records, nil
}

// Merge 顺序合并：文件按发现顺序依次读取，合并行序即发现顺序
func Merge(opts Options) (*Report, error) {
	start := time.Now()
	records, err := Discover(opts.InputDir)
	if err != nil {
		return nil, err
	}

	merged := newAccumulator()
	results := make([]fileResult, len(records))
	for i, rec := range records {
		res := readFile(i, rec)
		merged.add(res)
		results[i] = res
	}

	return finish(opts, records, results, merged, start)
}

// MergeParallel 并行合并：固定大小协程池，每个任务读取一个文件的全部三张表
//
// 结果按完成顺序汇入合并表，因此并行时不同文件的相对行序不确定；
// 报告中的文件列表仍按发现顺序排列，便于对照。
func MergeParallel(opts Options) (*Report, error) {
	start := time.Now()
	records, err := Discover(opts.InputDir)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(records) {
		workers = len(records)
	}

	jobs := make(chan int)
	out := make(chan fileResult)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out <- readFile(idx, records[idx])
			}
		}()
	}
	go func() {
		for i := range records {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()

	merged := newAccumulator()
	results := make([]fileResult, len(records))
	for res := range out {
		merged.add(res)
		results[res.index] = res
	}

	return finish(opts, records, results, merged, start)
}

// readFile 读取单个文件的三张表；单表失败记录错误并按空表处理
func readFile(index int, rec model.WorkbookRecord) fileResult {
	start := time.Now()
	res := fileResult{
		index:  index,
		record: rec,
		tables: make([]*model.Table, len(SheetKinds)),
	}
	for i, kind := range SheetKinds {
		table, err := parser.ReadSheet(rec.Path, kind.Source, headerOffset)
		if err != nil {
			log.Printf("文件 %s 读取工作表 %q 失败: %v", filepath.Base(rec.Path), kind.Source, err)
			res.errors = append(res.errors, fmt.Sprintf("%s: %v", kind.Source, err))
			res.tables[i] = model.NewTable(nil)
			continue
		}
		parser.TagCompany(table, rec.Company)
		res.tables[i] = table
	}
	res.duration = time.Since(start)
	return res
}

// accumulator 按表类聚合各文件的贡献，行序等于 add 的调用顺序
type accumulator struct {
	tables []*model.Table
}

func newAccumulator() *accumulator {
	return &accumulator{tables: make([]*model.Table, len(SheetKinds))}
}

func (a *accumulator) add(res fileResult) {
	for i, t := range res.tables {
		if t == nil || t.Len() == 0 {
			continue
		}
		if a.tables[i] == nil {
			a.tables[i] = model.NewTable(nil)
		}
		a.tables[i].Append(t)
	}
}

func finish(opts Options, records []model.WorkbookRecord, results []fileResult, merged *accumulator, start time.Time) (*Report, error) {
	failedCombos := 0
	for _, res := range results {
		failedCombos += len(res.errors)
	}
	if failedCombos == len(records)*len(SheetKinds) {
		return nil, fmt.Errorf("全部 %d 个文件读取失败，未生成输出", len(records))
	}

	report := &Report{
		RunID:      uuid.New().String(),
		OutputPath: opts.OutputPath,
		TotalRows:  make([]int, len(SheetKinds)),
	}
	for _, res := range results {
		fr := FileResult{
			Filename: filepath.Base(res.record.Path),
			Company:  res.record.Company,
			Rows:     make([]int, len(SheetKinds)),
			Errors:   res.errors,
			Duration: res.duration,
		}
		for i, t := range res.tables {
			fr.Rows[i] = t.Len()
		}
		report.Files = append(report.Files, fr)
	}

	var out []exporter.NamedTable
	for i, kind := range SheetKinds {
		table := merged.tables[i]
		if table == nil || table.Len() == 0 {
			continue
		}
		parser.CleanTable(table)
		report.TotalRows[i] = table.Len()
		report.MergedSheets = append(report.MergedSheets, kind.Target)
		out = append(out, exporter.NamedTable{Name: kind.Target, Table: table})
	}

	if err := exporter.WriteWorkbook(opts.OutputPath, out); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	return report, nil
}
