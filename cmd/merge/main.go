package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"tradesheet/internal/config"
	"tradesheet/internal/merger"
)

var (
	configPath = flag.String("config", "", "配置文件路径 (默认读取 config.toml)")
	sequential = flag.Bool("seq", false, "顺序读取，不使用并行协程池")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  tradesheet - 电力交易数据合并工具")
	fmt.Println("==========================================")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	opts := merger.Options{
		InputDir:   cfg.Data.InputDir,
		OutputPath: cfg.Data.OutputPath,
		Workers:    cfg.Merge.Workers,
	}

	fmt.Printf("输入目录: %s\n", opts.InputDir)

	var report *merger.Report
	if *sequential {
		report, err = merger.Merge(opts)
	} else {
		report, err = merger.MergeParallel(opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误：%v\n", err)
		os.Exit(1)
	}

	report.Print(os.Stdout)
}
