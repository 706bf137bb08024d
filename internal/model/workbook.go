package model

// WorkbookRecord 待合并的源文件
type WorkbookRecord struct {
	Path    string // 文件完整路径
	Company string // 从文件名提取的公司名称
}
