package parser

import "strings"

// CompanyFromFilename 从文件名中提取公司名称
// 如 "同承-电力营销信息统计1.10-202601.12(1).xlsx" -> "同承"
// 文件名中没有分隔符时返回整个文件名。
func CompanyFromFilename(filename string) string {
	if idx := strings.Index(filename, "-"); idx >= 0 {
		return filename[:idx]
	}
	return filename
}
