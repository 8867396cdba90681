// Package artifact 实现交付物生成与持久化
package artifact

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxArtifactBytes 单个交付物的体积上限
const maxArtifactBytes = 200 * 1024

// asciiReplacements 去重音后仍非 ASCII 的常见标点映射
var asciiReplacements = map[rune]string{
	'¿': "",
	'¡': "",
	'«': `"`,
	'»': `"`,
	'“': `"`,
	'”': `"`,
	'‘': "'",
	'’': "'",
	'–': "-",
	'—': "-",
	'…': "...",
	'°': "",
	'€': "EUR",
}

// StripDiacritics 去除重音符号并保证输出为纯 ASCII
// NFD 分解后丢弃组合记号（ñ→n 亦由此覆盖），残余非 ASCII 字符
// 按映射表替换，无映射则丢弃
func StripDiacritics(s string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	decomposed, _, err := transform.String(stripper, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 128 {
			b.WriteRune(r)
			continue
		}
		if rep, ok := asciiReplacements[r]; ok {
			b.WriteString(rep)
		}
	}
	return b.String()
}

// sanitizeCSVField 清理 CSV 字段
// 逗号与换行直接剔除，因此输出永远无需引号转义
func sanitizeCSVField(s string) string {
	s = strings.NewReplacer(",", " ", "\n", " ", "\r", " ", `"`, "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// capBytes 按上限截断，ASCII 内容无需考虑多字节边界
func capBytes(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	return data[:limit]
}

// containsFold 大小写不敏感的子串判断
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
