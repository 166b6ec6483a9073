package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Slugify 从标题派生 URL 安全的 slug（纯函数）
//
// 规则：全部转小写；去掉字母、数字、空白、连字符以外的字符；
// 连续空白折叠为一个连字符；连续连字符折叠为一个；去掉首尾连字符。
// 派生本身不保证唯一，唯一性由 resolveCreateSlug / resolveEditSlug 处理。
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// slugOrFallback 派生 slug，派生结果为空（纯符号标题）时退回生成的 UUID，
// 保证永远不会产出空的路由段。
func slugOrFallback(title string) string {
	if slug := Slugify(title); slug != "" {
		return slug
	}
	return uuid.NewString()
}

// resolveCreateSlug 创建时的唯一性处理：从 base 开始逐个探测
// base、base-1、base-2…，每次探测一次存储，直到找到空闲 slug。
//
// 探测与插入之间存在竞态：同标题并发创建可能探测到同一个空闲 slug，
// 此时 posts.slug 的唯一索引让后写入方失败，按通用写失败处理。
func (s *PostService) resolveCreateSlug(title string) (string, error) {
	base := slugOrFallback(title)
	candidate := base
	for i := 1; ; i++ {
		taken, err := s.repo.ExistsBySlug(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// resolveEditSlug 编辑时的唯一性处理：重新派生 base，若被其他文章
// 占用则追加高精度时间戳，不做计数器探测。标题没有实质变化时
// base 即当前 slug，排除自身后无冲突，slug 保持不变。
func (s *PostService) resolveEditSlug(title string, excludeID uint) (string, error) {
	base := slugOrFallback(title)
	count, err := s.repo.CountBySlug(base, &excludeID)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	return fmt.Sprintf("%s-%d", base, time.Now().UnixNano()), nil
}
