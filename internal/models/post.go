package models

import (
	"time"
)

// Post 文章表
//
// 文章为硬删除：slug 上有唯一索引，软删除的行会一直占用 slug，
// 删除后的 slug 需要可以被新文章复用。
type Post struct {
	ID          uint      `gorm:"primarykey" json:"id"`             // 主键
	Title       string    `gorm:"not null" json:"title"`            // 标题
	Description string    `json:"description"`                      // 正文（原样渲染的 HTML）
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"` // 唯一标识
	FileURL     string    `json:"file_url"`                         // 附件公开地址（可为空）
	FileObject  string    `json:"-"`                                // 附件在桶内的对象名（可为空）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`          // 创建时间（列表排序键）
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// HasFile 是否携带附件
func (p *Post) HasFile() bool {
	return p != nil && p.FileObject != ""
}
