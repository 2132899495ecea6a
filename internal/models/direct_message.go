package models

import (
	"gorm.io/gorm"
)

// DeletedMessageContent 是訊息被刪除後固定顯示的內容
const DeletedMessageContent = "This message has been deleted."

// DirectMessage 表示對話中的一則私人訊息
// 刪除採用軟刪除：Deleted 設為 true 後內容被清空，資料列仍然保留
type DirectMessage struct {
	gorm.Model
	ConversationID uint    `gorm:"index" json:"conversation_id"`
	MemberID       uint    `gorm:"index" json:"member_id"`
	Content        string  `gorm:"type:text" json:"content"`
	FileURL        *string `json:"fileUrl"` // 附件網址，可為空
	Deleted        bool    `gorm:"default:false" json:"deleted"`
	Member         Member  `json:"member"`
}

// MarkDeleted 將訊息轉為已刪除狀態
// 此轉換是單向的：內容與附件被清除，之後不允許任何修改
func (m *DirectMessage) MarkDeleted() {
	m.Deleted = true
	m.Content = DeletedMessageContent
	m.FileURL = nil
}
