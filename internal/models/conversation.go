package models

import (
	"gorm.io/gorm"
)

// Conversation 表示兩個成員之間的私人對話
// MemberOne 和 MemberTwo 永遠是兩個不同的成員
type Conversation struct {
	gorm.Model
	MemberOneID uint   `gorm:"index;uniqueIndex:idx_conversation_pair" json:"member_one_id"`
	MemberTwoID uint   `gorm:"index;uniqueIndex:idx_conversation_pair" json:"member_two_id"`
	MemberOne   Member `gorm:"foreignKey:MemberOneID" json:"member_one"`
	MemberTwo   Member `gorm:"foreignKey:MemberTwoID" json:"member_two"`
}

// MemberFor 根據用戶身份找出對話中屬於該用戶的成員
// 找不到時回傳 nil
func (c *Conversation) MemberFor(profileID uint) *Member {
	if c.MemberOne.ProfileID == profileID {
		return &c.MemberOne
	}
	if c.MemberTwo.ProfileID == profileID {
		return &c.MemberTwo
	}
	return nil
}
