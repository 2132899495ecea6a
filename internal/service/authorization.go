package service

import (
	"chatcord/internal/models"
)

// MutationKind 表示訊息變更操作的種類
type MutationKind string

const (
	MutationEdit   MutationKind = "EDIT"
	MutationDelete MutationKind = "DELETE"
)

// CanModify 判斷用戶是否可以對訊息執行指定操作
// 規則：訊息擁有者或具管理權限的成員（版主、管理員）可以刪除；
// 編輯則只有訊息擁有者本人可以，管理權限不適用
// 純函式，每個請求都重新判斷，不做任何快取
func CanModify(profileID uint, message *models.DirectMessage, member *models.Member, kind MutationKind) bool {
	isOwner := message.Member.ProfileID == profileID
	if kind == MutationEdit {
		return isOwner
	}
	return isOwner || member.Role.Elevated()
}
