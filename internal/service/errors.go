package service

import "errors"

// service 層的預期錯誤
// handler 以 errors.Is 判斷並轉換為對應的 HTTP 狀態碼
// 其他未預期的錯誤一律視為內部錯誤
var (
	ErrUnauthenticated      = errors.New("未驗證的用戶")
	ErrMissingConversation  = errors.New("缺少對話ID")
	ErrConversationNotFound = errors.New("對話不存在")
	ErrMemberNotFound       = errors.New("成員不存在")
	ErrMessageNotFound      = errors.New("訊息不存在")
	ErrServerNotFound       = errors.New("伺服器不存在")
	ErrForbidden            = errors.New("沒有操作權限")
	ErrEditNotOwner         = errors.New("只有訊息擁有者可以編輯")
	ErrEmptyContent         = errors.New("訊息內容不能為空")
	ErrInvalidRole          = errors.New("無效的角色")
	ErrSelfAction           = errors.New("不能對自己的成員資格執行此操作")
)
