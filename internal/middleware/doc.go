// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前主要的中間件是身份解析：驗證 JWT token 並將對應的用戶資料
// 放入請求上下文，後續的 handler 透過 CurrentProfile 取得呼叫者身份。
package middleware
