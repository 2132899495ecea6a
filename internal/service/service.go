package service

import (
	"chatcord/internal/repository"
)

type Services struct {
	Profile          *ProfileService
	Server           *ServerService
	Member           *MemberService
	Invite           *InviteService
	Conversation     *ConversationService
	DirectMessage    *DirectMessageService
	WebSocketManager *WebSocketManager
}

func NewServices(repos *repository.Repositories) *Services {
	wsManager := NewWebSocketManager()

	return &Services{
		Profile:          NewProfileService(repos.Profile),
		Server:           NewServerService(repos.Server, repos.Member),
		Member:           NewMemberService(repos.Member, repos.Server),
		Invite:           NewInviteService(repos.Server, repos.Member),
		Conversation:     NewConversationService(repos.Conversation, repos.Member),
		DirectMessage:    NewDirectMessageService(repos.Conversation, repos.DirectMessage, wsManager),
		WebSocketManager: wsManager,
	}
}
