package repository

import "chatcord/internal/storage"

type Repositories struct {
	Profile       ProfileRepository
	Server        ServerRepository
	Member        MemberRepository
	Conversation  ConversationRepository
	DirectMessage DirectMessageRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Profile:       NewProfileRepository(db),
		Server:        NewServerRepository(db),
		Member:        NewMemberRepository(db),
		Conversation:  NewConversationRepository(db),
		DirectMessage: NewDirectMessageRepository(db),
	}
}
