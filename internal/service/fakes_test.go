package service

import (
	"gorm.io/gorm"

	"chatcord/internal/models"
)

// in-memory repository doubles for service tests

type fakeConversationRepo struct {
	conversations map[uint]*models.Conversation
	findCalls     int
	nextID        uint
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: make(map[uint]*models.Conversation), nextID: 1}
}

func (f *fakeConversationRepo) Create(conversation *models.Conversation) error {
	conversation.ID = f.nextID
	f.nextID++
	f.conversations[conversation.ID] = conversation
	return nil
}

func (f *fakeConversationRepo) FindForProfile(conversationID, profileID uint) (*models.Conversation, error) {
	f.findCalls++
	conversation, ok := f.conversations[conversationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if conversation.MemberOne.ProfileID != profileID && conversation.MemberTwo.ProfileID != profileID {
		return nil, gorm.ErrRecordNotFound
	}
	return conversation, nil
}

func (f *fakeConversationRepo) FindByMembers(memberOneID, memberTwoID uint) (*models.Conversation, error) {
	for _, conversation := range f.conversations {
		if (conversation.MemberOneID == memberOneID && conversation.MemberTwoID == memberTwoID) ||
			(conversation.MemberOneID == memberTwoID && conversation.MemberTwoID == memberOneID) {
			return conversation, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeDirectMessageRepo struct {
	messages    map[uint]models.DirectMessage
	updateCalls int
	updateErr   error
}

func newFakeDirectMessageRepo() *fakeDirectMessageRepo {
	return &fakeDirectMessageRepo{messages: make(map[uint]models.DirectMessage)}
}

func (f *fakeDirectMessageRepo) FindByIDAndConversation(messageID, conversationID uint) (*models.DirectMessage, error) {
	message, ok := f.messages[messageID]
	if !ok || message.ConversationID != conversationID {
		return nil, gorm.ErrRecordNotFound
	}
	// copy, so that a mutation without Update never reaches the store
	found := message
	return &found, nil
}

func (f *fakeDirectMessageRepo) Update(message *models.DirectMessage) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalls++
	f.messages[message.ID] = *message
	return nil
}

type fakeMemberRepo struct {
	members map[uint]*models.Member
	deleted []uint
	nextID  uint
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uint]*models.Member), nextID: 1}
}

func (f *fakeMemberRepo) Create(member *models.Member) error {
	if member.ID == 0 {
		member.ID = f.nextID
		f.nextID++
	}
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) FindByID(id uint) (*models.Member, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return member, nil
}

func (f *fakeMemberRepo) FindByServerAndProfile(serverID, profileID uint) (*models.Member, error) {
	for _, member := range f.members {
		if member.ServerID == serverID && member.ProfileID == profileID {
			return member, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMemberRepo) Update(member *models.Member) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) Delete(id uint) error {
	delete(f.members, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeServerRepo struct {
	servers map[uint]*models.Server
}

func newFakeServerRepo() *fakeServerRepo {
	return &fakeServerRepo{servers: make(map[uint]*models.Server)}
}

func (f *fakeServerRepo) FindByID(id uint) (*models.Server, error) {
	server, ok := f.servers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return server, nil
}

func (f *fakeServerRepo) FindByIDWithDetails(id uint) (*models.Server, error) {
	return f.FindByID(id)
}

func (f *fakeServerRepo) FindByInviteCode(code string) (*models.Server, error) {
	for _, server := range f.servers {
		if server.InviteCode == code {
			return server, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeServerRepo) Update(server *models.Server) error {
	f.servers[server.ID] = server
	return nil
}

// capturePublisher 攔截推播事件供測試檢查
type capturePublisher struct {
	topics   []string
	payloads []interface{}
}

func (p *capturePublisher) Publish(topic string, payload interface{}) {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
}
