package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chatcord/internal/models"
)

func newConversationFixture() (*ConversationService, *fakeConversationRepo, *fakeMemberRepo) {
	conversationRepo := newFakeConversationRepo()
	memberRepo := newFakeMemberRepo()

	memberRepo.members[10] = &models.Member{Model: gorm.Model{ID: 10}, ProfileID: 1, ServerID: 1, Role: models.RoleGuest}
	memberRepo.members[20] = &models.Member{Model: gorm.Model{ID: 20}, ProfileID: 2, ServerID: 1, Role: models.RoleGuest}

	return NewConversationService(conversationRepo, memberRepo), conversationRepo, memberRepo
}

func Test_GetOrCreate_Creates_Once(t *testing.T) {
	req := require.New(t)
	svc, conversationRepo, _ := newConversationFixture()

	created, err := svc.GetOrCreate(profileWithID(1), 1, 20)
	req.NoError(err)
	req.NotNil(created)
	req.Len(conversationRepo.conversations, 1)

	// the same pair resolves to the same conversation from either side
	fromOtherSide, err := svc.GetOrCreate(profileWithID(2), 1, 10)
	req.NoError(err)
	req.Equal(created.ID, fromOtherSide.ID)
	req.Len(conversationRepo.conversations, 1)
}

func Test_GetOrCreate_With_Self_Rejected(t *testing.T) {
	req := require.New(t)
	svc, conversationRepo, _ := newConversationFixture()

	// the two slots of a conversation are always distinct members
	_, err := svc.GetOrCreate(profileWithID(1), 1, 10)
	req.ErrorIs(err, ErrSelfAction)
	req.Empty(conversationRepo.conversations)
}

func Test_GetOrCreate_Target_In_Other_Server(t *testing.T) {
	req := require.New(t)
	svc, _, memberRepo := newConversationFixture()
	memberRepo.members[30] = &models.Member{Model: gorm.Model{ID: 30}, ProfileID: 3, ServerID: 2, Role: models.RoleGuest}

	_, err := svc.GetOrCreate(profileWithID(1), 1, 30)
	req.ErrorIs(err, ErrMemberNotFound)
}

func Test_Get_Requires_Membership(t *testing.T) {
	req := require.New(t)
	svc, conversationRepo, _ := newConversationFixture()

	conversationRepo.conversations[1] = &models.Conversation{
		Model:       gorm.Model{ID: 1},
		MemberOneID: 10,
		MemberTwoID: 20,
		MemberOne:   models.Member{Model: gorm.Model{ID: 10}, ProfileID: 1},
		MemberTwo:   models.Member{Model: gorm.Model{ID: 20}, ProfileID: 2},
	}

	conversation, err := svc.Get(profileWithID(1), 1)
	req.NoError(err)
	req.Equal(uint(1), conversation.ID)

	_, err = svc.Get(profileWithID(3), 1)
	req.ErrorIs(err, ErrConversationNotFound)

	_, err = svc.Get(nil, 1)
	req.ErrorIs(err, ErrUnauthenticated)

	_, err = svc.Get(profileWithID(1), 0)
	req.ErrorIs(err, ErrMissingConversation)
}
