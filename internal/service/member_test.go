package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chatcord/internal/models"
)

// fixture: server 1 with admin (member 10 / profile 1),
// moderator (member 20 / profile 2) and guest (member 30 / profile 3)
func newMemberFixture() (*MemberService, *fakeMemberRepo, *fakeServerRepo) {
	memberRepo := newFakeMemberRepo()
	serverRepo := newFakeServerRepo()

	admin := &models.Member{Model: gorm.Model{ID: 10}, ProfileID: 1, ServerID: 1, Role: models.RoleAdmin}
	moderator := &models.Member{Model: gorm.Model{ID: 20}, ProfileID: 2, ServerID: 1, Role: models.RoleModerator}
	guest := &models.Member{Model: gorm.Model{ID: 30}, ProfileID: 3, ServerID: 1, Role: models.RoleGuest}
	memberRepo.members[10] = admin
	memberRepo.members[20] = moderator
	memberRepo.members[30] = guest

	serverRepo.servers[1] = &models.Server{
		Model:      gorm.Model{ID: 1},
		Name:       "general",
		InviteCode: "code-1",
		Members:    []models.Member{*guest, *admin, *moderator},
	}

	return NewMemberService(memberRepo, serverRepo), memberRepo, serverRepo
}

func Test_ChangeRole_By_Admin(t *testing.T) {
	req := require.New(t)
	svc, memberRepo, _ := newMemberFixture()

	server, err := svc.ChangeRole(profileWithID(1), 1, 30, models.RoleModerator)
	req.NoError(err)
	req.NotNil(server)
	req.Equal(models.RoleModerator, memberRepo.members[30].Role)
}

func Test_ChangeRole_By_Non_Admin_Forbidden(t *testing.T) {
	req := require.New(t)
	svc, memberRepo, _ := newMemberFixture()

	// moderators manage messages, not memberships
	_, err := svc.ChangeRole(profileWithID(2), 1, 30, models.RoleModerator)
	req.ErrorIs(err, ErrForbidden)
	req.Equal(models.RoleGuest, memberRepo.members[30].Role)
}

func Test_ChangeRole_On_Self_Rejected(t *testing.T) {
	req := require.New(t)
	svc, _, _ := newMemberFixture()

	_, err := svc.ChangeRole(profileWithID(1), 1, 10, models.RoleGuest)
	req.ErrorIs(err, ErrSelfAction)
}

func Test_ChangeRole_Invalid_Role(t *testing.T) {
	req := require.New(t)
	svc, _, _ := newMemberFixture()

	_, err := svc.ChangeRole(profileWithID(1), 1, 30, models.MemberRole("OWNER"))
	req.ErrorIs(err, ErrInvalidRole)
}

func Test_ChangeRole_Target_In_Other_Server(t *testing.T) {
	req := require.New(t)
	svc, memberRepo, _ := newMemberFixture()
	memberRepo.members[40] = &models.Member{Model: gorm.Model{ID: 40}, ProfileID: 4, ServerID: 2, Role: models.RoleGuest}

	_, err := svc.ChangeRole(profileWithID(1), 1, 40, models.RoleModerator)
	req.ErrorIs(err, ErrMemberNotFound)
}

func Test_Kick_By_Admin(t *testing.T) {
	req := require.New(t)
	svc, memberRepo, _ := newMemberFixture()

	server, err := svc.Kick(profileWithID(1), 1, 30)
	req.NoError(err)
	req.NotNil(server)
	req.Contains(memberRepo.deleted, uint(30))
	_, found := memberRepo.members[30]
	req.False(found)
}

func Test_Kick_Self_Rejected(t *testing.T) {
	req := require.New(t)
	svc, memberRepo, _ := newMemberFixture()

	_, err := svc.Kick(profileWithID(1), 1, 10)
	req.ErrorIs(err, ErrSelfAction)
	req.Empty(memberRepo.deleted)
}

func Test_SortMembersByRole(t *testing.T) {
	req := require.New(t)

	members := []models.Member{
		{Role: models.RoleGuest},
		{Role: models.RoleAdmin},
		{Role: models.RoleModerator},
		{Role: models.RoleGuest},
	}
	SortMembersByRole(members)

	req.Equal(models.RoleAdmin, members[0].Role)
	req.Equal(models.RoleModerator, members[1].Role)
	req.Equal(models.RoleGuest, members[2].Role)
	req.Equal(models.RoleGuest, members[3].Role)
}
