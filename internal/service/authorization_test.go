package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chatcord/internal/models"
)

func ownedMessage(ownerProfileID uint) *models.DirectMessage {
	return &models.DirectMessage{
		Content: "hello",
		Member:  models.Member{ProfileID: ownerProfileID},
	}
}

func memberWithRole(profileID uint, role models.MemberRole) *models.Member {
	return &models.Member{ProfileID: profileID, Role: role}
}

func Test_CanModify_Delete(t *testing.T) {
	req := require.New(t)
	message := ownedMessage(1)

	// owner can always delete, whatever the role
	req.True(CanModify(1, message, memberWithRole(1, models.RoleGuest), MutationDelete))

	// elevated roles can delete someone else's message
	req.True(CanModify(2, message, memberWithRole(2, models.RoleModerator), MutationDelete))
	req.True(CanModify(2, message, memberWithRole(2, models.RoleAdmin), MutationDelete))

	// a plain guest cannot
	req.False(CanModify(2, message, memberWithRole(2, models.RoleGuest), MutationDelete))
}

func Test_CanModify_Edit_Is_Owner_Only(t *testing.T) {
	req := require.New(t)
	message := ownedMessage(1)

	req.True(CanModify(1, message, memberWithRole(1, models.RoleGuest), MutationEdit))

	// elevation does not grant the right to rewrite someone else's words
	req.False(CanModify(2, message, memberWithRole(2, models.RoleModerator), MutationEdit))
	req.False(CanModify(2, message, memberWithRole(2, models.RoleAdmin), MutationEdit))
}

func Test_MemberRole_Helpers(t *testing.T) {
	req := require.New(t)

	req.True(models.RoleAdmin.Elevated())
	req.True(models.RoleModerator.Elevated())
	req.False(models.RoleGuest.Elevated())

	req.True(models.RoleGuest.Valid())
	req.False(models.MemberRole("OWNER").Valid())
}
