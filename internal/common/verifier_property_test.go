package common

import (
	"errors"
	"testing"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var errBaselineLoaded = errors.New("baseline must not be loaded")

func drawPermission(t *rapid.T, label string) entity.PermissionFlag {
	return entity.PermissionFlag(1) << rapid.IntRange(0, 18).Draw(t, label)
}

func drawPermissions(t *rapid.T, label string) entity.PermissionFlag {
	return entity.PermissionFlag(rapid.Uint64Range(0, uint64(entity.AllPermissions)).Draw(t, label))
}

func drawChannel(t *rapid.T, userID int64) *entity.GuildChannel {
	channel := &entity.GuildChannel{}
	n := rapid.IntRange(0, 5).Draw(t, "overwrites")
	for i := 0; i < n; i++ {
		target := rapid.SampledFrom([]int64{userID, userID + 1, userID + 2}).Draw(t, "target")
		channel.PermissionOverwrites = append(channel.PermissionOverwrites, entity.PermissionOverwrite{
			ID:    target,
			Allow: drawPermissions(t, "allow"),
			Deny:  drawPermissions(t, "deny"),
		})
	}

	return channel
}

func failingBaseline() (entity.PermissionFlag, error) {
	return 0, errBaselineLoaded
}

func TestEvaluate_OwnerAlwaysGranted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		member := &entity.Member{ID: 100, Owner: true}
		channel := drawChannel(t, member.ID)
		permission := drawPermission(t, "permission")

		granted, err := evaluate(member, channel, permission, failingBaseline)
		require.NoError(t, err)
		require.True(t, granted)
	})
}

func TestEvaluate_OverwriteDenyBeatsBaseline(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		member := &entity.Member{ID: 100}
		permission := drawPermission(t, "permission")
		channel := &entity.GuildChannel{
			PermissionOverwrites: entity.Array[entity.PermissionOverwrite]{
				{ID: member.ID, Allow: drawPermissions(t, "allow"), Deny: drawPermissions(t, "deny") | permission},
			},
		}

		granted, err := evaluate(member, channel, permission, func() (entity.PermissionFlag, error) {
			return entity.AllPermissions, nil
		})
		require.NoError(t, err)
		require.False(t, granted)
	})
}

func TestEvaluate_OverwriteAllowGrants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		member := &entity.Member{ID: 100}
		permission := drawPermission(t, "permission")
		channel := &entity.GuildChannel{
			PermissionOverwrites: entity.Array[entity.PermissionOverwrite]{
				{ID: member.ID, Allow: drawPermissions(t, "allow") | permission, Deny: drawPermissions(t, "deny") &^ permission},
			},
		}

		granted, err := evaluate(member, channel, permission, failingBaseline)
		require.NoError(t, err)
		require.True(t, granted)
	})
}

func TestEvaluate_FirstOverwriteWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		member := &entity.Member{ID: 100}
		permission := drawPermission(t, "permission")
		channel := &entity.GuildChannel{
			PermissionOverwrites: entity.Array[entity.PermissionOverwrite]{
				{ID: member.ID, Deny: permission},
				{ID: member.ID, Allow: permission},
			},
		}

		granted, err := evaluate(member, channel, permission, failingBaseline)
		require.NoError(t, err)
		require.False(t, granted)
	})
}

func TestEvaluate_BaselineDecidesWithoutOverwrite(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		member := &entity.Member{ID: 100}
		channel := drawChannel(t, member.ID+1)
		permission := drawPermission(t, "permission")
		baseline := drawPermissions(t, "baseline")

		granted, err := evaluate(member, channel, permission, func() (entity.PermissionFlag, error) {
			return baseline, nil
		})
		require.NoError(t, err)
		require.Equal(t, baseline.Has(entity.ADMINISTRATOR) || baseline.Has(permission), granted)
	})
}

func TestEvaluate_BaselineError(t *testing.T) {
	member := &entity.Member{ID: 100}
	_, err := evaluate(member, &entity.GuildChannel{}, entity.SEND_MESSAGES, failingBaseline)
	require.ErrorIs(t, err, errBaselineLoaded)
}
