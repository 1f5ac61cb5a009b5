package common

import (
	"context"
	"errors"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/model"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/pkg/authenticator"
	"github.com/ekranoplan/backend/pkg/enum"
	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RoleResolution decides which roles of a member form its baseline
// permission set.
type RoleResolution int

var (
	// RoleResolutionMerge ORs the permissions of every role of the member.
	RoleResolutionMerge = enum.New(RoleResolution(0), "merge")

	// RoleResolutionFirst only looks at the first role of the member.
	RoleResolutionFirst = enum.New(RoleResolution(1), "first")
)

func (r RoleResolution) String() string {
	return enum.ToString(r)
}

func ParseRoleResolution(s string) (RoleResolution, error) {
	if s == "" {
		return RoleResolutionMerge, nil
	}

	return enum.ToEnum[RoleResolution](s)
}

type SessionVerifier struct {
	tokenEngine authenticator.TokenEngine[model.AccessToken]
	userRepo    repository.UserRepository
	memberRepo  repository.MemberRepository
}

func NewSessionVerifier(
	tokenEngine authenticator.TokenEngine[model.AccessToken],
	userRepo repository.UserRepository,
	memberRepo repository.MemberRepository,
) *SessionVerifier {
	return &SessionVerifier{
		tokenEngine: tokenEngine,
		userRepo:    userRepo,
		memberRepo:  memberRepo,
	}
}

func (verifier *SessionVerifier) ResolveUser(
	ctx context.Context,
	token string,
	excludeBots bool,
) (*entity.User, error) {
	accessToken, err := verifier.tokenEngine.Verify(token)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify session token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid session token")
	}

	user, err := verifier.userRepo.GetByID(ctx, accessToken.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "User of session no longer exists")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user %d: %v", accessToken.ID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot resolve user")
	}

	if excludeBots && user.Bot {
		return nil, errorx.New(errorx.PermissionDenied, "Bots are not allowed")
	}

	return user, nil
}

// ResolveMember returns the membership of the session user in guildID. A user
// outside the guild is denied rather than told the guild does not exist.
func (verifier *SessionVerifier) ResolveMember(
	ctx context.Context,
	token string,
	guildID int64,
	excludeBots bool,
) (*entity.Member, *entity.User, error) {
	user, err := verifier.ResolveUser(ctx, token, excludeBots)
	if err != nil {
		return nil, nil, err
	}

	member, err := verifier.memberRepo.Get(ctx, user.ID, guildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorx.New(errorx.PermissionDenied, "User is not a member of guild")
		}

		xcontext.Logger(ctx).Errorf("Cannot get member %d of guild %d: %v", user.ID, guildID, err)
		return nil, nil, errorx.New(errorx.Unavailable, "Cannot resolve member")
	}

	return member, user, nil
}

func (verifier *SessionVerifier) ResolveAdmin(ctx context.Context, token string) (*entity.User, error) {
	user, err := verifier.ResolveUser(ctx, token, false)
	if err != nil {
		return nil, err
	}

	if !user.Flags.Has(entity.STAFF) {
		return nil, errorx.New(errorx.PermissionDenied, "Only staff can do this action")
	}

	return user, nil
}

type ChannelVerifier struct {
	sessionVerifier *SessionVerifier
	guildRepo       repository.GuildRepository
	channelRepo     repository.ChannelRepository
	roleRepo        repository.RoleRepository
	roleResolution  RoleResolution
}

func NewChannelVerifier(
	sessionVerifier *SessionVerifier,
	guildRepo repository.GuildRepository,
	channelRepo repository.ChannelRepository,
	roleRepo repository.RoleRepository,
	roleResolution RoleResolution,
) *ChannelVerifier {
	return &ChannelVerifier{
		sessionVerifier: sessionVerifier,
		guildRepo:       guildRepo,
		channelRepo:     channelRepo,
		roleRepo:        roleRepo,
		roleResolution:  roleResolution,
	}
}

// ResolveChannelPermission grants the session user the permission on the
// channel, or returns the error explaining why not.
func (verifier *ChannelVerifier) ResolveChannelPermission(
	ctx context.Context,
	token string,
	guildID, channelID int64,
	permission entity.PermissionFlag,
	excludeBots bool,
) (*entity.Member, *entity.User, *entity.GuildChannel, error) {
	member, user, err := verifier.sessionVerifier.ResolveMember(ctx, token, guildID, excludeBots)
	if err != nil {
		return nil, nil, nil, err
	}

	channel, err := verifier.ResolveChannel(ctx, channelID, guildID)
	if err != nil {
		return nil, nil, nil, err
	}

	granted, err := evaluate(member, channel, permission, func() (entity.PermissionFlag, error) {
		return verifier.Baseline(ctx, member)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	if !granted {
		return nil, nil, nil, errorx.New(errorx.PermissionDenied, "Missing permission %s", permission)
	}

	return member, user, channel, nil
}

func (verifier *ChannelVerifier) ResolveChannel(
	ctx context.Context,
	channelID, guildID int64,
) (*entity.GuildChannel, error) {
	channel, err := verifier.channelRepo.GetByID(ctx, channelID, guildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found channel")
		}

		xcontext.Logger(ctx).Errorf("Cannot get channel %d: %v", channelID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot resolve channel")
	}

	return channel, nil
}

// EffectivePermissions returns every permission the member holds on the
// channel.
func (verifier *ChannelVerifier) EffectivePermissions(
	ctx context.Context,
	member *entity.Member,
	channel *entity.GuildChannel,
) (entity.PermissionFlag, error) {
	if member.Owner {
		return entity.AllPermissions, nil
	}

	if overwrite, ok := channel.OverwriteFor(member.ID); ok {
		return overwrite.Allow &^ overwrite.Deny, nil
	}

	baseline, err := verifier.Baseline(ctx, member)
	if err != nil {
		return 0, err
	}

	if baseline.Has(entity.ADMINISTRATOR) {
		return entity.AllPermissions, nil
	}

	return baseline, nil
}

// Baseline returns the guild-wide permissions of the member, ignoring
// ownership and channel overwrites.
func (verifier *ChannelVerifier) Baseline(ctx context.Context, member *entity.Member) (entity.PermissionFlag, error) {
	if len(member.Roles) == 0 {
		guild, err := verifier.guildRepo.GetByID(ctx, member.GuildID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				xcontext.Logger(ctx).Errorf("Guild %d of member %d does not exist", member.GuildID, member.ID)
				return 0, errorx.New(errorx.Internal, "Inconsistent guild data")
			}

			xcontext.Logger(ctx).Errorf("Cannot get guild %d: %v", member.GuildID, err)
			return 0, errorx.New(errorx.Unavailable, "Cannot resolve guild")
		}

		return guild.Permissions, nil
	}

	roleIDs := member.Roles
	if verifier.roleResolution == RoleResolutionFirst {
		roleIDs = roleIDs[:1]
	}

	roles, err := verifier.roleRepo.GetByIDs(ctx, roleIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get roles %v: %v", roleIDs, err)
		return 0, errorx.New(errorx.Unavailable, "Cannot resolve roles")
	}

	var permissions entity.PermissionFlag
	for _, id := range roleIDs {
		i := slices.IndexFunc(roles, func(role entity.Role) bool {
			return role.ID == id && role.GuildID == member.GuildID
		})
		if i < 0 {
			xcontext.Logger(ctx).Errorf("Role %d of member %d does not exist in guild %d",
				id, member.ID, member.GuildID)
			return 0, errorx.New(errorx.Internal, "Inconsistent role data")
		}

		permissions |= roles[i].Permissions
	}

	return permissions, nil
}

// evaluate decides the permission in order: ownership, the user overwrite of
// the channel, then the baseline. The baseline is only loaded when needed.
func evaluate(
	member *entity.Member,
	channel *entity.GuildChannel,
	permission entity.PermissionFlag,
	baseline func() (entity.PermissionFlag, error),
) (bool, error) {
	if member.Owner {
		return true, nil
	}

	if overwrite, ok := channel.OverwriteFor(member.ID); ok {
		if overwrite.Deny.Has(permission) {
			return false, nil
		}

		return overwrite.Allow.Has(permission), nil
	}

	permissions, err := baseline()
	if err != nil {
		return false, err
	}

	if permissions.Has(entity.ADMINISTRATOR) {
		return true, nil
	}

	return permissions.Has(permission), nil
}
