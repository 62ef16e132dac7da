package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bakeandtaste/internal/delivery/context"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	"bakeandtaste/internal/domain/service"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	identity     usecase.IdentityUsecase
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Identity     usecase.IdentityUsecase
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		identity:     params.Identity,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates an account and provisions its profile in one transaction.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("email and password are required")
	}

	role, ok := entity.RoleOrDefault(input.Role)
	if !ok {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("unknown role")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	var profile *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account := &entity.Account{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: passwordHash,
		}
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAccountAlreadyExists) {
				return domainerrors.ErrEmailAlreadyExists.WrapMessage("signup")
			}

			return errors.Wrap(err, "failed to create account")
		}

		created, err := provisionProfile(ctx, repoFactory.ProfileRepo(), account, input.DisplayName, role)
		if err != nil {
			return err
		}
		profile = created

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Info("Account created", slog.Any("principalID", profile.PrincipalID), slog.Any("role", profile.Role))

	return srv.authenticated(ctx, profile)
}

// SignIn verifies credentials and issues an access token.
// A principal without a profile gets one provisioned as a customer.
func (srv *accountService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on sign in", slog.Any("principalID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	profile, err := srv.profileRepo.FindByPrincipalID(ctx, account.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		profile, err = srv.provisionMissingProfile(ctx, account)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile on sign in")
	}

	return srv.authenticated(ctx, profile)
}

// SignOut ends the principal's session for every identity observer.
func (srv *accountService) SignOut(ctx context.Context, principalID uuid.UUID) error {
	srv.log(ctx).Info("Signing out", slog.Any("principalID", principalID))
	srv.identity.NotifySession(ctx, nil)

	return nil
}

func (srv *accountService) provisionMissingProfile(ctx context.Context, account *entity.Account) (*entity.Profile, error) {
	srv.log(ctx).Info("Provisioning missing profile", slog.Any("principalID", account.ID))

	profile, err := provisionProfile(ctx, srv.profileRepo, account, "", entity.RoleCustomer)
	if errors.Is(err, domainerrors.ErrConflict) {
		// A concurrent sign in provisioned it first.
		existing, findErr := srv.profileRepo.FindByPrincipalID(ctx, account.ID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to reload provisioned profile")
		}

		return existing, nil
	}

	return profile, err
}

func (srv *accountService) authenticated(ctx context.Context, profile *entity.Profile) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(profile.PrincipalID, profile.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	principalID := profile.PrincipalID
	srv.identity.NotifySession(ctx, &principalID)

	return &usecase.AuthOutput{
		AccessToken: token,
		Profile:     profile,
	}, nil
}

// provisionProfile creates the single profile of a principal.
// The display name falls back to the account email.
func provisionProfile(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	account *entity.Account,
	displayName string,
	role entity.Role,
) (*entity.Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = account.Email
	}

	profile := &entity.Profile{
		ID:          uuid.New(),
		PrincipalID: account.ID,
		Role:        role,
		DisplayName: displayName,
		Email:       account.Email,
	}
	if err := profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "profile already provisioned")
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
