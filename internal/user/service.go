package user

import (
	"context"

	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/rbac"

	"go.uber.org/zap"
)

// Service defines account and address business logic.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)

	AddAddress(ctx context.Context, userID string, addr Address) (*Address, error)
	ListAddresses(ctx context.Context, userID string) ([]Address, error)
	DeleteAddressByIndex(ctx context.Context, userID string, index int) error
}

type service struct {
	repo        Repository
	adminSecret string
}

func NewService(repo Repository, adminSecret string) Service {
	return &service{repo: repo, adminSecret: adminSecret}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("username", params.Username),
	)

	if !rbac.Valid(params.Role) {
		return nil, ErrInvalidRole
	}
	if params.Role == rbac.RoleAdmin && params.SecretCode != s.adminSecret {
		log.Warn("admin registration rejected")
		return nil, ErrAdminSecret
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &User{
		Username:       params.Username,
		Email:          params.Email,
		Phone:          params.Phone,
		HashedPassword: hashed,
		FullName:       params.FullName,
		Role:           params.Role,
		StoreName:      params.StoreName,
		StoreAddress:   params.StoreAddress,
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user registered",
		zap.String("user_id", created.ID),
		zap.String("role", string(created.Role)),
	)
	return created, nil
}

func (s *service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Do not leak whether the username exists.
		return nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	if err := s.repo.UpdateProfile(ctx, params); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, params.UserID)
}

func (s *service) AddAddress(ctx context.Context, userID string, addr Address) (*Address, error) {
	if addr.Type != AddressTypeHome {
		addr.Type = AddressTypeOther
	}
	addr.UserID = userID
	return s.repo.AddAddress(ctx, &addr)
}

func (s *service) ListAddresses(ctx context.Context, userID string) ([]Address, error) {
	return s.repo.ListAddresses(ctx, userID)
}

// DeleteAddressByIndex removes the address at the given position in the
// buyer's ordered address list.
func (s *service) DeleteAddressByIndex(ctx context.Context, userID string, index int) error {
	addresses, err := s.repo.ListAddresses(ctx, userID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(addresses) {
		return ErrAddressNotFound
	}
	return s.repo.DeleteAddress(ctx, userID, addresses[index].ID)
}

// ResolveDeliveryAddress picks the delivery address for an order: an explicit
// index into the buyer's address list, bounds-checked, or the primary address
// when no index is given.
func ResolveDeliveryAddress(addresses []Address, index *int) (*Address, error) {
	if index != nil {
		if *index < 0 || *index >= len(addresses) {
			return nil, ErrAddressNotFound
		}
		return &addresses[*index], nil
	}

	for i := range addresses {
		if addresses[i].IsPrimary {
			return &addresses[i], nil
		}
	}
	return nil, ErrNoPrimaryAddress
}
