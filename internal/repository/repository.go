package repository

import (
	"context"
	"time"

	"github.com/skyticket/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Users                Users
	RefreshSession       RefreshSession
	OtpCodes             OtpCodes
	PendingRegistrations PendingRegistrations
	Airlines             Airlines
	UserDocuments        UserDocuments
	SearchCache          SearchCache
}

func NewRepositories(db *sqlx.DB, rdb redis.UniversalClient) *Repositories {
	return &Repositories{
		Users:                newUserRepository(db),
		RefreshSession:       newRefreshSessionRepository(db),
		OtpCodes:             newOtpCodeRepository(db),
		PendingRegistrations: newPendingRegistrationRepository(rdb),
		Airlines:             newAirlineRepository(db),
		UserDocuments:        newUserDocumentRepository(db),
		SearchCache:          newSearchCacheRepository(rdb),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	FindConflicts(ctx context.Context, phoneNumber, userName, email string) (domain.UserConflicts, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, profile domain.UserProfile) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type RefreshSession interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	GetByToken(ctx context.Context, refreshToken uuid.UUID) (*domain.RefreshSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByToken(ctx context.Context, userID uuid.UUID, refreshToken uuid.UUID) error
	DeleteAllByUserID(ctx context.Context, userID uuid.UUID) error
}

type OtpCodes interface {
	Create(ctx context.Context, otp *domain.OtpCode) error
	GetLatestByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.OtpCode, error)
	Delete(ctx context.Context, id int64) error
}

type PendingRegistrations interface {
	Save(ctx context.Context, token string, registration *domain.PendingRegistration, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.PendingRegistration, error)
	Delete(ctx context.Context, token string) error
}

type Airlines interface {
	GetAll(ctx context.Context) ([]domain.Airline, error)
}

type UserDocuments interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error)
	Upsert(ctx context.Context, document *domain.UserDocument) error
}

type SearchCache interface {
	Get(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResult, error)
	Set(ctx context.Context, query domain.FlightQuery, result *domain.FlightSearchResult, ttl time.Duration) error
}
