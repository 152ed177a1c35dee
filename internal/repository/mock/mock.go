package mock_repository

import (
	"context"
	"time"

	"github.com/skyticket/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Users struct {
	mock.Mock
}

func (m *Users) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *Users) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)

	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *Users) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	args := m.Called(ctx, userName)

	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *Users) FindConflicts(ctx context.Context, phoneNumber, userName, email string) (domain.UserConflicts, error) {
	args := m.Called(ctx, phoneNumber, userName, email)

	return args.Get(0).(domain.UserConflicts), args.Error(1)
}

func (m *Users) UpdateProfile(ctx context.Context, id uuid.UUID, profile domain.UserProfile) error {
	args := m.Called(ctx, id, profile)

	return args.Error(0)
}

func (m *Users) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)

	return args.Error(0)
}

type RefreshSession struct {
	mock.Mock
}

func (m *RefreshSession) Create(ctx context.Context, session *domain.RefreshSession) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *RefreshSession) GetByToken(ctx context.Context, refreshToken uuid.UUID) (*domain.RefreshSession, error) {
	args := m.Called(ctx, refreshToken)

	session, _ := args.Get(0).(*domain.RefreshSession)
	return session, args.Error(1)
}

func (m *RefreshSession) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *RefreshSession) DeleteByToken(ctx context.Context, userID uuid.UUID, refreshToken uuid.UUID) error {
	args := m.Called(ctx, userID, refreshToken)

	return args.Error(0)
}

func (m *RefreshSession) DeleteAllByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

type OtpCodes struct {
	mock.Mock
}

func (m *OtpCodes) Create(ctx context.Context, otp *domain.OtpCode) error {
	args := m.Called(ctx, otp)

	return args.Error(0)
}

func (m *OtpCodes) GetLatestByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.OtpCode, error) {
	args := m.Called(ctx, phoneNumber)

	otp, _ := args.Get(0).(*domain.OtpCode)
	return otp, args.Error(1)
}

func (m *OtpCodes) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type PendingRegistrations struct {
	mock.Mock
}

func (m *PendingRegistrations) Save(ctx context.Context, token string, registration *domain.PendingRegistration, ttl time.Duration) error {
	args := m.Called(ctx, token, registration, ttl)

	return args.Error(0)
}

func (m *PendingRegistrations) Get(ctx context.Context, token string) (*domain.PendingRegistration, error) {
	args := m.Called(ctx, token)

	registration, _ := args.Get(0).(*domain.PendingRegistration)
	return registration, args.Error(1)
}

func (m *PendingRegistrations) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

type Airlines struct {
	mock.Mock
}

func (m *Airlines) GetAll(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)

	airlines, _ := args.Get(0).([]domain.Airline)
	return airlines, args.Error(1)
}

type UserDocuments struct {
	mock.Mock
}

func (m *UserDocuments) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error) {
	args := m.Called(ctx, userID)

	document, _ := args.Get(0).(*domain.UserDocument)
	return document, args.Error(1)
}

func (m *UserDocuments) Upsert(ctx context.Context, document *domain.UserDocument) error {
	args := m.Called(ctx, document)

	return args.Error(0)
}

type SearchCache struct {
	mock.Mock
}

func (m *SearchCache) Get(ctx context.Context, q domain.FlightQuery) (*domain.FlightSearchResult, error) {
	args := m.Called(ctx, q)

	res, _ := args.Get(0).(*domain.FlightSearchResult)
	return res, args.Error(1)
}

func (m *SearchCache) Set(ctx context.Context, q domain.FlightQuery, result *domain.FlightSearchResult, ttl time.Duration) error {
	args := m.Called(ctx, q, result, ttl)

	return args.Error(0)
}
