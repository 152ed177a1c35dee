package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/domain"
	mock_repository "github.com/skyticket/backend/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationFixture struct {
	users    *mock_repository.Users
	otps     *mock_repository.OtpCodes
	pending  *mock_repository.PendingRegistrations
	sessions *mock_repository.RefreshSession
	notifier *notifierMock
	service  *registrationService
}

func newRegistrationFixture(t *testing.T, emailEnabled bool) *registrationFixture {
	f := &registrationFixture{
		users:    new(mock_repository.Users),
		otps:     new(mock_repository.OtpCodes),
		pending:  new(mock_repository.PendingRegistrations),
		sessions: new(mock_repository.RefreshSession),
		notifier: new(notifierMock),
	}

	users := newUserService(f.users, f.sessions, plainHasher{}, newTokenManager(t))
	f.service = newRegistrationService(f.users, f.otps, f.pending, users,
		plainHasher{},
		fixedOtp(4821),
		f.notifier,
		config.AuthConfig{RegistrationTTL: 10 * time.Minute},
		config.EmailConfig{Enabled: emailEnabled},
	)

	return f
}

var registrationInput = RegistrationInput{
	PhoneNumber: "09120000000",
	UserName:    "sara_k",
	Email:       "sara@example.com",
	FirstName:   "Sara",
	LastName:    "Karimi",
	Password:    "s3cret-pass",
}

func TestRegistrationService_RequestRegistration(t *testing.T) {
	f := newRegistrationFixture(t, false)
	ctx := context.Background()

	f.users.On("FindConflicts", mock.Anything, "09120000000", "sara_k", "sara@example.com").
		Return(domain.UserConflicts{}, nil)
	f.otps.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.OtpCode) bool {
		return o.PhoneNumber == "09120000000" && o.Code == 4821
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.OtpCode).ID = 7
	}).Return(nil)
	f.notifier.On("SendOtp", mock.Anything, "09120000000", 4821).Return(nil).Once()
	f.pending.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(p *domain.PendingRegistration) bool {
		return p.PasswordHash == "hashed:s3cret-pass" && p.UserName == "sara_k"
	}), 10*time.Minute).Return(nil)

	ticket, err := f.service.RequestRegistration(ctx, registrationInput)
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.Token)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), ticket.ExpiresAt, 5*time.Second)

	f.notifier.AssertNumberOfCalls(t, "SendOtp", 1)
	mock.AssertExpectationsForObjects(t, f.users, f.otps, f.pending)
}

func TestRegistrationService_RequestRegistration_Conflicts(t *testing.T) {
	tests := []struct {
		name      string
		conflicts domain.UserConflicts
		want      error
	}{
		{"phone", domain.UserConflicts{PhoneNumber: true, Email: true}, ErrPhoneNumberTaken},
		{"user name", domain.UserConflicts{UserName: true}, ErrUserNameTaken},
		{"email", domain.UserConflicts{Email: true}, ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRegistrationFixture(t, false)
			f.users.On("FindConflicts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tt.conflicts, nil)

			_, err := f.service.RequestRegistration(context.Background(), registrationInput)
			assert.ErrorIs(t, err, tt.want)

			f.otps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.notifier.AssertNotCalled(t, "SendOtp", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRegistrationService_RequestRegistration_EnqueueFails(t *testing.T) {
	f := newRegistrationFixture(t, false)

	f.users.On("FindConflicts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.UserConflicts{}, nil)
	f.otps.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("SendOtp", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err := f.service.RequestRegistration(context.Background(), registrationInput)
	require.Error(t, err)
	f.pending.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func pendingRecord() *domain.PendingRegistration {
	return &domain.PendingRegistration{
		PhoneNumber:  "09120000000",
		UserName:     "sara_k",
		Email:        "sara@example.com",
		FirstName:    "Sara",
		LastName:     "Karimi",
		PasswordHash: "hashed:s3cret-pass",
	}
}

func TestRegistrationService_VerifyRegistration(t *testing.T) {
	f := newRegistrationFixture(t, true)
	ctx := context.Background()

	f.pending.On("Get", mock.Anything, "tok").Return(pendingRecord(), nil)
	f.otps.On("GetLatestByPhoneNumber", mock.Anything, "09120000000").
		Return(&domain.OtpCode{ID: 7, PhoneNumber: "09120000000", Code: 4821}, nil)
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.UserName == "sara_k" && u.Password == "hashed:s3cret-pass" && u.PhoneNumber == "09120000000"
	})).Return(nil)
	f.otps.On("Delete", mock.Anything, int64(7)).Return(nil)
	f.pending.On("Delete", mock.Anything, "tok").Return(nil)
	f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("SendWelcome", mock.Anything, "sara@example.com", "Sara").Return(nil)

	tokens, err := f.service.VerifyRegistration(ctx, VerifyRegistrationInput{Token: "tok", Code: "4821"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	mock.AssertExpectationsForObjects(t, f.users, f.otps, f.pending, f.sessions, f.notifier)
}

func TestRegistrationService_VerifyRegistration_Mismatch(t *testing.T) {
	f := newRegistrationFixture(t, true)

	f.pending.On("Get", mock.Anything, "tok").Return(pendingRecord(), nil)
	f.otps.On("GetLatestByPhoneNumber", mock.Anything, "09120000000").
		Return(&domain.OtpCode{ID: 7, PhoneNumber: "09120000000", Code: 4821}, nil)

	_, err := f.service.VerifyRegistration(context.Background(), VerifyRegistrationInput{Token: "tok", Code: "1111"})
	assert.ErrorIs(t, err, ErrCodeMismatch)

	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.otps.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.pending.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRegistrationService_VerifyRegistration_NoSession(t *testing.T) {
	f := newRegistrationFixture(t, false)

	f.pending.On("Get", mock.Anything, "gone").Return(nil, domain.ErrNotFound)

	_, err := f.service.VerifyRegistration(context.Background(), VerifyRegistrationInput{Token: "gone", Code: "4821"})
	assert.ErrorIs(t, err, ErrNoSuchSession)
	f.otps.AssertNotCalled(t, "GetLatestByPhoneNumber", mock.Anything, mock.Anything)
}

func TestRegistrationService_VerifyRegistration_NoCode(t *testing.T) {
	f := newRegistrationFixture(t, false)

	f.pending.On("Get", mock.Anything, "tok").Return(pendingRecord(), nil)
	f.otps.On("GetLatestByPhoneNumber", mock.Anything, "09120000000").Return(nil, domain.ErrNotFound)

	_, err := f.service.VerifyRegistration(context.Background(), VerifyRegistrationInput{Token: "tok", Code: "4821"})
	assert.ErrorIs(t, err, ErrVerificationCodeNotFound)
}

func TestRegistrationService_VerifyRegistration_OtpCleanupFailureIsIgnored(t *testing.T) {
	f := newRegistrationFixture(t, false)

	f.pending.On("Get", mock.Anything, "tok").Return(pendingRecord(), nil)
	f.otps.On("GetLatestByPhoneNumber", mock.Anything, "09120000000").
		Return(&domain.OtpCode{ID: 7, Code: 4821}, nil)
	f.users.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.otps.On("Delete", mock.Anything, int64(7)).Return(errors.New("db down"))
	f.pending.On("Delete", mock.Anything, "tok").Return(nil)
	f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.VerifyRegistration(context.Background(), VerifyRegistrationInput{Token: "tok", Code: "4821"})
	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
}
