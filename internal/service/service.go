package service

import (
	"context"
	"io"
	"time"

	"github.com/skyticket/backend/internal/availability"
	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/repository"
	"github.com/skyticket/backend/pkg/auth"
	"github.com/skyticket/backend/pkg/hash"
	"github.com/skyticket/backend/pkg/otp"
	"github.com/skyticket/backend/pkg/storage"

	"github.com/google/uuid"
)

type Services struct {
	Users        Users
	Registration Registration
	Flights      Flights
	Documents    Documents
	Airlines     Airlines
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Repos        *repository.Repositories
	Notifier     Notifier
	Availability AvailabilitySearcher
	Dates        DateConverter
	Cities       CityNamer
	Storage      storage.Uploader
}

func NewServices(deps Deps) *Services {
	users := newUserService(deps.Repos.Users,
		deps.Repos.RefreshSession,
		deps.Hasher,
		deps.TokenManager,
	)

	return &Services{
		Users: users,
		Registration: newRegistrationService(deps.Repos.Users,
			deps.Repos.OtpCodes,
			deps.Repos.PendingRegistrations,
			users,
			deps.Hasher,
			deps.OtpGenerator,
			deps.Notifier,
			deps.Config.Auth,
			deps.Config.Email,
		),
		Flights: newFlightService(deps.Repos.Airlines,
			deps.Repos.SearchCache,
			deps.Availability,
			deps.Dates,
			deps.Cities,
			deps.Config.Partner,
			deps.Config.Search,
		),
		Documents: newDocumentService(deps.Repos.UserDocuments, deps.Storage),
		Airlines:  newAirlineService(deps.Repos.Airlines),
	}
}

type Users interface {
	Login(ctx context.Context, userName, password, userAgent, userIP string) (*Tokens, error)
	Refresh(ctx context.Context, refreshToken, userAgent, userIP string) (*Tokens, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, requesterID, userID uuid.UUID, profile domain.UserProfile) (*domain.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}

type sessionCreator interface {
	createSession(ctx context.Context, userID uuid.UUID, userAgent, userIP string) (*Tokens, error)
}

type Registration interface {
	RequestRegistration(ctx context.Context, input RegistrationInput) (*RegistrationTicket, error)
	VerifyRegistration(ctx context.Context, input VerifyRegistrationInput) (*Tokens, error)
}

type Flights interface {
	Search(ctx context.Context, input FlightSearchInput) (*domain.FlightSearchResult, error)
}

type Documents interface {
	GetDocument(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error)
	UploadDocument(ctx context.Context, requesterID uuid.UUID, input UploadDocumentInput) (*domain.UserDocument, error)
}

type Airlines interface {
	GetAll(ctx context.Context) ([]domain.Airline, error)
}

// Notifier delivers messages out of band. Implementations only enqueue.
type Notifier interface {
	SendOtp(ctx context.Context, phoneNumber string, code int) error
	SendWelcome(ctx context.Context, email, firstName string) error
}

type AvailabilitySearcher interface {
	Search(ctx context.Context, airline domain.Airline, q domain.FlightQuery) ([]availability.Flight, error)
}

type DateConverter interface {
	ToGregorianString(s string) (string, error)
}

type CityNamer interface {
	CityName(code string) string
}

type Tokens struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken uuid.UUID
	RefreshTTL   time.Duration
}

type RegistrationInput struct {
	PhoneNumber string
	UserName    string
	Email       string
	FirstName   string
	LastName    string
	Password    string
}

type RegistrationTicket struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyRegistrationInput struct {
	Token     string
	Code      string
	UserAgent string
	UserIP    string
}

type FlightSearchInput struct {
	Source string
	Target string
	Date   string
	Adult  int
	Child  int
	Infant int
}

type UploadDocumentInput struct {
	UserID         uuid.UUID
	NationalCode   string
	PassportNumber string
	FileName       string
	ContentType    string
	File           io.Reader
}
