// internal/application/identity_service.go
package application

import (
	"context"
	"crypto/rand"
	"regexp"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopcore/backend/internal/domain"
	"github.com/shopcore/backend/internal/ports"
	"github.com/shopcore/backend/pkg/auth"
)

const (
	otpLength   = 6
	otpValidity = 3 * time.Minute
)

var mailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LookupBy tags an account lookup request. Callers state what kind of
// identifier they hold instead of the service sniffing its format.
type LookupBy int

const (
	LookupByID LookupBy = iota
	LookupByMail
)

// AdminCredentials is the fixed administrator credential pair, injected from
// configuration at startup.
type AdminCredentials struct {
	Username       string
	PasswordDigest string
}

// IdentityService handles registration, lookup, OTP issuance/verification,
// password changes, the address book and administrator tokens.
type IdentityService struct {
	repo     ports.AccountRepositoryPort
	notifier ports.NotifierPort
	tokens   *auth.TokenManager
	admin    AdminCredentials
	logger   *zap.Logger
	now      func() time.Time
}

func NewIdentityService(repo ports.AccountRepositoryPort, notifier ports.NotifierPort, tokens *auth.TokenManager, admin AdminCredentials, logger *zap.Logger) *IdentityService {
	return &IdentityService{
		repo:     repo,
		notifier: notifier,
		tokens:   tokens,
		admin:    admin,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates an account with a bcrypt-hashed password. The returned
// account never carries the stored digest.
func (s *IdentityService) Register(ctx context.Context, name, mail, phone, password string) (*domain.Account, error) {
	switch {
	case name == "":
		return nil, domain.Validationf("name", "required")
	case mail == "":
		return nil, domain.Validationf("mail", "required")
	case phone == "":
		return nil, domain.Validationf("phone", "required")
	case password == "":
		return nil, domain.Validationf("password", "required")
	}
	if !mailRegex.MatchString(mail) {
		return nil, domain.Validationf("mail", "invalid format")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	account := &domain.Account{
		ID:       uuid.NewString(),
		Name:     name,
		Mail:     mail,
		Phone:    phone,
		Password: string(digest),
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	return sanitize(account), nil
}

// RegisterFederated creates an account for a contact address an external
// identity provider has already verified. No password is taken; the stored
// digest is a bcrypt hash of discarded random bytes, so the record stays
// compatible with password-based code paths while no password can ever
// match it.
func (s *IdentityService) RegisterFederated(ctx context.Context, name, mail string) (*domain.Account, error) {
	switch {
	case name == "":
		return nil, domain.Validationf("name", "required")
	case mail == "":
		return nil, domain.Validationf("mail", "required")
	}
	if !mailRegex.MatchString(mail) {
		return nil, domain.Validationf("mail", "invalid format")
	}

	placeholder := make([]byte, 32)
	if _, err := rand.Read(placeholder); err != nil {
		return nil, errors.Wrap(err, "generate placeholder secret")
	}
	digest, err := bcrypt.GenerateFromPassword(placeholder, bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash placeholder")
	}

	account := &domain.Account{
		ID:       uuid.NewString(),
		Name:     name,
		Mail:     mail,
		Password: string(digest),
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	return sanitize(account), nil
}

// Lookup resolves an account by the identifier kind the caller holds.
func (s *IdentityService) Lookup(ctx context.Context, by LookupBy, identifier string) (*domain.Account, error) {
	if identifier == "" {
		return nil, domain.Validationf("identifier", "required")
	}

	var (
		account *domain.Account
		err     error
	)
	switch by {
	case LookupByID:
		account, err = s.repo.FindAccountByID(ctx, identifier)
	case LookupByMail:
		account, err = s.repo.FindAccountByMail(ctx, identifier)
	default:
		return nil, domain.Validationf("lookup", "unknown identifier kind")
	}
	if err != nil {
		return nil, err
	}
	return sanitize(account), nil
}

// ListAccounts returns every registered account, digests stripped.
func (s *IdentityService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for i, a := range accounts {
		accounts[i] = sanitize(a)
	}
	return accounts, nil
}

// ChangePassword hashes and overwrites the account's password.
func (s *IdentityService) ChangePassword(ctx context.Context, accountID, newPassword string) error {
	if accountID == "" {
		return domain.Validationf("accountId", "required")
	}
	if newPassword == "" {
		return domain.Validationf("password", "required")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	return s.repo.UpdatePassword(ctx, accountID, string(digest))
}

// IssueOTP generates a fresh 6-digit code, records it with its expiry as one
// atomic pair and dispatches it. Success is only reported after the send
// attempt completed; any previously pending code is invalidated.
func (s *IdentityService) IssueOTP(ctx context.Context, mail string) error {
	if mail == "" {
		return domain.Validationf("mail", "required")
	}
	code, err := generateOTP()
	if err != nil {
		return errors.Wrap(err, "generate otp")
	}
	if err := s.repo.SetOTP(ctx, mail, code, s.now().Add(otpValidity)); err != nil {
		return err
	}
	if err := s.notifier.SendOTP(ctx, mail, code); err != nil {
		s.logger.Error("otp delivery failed", zap.String("mail", mail), zap.Error(err))
		return errors.Wrap(err, "send otp")
	}
	return nil
}

// VerifyOTP redeems a code. A code works exactly once and only before its
// expiry; the check and the clear happen in one storage round trip.
func (s *IdentityService) VerifyOTP(ctx context.Context, mail, code string) error {
	if mail == "" {
		return domain.Validationf("mail", "required")
	}
	if code == "" {
		return domain.Validationf("code", "required")
	}
	return s.repo.ConsumeOTP(ctx, mail, code, s.now())
}

// AddAddress appends an address to the account's address book and returns it
// with its assigned id.
func (s *IdentityService) AddAddress(ctx context.Context, accountID string, address domain.Address) (*domain.Address, error) {
	switch {
	case accountID == "":
		return nil, domain.Validationf("accountId", "required")
	case address.Name == "":
		return nil, domain.Validationf("name", "required")
	case address.Street == "":
		return nil, domain.Validationf("street", "required")
	case address.Pincode == "":
		return nil, domain.Validationf("pincode", "required")
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	address.ID = uuid.NewString()
	address.AccountID = accountID
	if err := s.repo.AddAddress(ctx, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// ListAddresses returns the account's address book.
func (s *IdentityService) ListAddresses(ctx context.Context, accountID string) ([]domain.Address, error) {
	if accountID == "" {
		return nil, domain.Validationf("accountId", "required")
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.ListAddresses(ctx, accountID)
}

// RemoveAddress deletes an address the account owns. Placed orders keep their
// embedded copy.
func (s *IdentityService) RemoveAddress(ctx context.Context, accountID, addressID string) error {
	if accountID == "" {
		return domain.Validationf("accountId", "required")
	}
	if addressID == "" {
		return domain.Validationf("addressId", "required")
	}
	return s.repo.RemoveAddress(ctx, accountID, addressID)
}

// AdminLogin checks the fixed administrator credential pair and issues a
// time-boxed token carrying the administrator username.
func (s *IdentityService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.Validationf("credentials", "username and password are required")
	}
	if username != s.admin.Username {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordDigest), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(username)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

// VerifyAdminToken decodes the token and checks that its subject is the fixed
// administrator identity. A valid token with the wrong subject is forbidden
// rather than unauthorized.
func (s *IdentityService) VerifyAdminToken(token string) (string, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}
	if claims.Subject != s.admin.Username {
		return "", domain.ErrForbidden
	}
	return claims.Subject, nil
}

func generateOTP() (string, error) {
	const digits = "0123456789"
	buf := make([]byte, otpLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = digits[int(b)%len(digits)]
	}
	return string(buf), nil
}

// sanitize strips credential and OTP state before an account leaves the
// service layer.
func sanitize(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	out := *a
	out.Password = ""
	out.OTPCode = nil
	out.OTPExpiresAt = nil
	return &out
}
