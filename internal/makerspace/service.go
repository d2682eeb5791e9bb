// Package makerspace implements every makerspace operation as one unit of work
// against the store.
//
// Key-gated operations look the key up, derive the caller's roles and perform
// the mutation inside the same Store.Update closure, so a key revoked or a user
// demoted concurrently cannot be acted on half way through an operation.
package makerspace

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/apikey"
	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/metrics"
	"github.com/osse101/MakeServer_Go/internal/store"
)

// Service defines the makerspace operations exposed over HTTP
type Service interface {
	// Inventory and checkouts
	GetInventory(ctx context.Context) ([]domain.InventoryItem, error)
	GetCheckoutLog(ctx context.Context, apiKey string) ([]domain.CheckoutLogEntry, error)
	CheckoutItemByName(ctx context.Context, userID uint64, itemName, apiKey string) (domain.CheckoutLogEntry, error)
	CheckoutItemByUUID(ctx context.Context, userID uint64, itemUUID, apiKey string) (domain.CheckoutLogEntry, error)
	ReturnCheckout(ctx context.Context, entryID uuid.UUID, apiKey string) (domain.CheckoutLogEntry, error)

	// Users and quizzes
	GetQuizzes(ctx context.Context, apiKey string) ([]domain.Quiz, error)
	GetAllUsers(ctx context.Context, apiKey string) ([]domain.User, error)
	GetUserInfo(ctx context.Context, userID uint64) (domain.UserInfo, error)
	SetAuthLevel(ctx context.Context, userID uint64, level domain.AuthLevel, apiKey string) (domain.User, error)
	SetQuizPassed(ctx context.Context, userID uint64, quiz string, passed bool, apiKey string) (domain.User, error)

	// Printers
	IngestPrinterStatus(ctx context.Context, update domain.PrinterWebhookUpdate) IngestResult
	GetPrinters(ctx context.Context, apiKey string) ([]domain.Printer, error)

	// Student storage
	GetStudentStorageForUser(ctx context.Context, userID uint64) ([]domain.StorageSlotView, error)
	GetStudentStorageForAll(ctx context.Context, apiKey string) ([]domain.StorageSlotView, error)
	CheckoutStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error)
	RenewStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error)
	ReleaseStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error)
	ExpiredStorageSlots(ctx context.Context) ([]domain.StorageSlot, error)
}

// Notifier queues an operator alert without blocking
type Notifier interface {
	Notify(ctx context.Context, a alert.Alert)
}

// Options configures the service
type Options struct {
	// RentalPeriod is how long a storage checkout or renewal lasts
	RentalPeriod time.Duration
	// GateRenewRelease applies the storage staff role check to renew and
	// release, which otherwise only require that the user owns the slot
	GateRenewRelease bool
	// Now overrides the clock in tests
	Now func() time.Time
}

type service struct {
	store    *store.Store
	keys     *apikey.Registry
	notifier Notifier
	validate *validator.Validate
	opts     Options
}

// NewService creates the makerspace service. notifier may be nil.
func NewService(st *store.Store, keys *apikey.Registry, notifier Notifier, opts Options) Service {
	if opts.RentalPeriod <= 0 {
		opts.RentalPeriod = domain.DefaultStorageRentalPeriod
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		store:    st,
		keys:     keys,
		notifier: notifier,
		validate: validator.New(),
		opts:     opts,
	}
}

func (s *service) now() time.Time {
	return s.opts.Now().UTC()
}

// authorize resolves apiKey to a role set and checks it against required.
// It must run inside the closure of the operation it guards: a user-bound key
// takes its user's auth level from tx at the moment of the mutation.
func (s *service) authorize(ctx context.Context, tx *store.Tables, apiKey string, required ...domain.Role) error {
	userRoles := func(id uint64) domain.RoleSet {
		if u, err := tx.Users.Get(id); err == nil {
			return u.AuthLevel.Roles()
		}
		return 0
	}
	if s.keys.ValidateWith(apiKey, userRoles, required...) {
		return nil
	}

	label := roleLabel(required)
	metrics.AuthFailures.WithLabelValues(label).Inc()
	logger.FromContext(ctx).Warn(LogMsgUnauthorized, "required", label)
	return &domain.UnauthorizedError{Required: required}
}

func roleLabel(roles []domain.Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return strings.Join(names, "|")
}

// gate lists for each family of operations
var (
	adminOnly    = []domain.Role{domain.RoleAdmin}
	checkoutGate = []domain.Role{domain.RoleAdmin, domain.RoleCheckoutStaff}
	storageGate  = []domain.Role{domain.RoleAdmin, domain.RoleStudentStorageStaff}
)
