package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/makerspace"
)

// MockService is a mock implementation of makerspace.Service
type MockService struct {
	mock.Mock
}

var _ makerspace.Service = (*MockService)(nil)

// NewMockService creates a MockService whose expectations are asserted on cleanup
func NewMockService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockService {
	m := &MockService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockService) GetInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.InventoryItem)
	return items, args.Error(1)
}

func (m *MockService) GetCheckoutLog(ctx context.Context, apiKey string) ([]domain.CheckoutLogEntry, error) {
	args := m.Called(ctx, apiKey)
	entries, _ := args.Get(0).([]domain.CheckoutLogEntry)
	return entries, args.Error(1)
}

func (m *MockService) CheckoutItemByName(ctx context.Context, userID uint64, itemName, apiKey string) (domain.CheckoutLogEntry, error) {
	args := m.Called(ctx, userID, itemName, apiKey)
	entry, _ := args.Get(0).(domain.CheckoutLogEntry)
	return entry, args.Error(1)
}

func (m *MockService) CheckoutItemByUUID(ctx context.Context, userID uint64, itemUUID, apiKey string) (domain.CheckoutLogEntry, error) {
	args := m.Called(ctx, userID, itemUUID, apiKey)
	entry, _ := args.Get(0).(domain.CheckoutLogEntry)
	return entry, args.Error(1)
}

func (m *MockService) ReturnCheckout(ctx context.Context, entryID uuid.UUID, apiKey string) (domain.CheckoutLogEntry, error) {
	args := m.Called(ctx, entryID, apiKey)
	entry, _ := args.Get(0).(domain.CheckoutLogEntry)
	return entry, args.Error(1)
}

func (m *MockService) GetQuizzes(ctx context.Context, apiKey string) ([]domain.Quiz, error) {
	args := m.Called(ctx, apiKey)
	quizzes, _ := args.Get(0).([]domain.Quiz)
	return quizzes, args.Error(1)
}

func (m *MockService) GetAllUsers(ctx context.Context, apiKey string) ([]domain.User, error) {
	args := m.Called(ctx, apiKey)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockService) GetUserInfo(ctx context.Context, userID uint64) (domain.UserInfo, error) {
	args := m.Called(ctx, userID)
	info, _ := args.Get(0).(domain.UserInfo)
	return info, args.Error(1)
}

func (m *MockService) SetAuthLevel(ctx context.Context, userID uint64, level domain.AuthLevel, apiKey string) (domain.User, error) {
	args := m.Called(ctx, userID, level, apiKey)
	user, _ := args.Get(0).(domain.User)
	return user, args.Error(1)
}

func (m *MockService) SetQuizPassed(ctx context.Context, userID uint64, quiz string, passed bool, apiKey string) (domain.User, error) {
	args := m.Called(ctx, userID, quiz, passed, apiKey)
	user, _ := args.Get(0).(domain.User)
	return user, args.Error(1)
}

func (m *MockService) IngestPrinterStatus(ctx context.Context, update domain.PrinterWebhookUpdate) makerspace.IngestResult {
	args := m.Called(ctx, update)
	result, _ := args.Get(0).(makerspace.IngestResult)
	return result
}

func (m *MockService) GetPrinters(ctx context.Context, apiKey string) ([]domain.Printer, error) {
	args := m.Called(ctx, apiKey)
	printers, _ := args.Get(0).([]domain.Printer)
	return printers, args.Error(1)
}

func (m *MockService) GetStudentStorageForUser(ctx context.Context, userID uint64) ([]domain.StorageSlotView, error) {
	args := m.Called(ctx, userID)
	slots, _ := args.Get(0).([]domain.StorageSlotView)
	return slots, args.Error(1)
}

func (m *MockService) GetStudentStorageForAll(ctx context.Context, apiKey string) ([]domain.StorageSlotView, error) {
	args := m.Called(ctx, apiKey)
	slots, _ := args.Get(0).([]domain.StorageSlotView)
	return slots, args.Error(1)
}

func (m *MockService) CheckoutStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error) {
	args := m.Called(ctx, userID, slotID, apiKey)
	slot, _ := args.Get(0).(domain.StorageSlotView)
	return slot, args.Error(1)
}

func (m *MockService) RenewStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error) {
	args := m.Called(ctx, userID, slotID, apiKey)
	slot, _ := args.Get(0).(domain.StorageSlotView)
	return slot, args.Error(1)
}

func (m *MockService) ReleaseStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error) {
	args := m.Called(ctx, userID, slotID, apiKey)
	slot, _ := args.Get(0).(domain.StorageSlotView)
	return slot, args.Error(1)
}

func (m *MockService) ExpiredStorageSlots(ctx context.Context) ([]domain.StorageSlot, error) {
	args := m.Called(ctx)
	slots, _ := args.Get(0).([]domain.StorageSlot)
	return slots, args.Error(1)
}
