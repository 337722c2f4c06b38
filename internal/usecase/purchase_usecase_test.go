package usecase

import (
	"context"
	"net/http"
	"testing"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type PurchPurchaseRepoMock struct{ mock.Mock }

func (m *PurchPurchaseRepoMock) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Purchase)
	return created, args.Error(1)
}

func (m *PurchPurchaseRepoMock) FindByID(ctx context.Context, purchaseID string) (model.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	p, _ := args.Get(0).(model.Purchase)
	return p, args.Error(1)
}

func (m *PurchPurchaseRepoMock) UpdateStatus(ctx context.Context, purchaseID string, status model.PurchaseStatus) error {
	args := m.Called(ctx, purchaseID, status)
	return args.Error(0)
}

func (m *PurchPurchaseRepoMock) SoftDelete(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

type PurchSellerRepoMock struct{ mock.Mock }

func (m *PurchSellerRepoMock) Create(ctx context.Context, s model.Seller) (model.Seller, error) {
	panic("not used in PurchaseUsecase tests")
}

func (m *PurchSellerRepoMock) FindByID(ctx context.Context, sellerID string) (model.Seller, error) {
	args := m.Called(ctx, sellerID)
	s, _ := args.Get(0).(model.Seller)
	return s, args.Error(1)
}

func (m *PurchSellerRepoMock) FindByLogin(ctx context.Context, cpf string, email string) (model.Seller, error) {
	panic("not used in PurchaseUsecase tests")
}

func (m *PurchSellerRepoMock) Update(ctx context.Context, sellerID string, in repo.SellerUpdate) error {
	panic("not used in PurchaseUsecase tests")
}

func (m *PurchSellerRepoMock) SoftDelete(ctx context.Context, sellerID string) error {
	panic("not used in PurchaseUsecase tests")
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishStatusChanged(ctx context.Context, ev model.PurchaseStatusChangedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

var _ repo.PurchaseRepository = (*PurchPurchaseRepoMock)(nil)
var _ repo.SellerRepository = (*PurchSellerRepoMock)(nil)
var _ PurchaseEventPublisher = (*PublisherMock)(nil)

func newPurchaseUsecase(purchases *PurchPurchaseRepoMock, sellers *PurchSellerRepoMock, events *PublisherMock) *PurchaseUsecase {
	return NewPurchaseUsecase(purchases, sellers, events, zap.NewNop())
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()

	he, ok := AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, want, he.Status)
}

// =====================
// Create
// =====================

func TestPurchaseUsecase_Create_EmptyCaller(t *testing.T) {
	uc := newPurchaseUsecase(new(PurchPurchaseRepoMock), new(PurchSellerRepoMock), new(PublisherMock))

	_, err := uc.Create(context.Background(), "")
	assertStatus(t, err, http.StatusBadRequest)
}

func TestPurchaseUsecase_Create_SellerMissing(t *testing.T) {
	sellers := new(PurchSellerRepoMock)
	sellers.On("FindByID", mock.Anything, "seller-1").Return(model.Seller{}, repo.ErrNotFound)

	uc := newPurchaseUsecase(new(PurchPurchaseRepoMock), sellers, new(PublisherMock))

	_, err := uc.Create(context.Background(), "seller-1")
	assertStatus(t, err, http.StatusBadRequest)
}

func TestPurchaseUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()

	sellers := new(PurchSellerRepoMock)
	sellers.On("FindByID", mock.Anything, "seller-1").Return(model.Seller{ID: "seller-1"}, nil)

	purchases := new(PurchPurchaseRepoMock)
	purchases.On("Create", mock.Anything, mock.MatchedBy(func(p model.Purchase) bool {
		return p.SellerID == "seller-1" && p.Status == model.PurchaseStatusWaitingPayment && p.ID != ""
	})).Return(model.Purchase{ID: "p-1", SellerID: "seller-1", Status: model.PurchaseStatusWaitingPayment}, nil)

	uc := newPurchaseUsecase(purchases, sellers, new(PublisherMock))

	created, err := uc.Create(ctx, "seller-1")
	assert.NoError(t, err)
	assert.Equal(t, "seller-1", created.SellerID)
	assert.Equal(t, model.PurchaseStatusWaitingPayment, created.Status)
	purchases.AssertExpectations(t)
}

// =====================
// Get / Delete（所有チェック）
// =====================

func TestPurchaseUsecase_Get_NotFound(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").Return(model.Purchase{}, repo.ErrNotFound)

	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	_, err := uc.Get(context.Background(), "seller-1", "p-1")
	assertStatus(t, err, http.StatusNotFound)
}

func TestPurchaseUsecase_Get_NotOwner(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").Return(model.Purchase{ID: "p-1", SellerID: "seller-2"}, nil)

	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	_, err := uc.Get(context.Background(), "seller-1", "p-1")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestPurchaseUsecase_Get_Owner(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").Return(model.Purchase{ID: "p-1", SellerID: "seller-1"}, nil)

	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	p, err := uc.Get(context.Background(), "seller-1", "p-1")
	assert.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)
}

func TestPurchaseUsecase_Delete_NotOwner(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").Return(model.Purchase{ID: "p-1", SellerID: "seller-2"}, nil)

	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	err := uc.Delete(context.Background(), "seller-1", "p-1")
	assertStatus(t, err, http.StatusUnauthorized)
	purchases.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestPurchaseUsecase_Delete_Owner(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").Return(model.Purchase{ID: "p-1", SellerID: "seller-1"}, nil)
	purchases.On("SoftDelete", mock.Anything, "p-1").Return(nil)

	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	assert.NoError(t, uc.Delete(context.Background(), "seller-1", "p-1"))
	purchases.AssertExpectations(t)
}

// =====================
// UpdateStatus
// =====================

func TestPurchaseUsecase_UpdateStatus_BelowRange(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	//テーブル参照より前に弾かれる（リポジトリは呼ばれない）
	err := uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatus(99))
	assertStatus(t, err, http.StatusBadRequest)
	purchases.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestPurchaseUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	err := uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatus(150))
	assertStatus(t, err, http.StatusBadRequest)
	purchases.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestPurchaseUsecase_UpdateStatus_PurchaseNotFound(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").Return(model.Purchase{}, repo.ErrNotFound)

	uc := newPurchaseUsecase(purchases, new(PurchSellerRepoMock), new(PublisherMock))

	err := uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatusPaymentApproved)
	assertStatus(t, err, http.StatusNotFound)
}

func TestPurchaseUsecase_UpdateStatus_SellerNotFound(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").
		Return(model.Purchase{ID: "p-1", SellerID: "seller-1", Status: model.PurchaseStatusWaitingPayment}, nil)

	sellers := new(PurchSellerRepoMock)
	sellers.On("FindByID", mock.Anything, "seller-1").Return(model.Seller{}, repo.ErrNotFound)

	uc := newPurchaseUsecase(purchases, sellers, new(PublisherMock))

	err := uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatusPaymentApproved)
	assertStatus(t, err, http.StatusNotFound)
}

func TestPurchaseUsecase_UpdateStatus_SkipAheadRejected(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").
		Return(model.Purchase{ID: "p-1", SellerID: "seller-1", Status: model.PurchaseStatusWaitingPayment}, nil)

	sellers := new(PurchSellerRepoMock)
	sellers.On("FindByID", mock.Anything, "seller-1").Return(model.Seller{ID: "seller-1"}, nil)

	uc := newPurchaseUsecase(purchases, sellers, new(PublisherMock))

	//WaitingPayment→Shippingは前方でも不可
	err := uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatusShipping)
	assertStatus(t, err, http.StatusBadRequest)

	he, _ := AsHTTPError(err)
	assert.Equal(t, "invalid purchase situation order", he.Message)
	purchases.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseUsecase_UpdateStatus_BackwardsRejected(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").
		Return(model.Purchase{ID: "p-1", SellerID: "seller-1", Status: model.PurchaseStatusShipping}, nil)

	sellers := new(PurchSellerRepoMock)
	sellers.On("FindByID", mock.Anything, "seller-1").Return(model.Seller{ID: "seller-1"}, nil)

	uc := newPurchaseUsecase(purchases, sellers, new(PublisherMock))

	err := uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatusWaitingPayment)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestPurchaseUsecase_UpdateStatus_Success_PublishesEvent(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").
		Return(model.Purchase{ID: "p-1", SellerID: "seller-1", Status: model.PurchaseStatusWaitingPayment}, nil)
	purchases.On("UpdateStatus", mock.Anything, "p-1", model.PurchaseStatusPaymentApproved).Return(nil)

	sellers := new(PurchSellerRepoMock)
	sellers.On("FindByID", mock.Anything, "seller-1").Return(model.Seller{ID: "seller-1"}, nil)

	events := new(PublisherMock)
	events.On("PublishStatusChanged", mock.Anything, mock.MatchedBy(func(ev model.PurchaseStatusChangedEvent) bool {
		return ev.PurchaseID == "p-1" &&
			ev.From == model.PurchaseStatusWaitingPayment &&
			ev.To == model.PurchaseStatusPaymentApproved
	})).Return(nil)

	uc := newPurchaseUsecase(purchases, sellers, events)

	assert.NoError(t, uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatusPaymentApproved))
	purchases.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestPurchaseUsecase_UpdateStatus_PublishFailureIsNotFatal(t *testing.T) {
	purchases := new(PurchPurchaseRepoMock)
	purchases.On("FindByID", mock.Anything, "p-1").
		Return(model.Purchase{ID: "p-1", SellerID: "seller-1", Status: model.PurchaseStatusShipping}, nil)
	purchases.On("UpdateStatus", mock.Anything, "p-1", model.PurchaseStatusDelivered).Return(nil)

	sellers := new(PurchSellerRepoMock)
	sellers.On("FindByID", mock.Anything, "seller-1").Return(model.Seller{ID: "seller-1"}, nil)

	events := new(PublisherMock)
	events.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(assert.AnError)

	uc := newPurchaseUsecase(purchases, sellers, events)

	assert.NoError(t, uc.UpdateStatus(context.Background(), "seller-1", "p-1", model.PurchaseStatusDelivered))
}
